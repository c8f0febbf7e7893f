package config

import (
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/artmint/base/database/mongoclient"
	"github.com/x-xyz/artmint/base/database/redisclient"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/trait"
)

const defaultNetwork = "testnet"

// Network picks the network named by `network` and applies the
// `networks.<name>` overrides on top of the built-in defaults.
func Network(v *viper.Viper) (domain.Network, error) {
	name := v.GetString("network")
	if name == "" {
		name = defaultNetwork
	}

	network, ok := domain.DefaultNetworks[name]
	if !ok && !v.IsSet("networks."+name) {
		return domain.Network{}, xerrors.Errorf("network %q: %w", name, domain.ErrUnsupportedNetwork)
	}
	if v.IsSet("networks." + name) {
		if err := v.UnmarshalKey("networks."+name, &network); err != nil {
			return domain.Network{}, xerrors.Errorf("networks.%s: %w", name, err)
		}
	}
	network.Name = name

	if err := network.Validate(); err != nil {
		return domain.Network{}, err
	}
	return network, nil
}

// Catalog reads the `traits` section, or returns the built-in catalog when
// the section is absent.
func Catalog(v *viper.Viper) (*trait.Catalog, error) {
	if !v.IsSet("traits") {
		return trait.Default(), nil
	}
	defs := []trait.CategoryDef{}
	if err := v.UnmarshalKey("traits", &defs); err != nil {
		return nil, xerrors.Errorf("traits: %w", err)
	}
	return trait.NewCatalog(defs)
}

func Mongo(v *viper.Viper) (mongoclient.Config, error) {
	cfg := mongoclient.Config{}
	if err := v.UnmarshalKey("mongo", &cfg); err != nil {
		return cfg, xerrors.Errorf("mongo: %w", err)
	}
	return cfg, nil
}

func Redis(v *viper.Viper) (redisclient.Config, error) {
	cfg := redisclient.Config{}
	if err := v.UnmarshalKey("redis_cache", &cfg); err != nil {
		return cfg, xerrors.Errorf("redis_cache: %w", err)
	}
	return cfg, nil
}
