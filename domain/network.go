package domain

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

// MoveModule is the module of the collection's package.
const MoveModule = "simple_art_nft"

// Network is a Sui network with the collection deployed on it.
type Network struct {
	Name         string   `mapstructure:"-" json:"name"`
	RpcUrl       string   `mapstructure:"rpcUrl" json:"rpcUrl"`
	PackageId    ObjectId `mapstructure:"packageId" json:"packageId"`
	CollectionId ObjectId `mapstructure:"collectionId" json:"collectionId"`
}

// DefaultNetworks are the public full nodes. Only testnet has a deployment.
var DefaultNetworks = map[string]Network{
	"devnet": {
		Name:         "devnet",
		RpcUrl:       "https://fullnode.devnet.sui.io:443",
		PackageId:    "0x0",
		CollectionId: "0x0",
	},
	"testnet": {
		Name:         "testnet",
		RpcUrl:       "https://fullnode.testnet.sui.io:443",
		PackageId:    "0x58b6a42586bc44b5c27866ff925b77c4efebfeb935d271cb5e4a5c243e315668",
		CollectionId: "0xd2e1eb923476e5c7d0c232489db35dad9d68c5a046156e044f2e1cc16424a5ae",
	},
	"mainnet": {
		Name:         "mainnet",
		RpcUrl:       "https://fullnode.mainnet.sui.io:443",
		PackageId:    "0x0",
		CollectionId: "0x0",
	},
}

// IsDeployed reports whether the package and collection ids are set.
func (n Network) IsDeployed() bool {
	zero, _ := ObjectId("0x0").Normalize()
	pkg, okPkg := n.PackageId.Normalize()
	col, okCol := n.CollectionId.Normalize()
	return okPkg && okCol && pkg != zero && col != zero
}

// Target returns the fully qualified name of a function or struct of the module.
func (n Network) Target(name string) string {
	pkg, _ := n.PackageId.Normalize()
	return fmt.Sprintf("%s::%s::%s", pkg, MoveModule, name)
}

// Validate checks that the network can serve requests.
func (n Network) Validate() error {
	if n.RpcUrl == "" || !(strings.HasPrefix(n.RpcUrl, "http://") || strings.HasPrefix(n.RpcUrl, "https://")) {
		return xerrors.Errorf("network %s: rpcUrl %q: %w", n.Name, n.RpcUrl, ErrUnsupportedNetwork)
	}
	if !n.IsDeployed() {
		return xerrors.Errorf("network %s: collection is not deployed: %w", n.Name, ErrUnsupportedNetwork)
	}
	return nil
}
