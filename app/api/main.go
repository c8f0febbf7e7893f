package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/artmint/app/api/config"
	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/database/mongoclient"
	"github.com/x-xyz/artmint/base/database/redisclient"
	"github.com/x-xyz/artmint/base/log"
	"github.com/x-xyz/artmint/base/metrics"
	bValidator "github.com/x-xyz/artmint/base/validator"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/keys"
	"github.com/x-xyz/artmint/domain/mint"
	"github.com/x-xyz/artmint/domain/trait"
	mmiddleware "github.com/x-xyz/artmint/middleware"
	"github.com/x-xyz/artmint/service/cache"
	"github.com/x-xyz/artmint/service/cache/provider"
	"github.com/x-xyz/artmint/service/cache/provider/compound"
	"github.com/x-xyz/artmint/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/artmint/service/cache/provider/redis"
	"github.com/x-xyz/artmint/service/discord"
	"github.com/x-xyz/artmint/service/query"
	"github.com/x-xyz/artmint/service/redis"
	"github.com/x-xyz/artmint/service/sui"
	collection_delivery "github.com/x-xyz/artmint/stores/collection/delivery/http"
	collection_usecase "github.com/x-xyz/artmint/stores/collection/usecase"
	hc_delivery "github.com/x-xyz/artmint/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/artmint/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/artmint/stores/healthcheck/usecase"
	mint_delivery "github.com/x-xyz/artmint/stores/mint/delivery/http"
	mint_repository "github.com/x-xyz/artmint/stores/mint/repository"
	mint_usecase "github.com/x-xyz/artmint/stores/mint/usecase"
	nft_delivery "github.com/x-xyz/artmint/stores/nft/delivery/http"
	nft_usecase "github.com/x-xyz/artmint/stores/nft/usecase"
	trait_delivery "github.com/x-xyz/artmint/stores/trait/delivery/http"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/artmint/app/api/docs"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "config file")
	pflag.String("network", "", "network to serve, overrides the config file")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if err := log.Setup(viper.GetBool(`debug`)); err != nil {
		panic(err)
	}
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Trait Art API
//	@version		1.0
//	@description	Trait catalog, rarity scoring, NFT gallery and the two step mint flow on Sui.

// main
func main() {
	defer log.Sync()
	context := ctx.Background()

	network, err := config.Network(viper.GetViper())
	if err != nil {
		context.WithField("err", err).Panic("config.Network failed")
	}
	catalog, err := config.Catalog(viper.GetViper())
	if err != nil {
		context.WithField("err", err).Panic("config.Catalog failed")
	}
	mongoCfg, err := config.Mongo(viper.GetViper())
	if err != nil {
		context.WithField("err", err).Panic("config.Mongo failed")
	}
	redisCfg, err := config.Redis(viper.GetViper())
	if err != nil {
		context.WithField("err", err).Panic("config.Redis failed")
	}
	context = ctx.WithValue(context, "network", network.Name)

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware(network.Name)
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	validate := bValidator.New()
	e.Validator = bValidator.NewCustomValidator(validate)

	// init mongo client, mint sessions need it
	var mongoClient *mongoclient.Client
	var mintRepo mint.Repo
	if mongoCfg.URI != "" {
		context.Info("init mongo")
		mongoClient = mongoclient.MustConnectMongoClient(context, mongoCfg)
		q := query.New(mongoClient)
		if err := q.EnsureIndexes(context, domain.TableMintSessions, mint_repository.Indexes); err != nil {
			context.WithField("err", err).Warn("EnsureIndexes failed")
		}
		mintRepo = mint_repository.New(q)
	}

	// init Redis service, optional second cache layer
	var redisCache redis.Service
	remote := []provider.Provider{}
	if redisCfg.URI != "" {
		context.Info("init redis cache")
		redisCacheName := viper.GetString("redis_cache.name")
		redisCachePool := redisclient.MustConnectRedis(context, redisCfg)
		redisCache = redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)
		remote = append(remote, redisProvider.NewRedis(redisCache))
	}

	localSizeMB := viper.GetInt("cache.localSizeMB")
	cacheTtl := viper.GetDuration("cache.ttl")
	mmiddleware.SetupCache(localSizeMB, remote...)
	objectCache := compound.NewCompound(append([]provider.Provider{primitive.NewPrimitive(keys.PfxObject, localSizeMB)}, remote...)...)

	// init sui client
	suiClient, err := sui.NewClient(context, sui.ClientCfg{
		RpcUrl:  network.RpcUrl,
		Timeout: viper.GetDuration("rpc.timeout"),
	})
	if err != nil {
		context.WithField("err", err).Panic("sui.NewClient failed")
	}

	announcer, err := discord.New(discord.Config{
		BotKey:    viper.GetString("discord.botKey"),
		ChannelId: viper.GetString("discord.channelId"),
	})
	if err != nil {
		context.WithField("err", err).Warn("discord.New failed, announcements disabled")
		announcer = nil
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache, suiClient)
	hc := hc_usecase.New(hcRepo)
	collection := collection_usecase.New(&collection_usecase.UsecaseCfg{
		Network: network,
		Client:  suiClient,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   cacheTtl,
			Pfx:   keys.PfxCollection,
			Cache: objectCache,
		}),
		Catalog: catalog,
	})
	nft := nft_usecase.New(&nft_usecase.UsecaseCfg{
		Network: network,
		Client:  suiClient,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   cacheTtl,
			Pfx:   keys.RedisKey(keys.PfxObject, network.Name),
			Cache: objectCache,
		}),
		Catalog: catalog,
	})

	hc_delivery.New(e, hc, network.Name)
	trait_delivery.New(e, catalog, trait.NewRand(time.Now().UnixNano()))
	collection_delivery.New(e, collection)
	nft_delivery.New(e, nft)

	if mintRepo != nil {
		mintUsecase := mint_usecase.New(&mint_usecase.UsecaseCfg{
			Network:     network,
			Repo:        mintRepo,
			Client:      suiClient,
			Collection:  collection,
			Nft:         nft,
			Catalog:     catalog,
			Validator:   validate,
			Announcer:   announcer,
			GasBudget:   viper.GetUint64("tx.gasBudget"),
			WaitTimeout: viper.GetDuration("tx.waitTimeout"),
		})
		mint_delivery.New(e, mintUsecase)
	} else {
		context.Warn("mongo is not configured, mint endpoints disabled")
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	if mongoClient != nil {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Log().WithField("err", err).Error("mongoClient.Disconnect failed")
		}
	}
}
