package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/database/mongoclient"
	"github.com/x-xyz/artmint/domain"
	hcdomain "github.com/x-xyz/artmint/domain/healthcheck"
	"github.com/x-xyz/artmint/domain/keys"
	"github.com/x-xyz/artmint/service/redis"
	"github.com/x-xyz/artmint/service/sui"
)

const pingTimeout = 2 * time.Second

type mongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type impl struct {
	mgoClient  mongoPinger
	redisCache redis.Service
	node       sui.Client
}

// New creates the health check repo. Nil dependencies are skipped.
func New(
	mgoClient *mongoclient.Client,
	redisCache redis.Service,
	node sui.Client,
) hcdomain.HealthCheckRepo {
	im := &impl{
		redisCache: redisCache,
		node:       node,
	}
	if mgoClient != nil {
		im.mgoClient = mgoClient
	}
	return im
}

func (im *impl) PingDB(context ctx.Ctx) error {
	if im.mgoClient == nil {
		return nil
	}
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if im.redisCache == nil {
		return nil
	}
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}

// PingNode reads the clock object, which exists on every network.
func (im *impl) PingNode(context ctx.Ctx) error {
	if im.node == nil {
		return nil
	}
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if _, err := im.node.GetObject(ctx, domain.ClockObjectId); err != nil {
		context.WithField("err", err).Error("ping full node error")
		return err
	}
	return nil
}
