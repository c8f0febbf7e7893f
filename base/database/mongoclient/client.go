package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/artmint/base/log"
)

const (
	socketTimeout  = 60 * time.Second
	connectTimeout = 10 * time.Second
)

// Config mirrors the mongo section of the config file.
type Config struct {
	URI                string  `mapstructure:"uri"`
	AuthDBName         string  `mapstructure:"authDbName"`
	DBName             string  `mapstructure:"dbName"`
	SSL                bool    `mapstructure:"ssl"`
	Majority           bool    `mapstructure:"majority"`
	PoolSizeMultiplier float64 `mapstructure:"poolSizeMultiplier"`
}

// Client wraps mongo.Client with the database in use
type Client struct {
	DbName string
	*mongo.Client
}

func (c *Client) Database() *mongo.Database {
	return c.Client.Database(c.DbName)
}

// MustConnectMongoClient panics when the database can't be reached
func MustConnectMongoClient(ctx context.Context, cfg Config) *Client {
	cli, err := ConnectMongoClient(ctx, cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": cfg.URI, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

func ConnectMongoClient(ctx context.Context, cfg Config) (*Client, error) {
	connSetting, err := connstring.Parse(cfg.URI)
	if err != nil {
		log.Log().WithFields(log.Fields{"dbName": cfg.DBName, "err": err}).Error("fail to parse connstring")
		return nil, err
	}

	opts := options.Client().ApplyURI(cfg.URI).SetSocketTimeout(socketTimeout).SetConnectTimeout(connectTimeout).SetRetryWrites(true)

	// AuthSource in the uri wins over authDbName
	if connSetting.Username != "" && connSetting.AuthSource == "" && cfg.AuthDBName != "" {
		opts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}

	if cfg.PoolSizeMultiplier > 0 && len(connSetting.Hosts) > 0 {
		// every host gets its own pool
		poolSize := int(float64(runtime.NumCPU()) * cfg.PoolSizeMultiplier)
		poolSize = (poolSize + len(connSetting.Hosts) - 1) / len(connSetting.Hosts)
		opts.SetMinPoolSize(uint64(poolSize / 4)).SetMaxPoolSize(uint64(poolSize))
	}
	if cfg.SSL {
		opts.SetTLSConfig(&tls.Config{})
	}
	if cfg.Majority {
		opts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "err": err}).Error("mongo.Connect failed")
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Log().WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "err": err}).Error("client.Ping failed")
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.Log().WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "db": cfg.DBName}).Info("mongo connected")
	return &Client{Client: client, DbName: cfg.DBName}, nil
}
