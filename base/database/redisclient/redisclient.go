package redisclient

import (
	"context"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/artmint/base/backoff"
	"github.com/x-xyz/artmint/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second
)

// Config mirrors the redis_cache section of the config file.
type Config struct {
	URI            string  `mapstructure:"uri"`
	Password       string  `mapstructure:"password"`
	PoolMultiplier float64 `mapstructure:"poolMultiplier"`
	// Retries is how many times the first connection is retried. k8s pods
	// sometimes come up before their network does.
	Retries int `mapstructure:"retries"`
}

func NewPool(cfg Config) *redis.Pool {
	maxIdle, maxActive := 32, 256
	if cfg.PoolMultiplier > 0 {
		cpu := float64(runtime.NumCPU())
		maxIdle = int(cpu * cfg.PoolMultiplier / 4)
		maxActive = int(cpu * cfg.PoolMultiplier)
	}
	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if cfg.Password != "" {
		opts = append(opts, redis.DialPassword(cfg.Password))
	}
	return &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		DialContext: func(ctx context.Context) (redis.Conn, error) {
			return redis.DialContext(ctx, "tcp", cfg.URI, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

// ConnectRedis builds a pool and pings it, retrying with backoff.
func ConnectRedis(ctx context.Context, cfg Config) (*redis.Pool, error) {
	p := NewPool(cfg)
	attempt := 0
	var pingErr error
	b := backoff.NewExponential(time.Second, 8*time.Second)
	err := b.Retry(ctx, func() (bool, error) {
		pingErr = ping(ctx, p)
		if pingErr == nil {
			return true, nil
		}
		log.Log().WithFields(log.Fields{"redisURI": cfg.URI, "err": pingErr, "attempt": attempt}).Warn("ping redis failed")
		attempt++
		if attempt > cfg.Retries {
			return false, pingErr
		}
		return false, nil
	})
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": cfg.URI, "err": err}).Error("fail to dial Redis")
		p.Close()
		return nil, err
	}
	log.Log().WithField("redisURI", cfg.URI).Info("redis connected")
	return p, nil
}

func ping(ctx context.Context, p *redis.Pool) error {
	conn, err := p.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Do("PING")
	return err
}

// MustConnectRedis panics when redis can't be reached.
func MustConnectRedis(ctx context.Context, cfg Config) *redis.Pool {
	p, err := ConnectRedis(ctx, cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": cfg.URI, "err": err}).Panic("fail to dial Redis")
	}
	return p
}
