package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/metrics"
	"github.com/x-xyz/artmint/domain/keys"
)

const (
	// TTL replies for missing keys and keys without expiry
	retTTLNoKey    = -2
	retTTLNoExpire = -1
)

type redImpl struct {
	name string
	met  metrics.Service
	pool *redis.Pool
}

func New(name string, met metrics.Service, pool *redis.Pool) Service {
	return &redImpl{name: name, met: met, pool: pool}
}

func (r *redImpl) do(c ctx.Ctx, command string, args ...interface{}) (interface{}, error) {
	conn, err := r.pool.GetContext(c)
	if err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name)
		return nil, err
	}
	reply, err := conn.Do(command, args...)
	// release the connection as soon as possible
	if cerr := conn.Close(); cerr != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) tags(fn, key string) []string {
	return []string{"func", fn, "cluster", r.name, "prefix", keys.GetPrefix(key)}
}

func (r *redImpl) Get(c ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("get", key)
	defer r.met.BumpTime("time", tags...).End()
	val, err := redis.Bytes(r.do(c, "GET", key))
	if err != nil {
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	var err error
	if expire <= 0 {
		_, err = r.do(c, "SET", key, val)
	} else {
		_, err = r.do(c, "SET", key, val, "PX", int64(expire/time.Millisecond))
	}
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis SET failed")
	}
	return err
}

func (r *redImpl) TTL(c ctx.Ctx, key string) (time.Duration, error) {
	defer r.met.BumpTime("time", r.tags("pttl", key)...).End()
	ms, err := redis.Int64(r.do(c, "PTTL", key))
	if err != nil {
		return 0, err
	}
	switch ms {
	case retTTLNoKey:
		return 0, ErrNotFound
	case retTTLNoExpire:
		return Forever, nil
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func (r *redImpl) Del(c ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, nil
	}
	defer r.met.BumpTime("time", r.tags("del", ks[0])...).End()
	args := make([]interface{}, len(ks))
	for i, k := range ks {
		args[i] = k
	}
	return redis.Int(r.do(c, "DEL", args...))
}

func (r *redImpl) Ping(c ctx.Ctx) error {
	_, err := r.do(c, "PING")
	return err
}
