package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/artmint/base/ctx"
)

// ErrNotFound is returned when the key does not exist
var ErrNotFound = redis.ErrNil

// Forever is used when the key has no expiry
const Forever = time.Duration(-1)

type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	// Set stores the value, expire <= 0 means Forever
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	// TTL returns the remaining time to live, Forever if the key has no
	// expiry and ErrNotFound if the key does not exist
	TTL(c ctx.Ctx, key string) (time.Duration, error)
	Del(c ctx.Ctx, keys ...string) (int, error)
	Ping(c ctx.Ctx) error
}
