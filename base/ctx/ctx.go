package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/artmint/base/log"
)

// Ctx bundles a context with a logger that carries the request scoped fields.
type Ctx struct {
	context.Context
	log.Logger
}

type key string

const requestIDKey key = "requestID"

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// From wraps a plain context, e.g. one handed over by a third-party library.
func From(parent context.Context) Ctx {
	if c, ok := parent.(Ctx); ok {
		return c
	}
	return Ctx{
		Context: parent,
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// WithRequestID tags both the context and the log lines with the request id.
func WithRequestID(parent Ctx, id string) Ctx {
	return Ctx{
		Context: context.WithValue(parent, requestIDKey, id),
		Logger:  parent.Logger.WithField(string(requestIDKey), id),
	}
}

// RequestID returns the id set by WithRequestID, or "".
func RequestID(c context.Context) string {
	id, _ := c.Value(requestIDKey).(string)
	return id
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}
