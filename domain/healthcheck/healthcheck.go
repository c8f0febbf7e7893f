package healthcheck

import (
	"github.com/x-xyz/artmint/base/ctx"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

// HealthCheckRepo is repository layer of healthCheck. A dependency that is
// not configured reports healthy.
type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
	PingCache(context ctx.Ctx) error
	PingNode(context ctx.Ctx) error
}
