package mocks

import (
	mock "github.com/stretchr/testify/mock"

	ctx "github.com/x-xyz/artmint/base/ctx"
)

// HealthCheckRepo is a mock type for the HealthCheckRepo type
type HealthCheckRepo struct {
	mock.Mock
}

// PingCache provides a mock function with given fields: context
func (_m *HealthCheckRepo) PingCache(context ctx.Ctx) error {
	ret := _m.Called(context)
	return ret.Error(0)
}

// PingDB provides a mock function with given fields: context
func (_m *HealthCheckRepo) PingDB(context ctx.Ctx) error {
	ret := _m.Called(context)
	return ret.Error(0)
}

// PingNode provides a mock function with given fields: context
func (_m *HealthCheckRepo) PingNode(context ctx.Ctx) error {
	ret := _m.Called(context)
	return ret.Error(0)
}
