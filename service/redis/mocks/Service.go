package mocks

import (
	time "time"

	ctx "github.com/x-xyz/artmint/base/ctx"
	mock "github.com/stretchr/testify/mock"
)

// Service is a mock type for the Service type
type Service struct {
	mock.Mock
}

// Del provides a mock function with given fields: c, keys
func (_m *Service) Del(c ctx.Ctx, keys ...string) (int, error) {
	_va := make([]interface{}, len(keys))
	for _i := range keys {
		_va[_i] = keys[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, c)
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)
	return ret.Int(0), ret.Error(1)
}

// Get provides a mock function with given fields: c, key
func (_m *Service) Get(c ctx.Ctx, key string) ([]byte, error) {
	ret := _m.Called(c, key)
	var r0 []byte
	if rf, ok := ret.Get(0).(func(ctx.Ctx, string) []byte); ok {
		r0 = rf(c, key)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

// Ping provides a mock function with given fields: c
func (_m *Service) Ping(c ctx.Ctx) error {
	ret := _m.Called(c)
	return ret.Error(0)
}

// Set provides a mock function with given fields: c, key, val, expire
func (_m *Service) Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
	ret := _m.Called(c, key, val, expire)
	return ret.Error(0)
}

// TTL provides a mock function with given fields: c, key
func (_m *Service) TTL(c ctx.Ctx, key string) (time.Duration, error) {
	ret := _m.Called(c, key)
	return ret.Get(0).(time.Duration), ret.Error(1)
}
