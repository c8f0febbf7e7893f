package mocks

import (
	mock "github.com/stretchr/testify/mock"

	ctx "github.com/x-xyz/artmint/base/ctx"
	collection "github.com/x-xyz/artmint/domain/collection"
)

// Usecase is a mock type for the Usecase type
type Usecase struct {
	mock.Mock
}

// Get provides a mock function with given fields: c
func (_m *Usecase) Get(c ctx.Ctx) (*collection.Info, error) {
	ret := _m.Called(c)
	var r0 *collection.Info
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*collection.Info)
	}
	return r0, ret.Error(1)
}

// Invalidate provides a mock function with given fields: c
func (_m *Usecase) Invalidate(c ctx.Ctx) error {
	ret := _m.Called(c)
	return ret.Error(0)
}
