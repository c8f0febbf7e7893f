package mocks

import (
	json "encoding/json"

	mock "github.com/stretchr/testify/mock"

	ctx "github.com/x-xyz/artmint/base/ctx"
	domain "github.com/x-xyz/artmint/domain"
	nft "github.com/x-xyz/artmint/domain/nft"
)

// Usecase is a mock type for the Usecase type
type Usecase struct {
	mock.Mock
}

// DecodeRaw provides a mock function with given fields: c, raw
func (_m *Usecase) DecodeRaw(c ctx.Ctx, raw json.RawMessage) (*nft.Item, error) {
	ret := _m.Called(c, raw)

	var r0 *nft.Item
	if rf, ok := ret.Get(0).(func(ctx.Ctx, json.RawMessage) *nft.Item); ok {
		r0 = rf(c, raw)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*nft.Item)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, json.RawMessage) error); ok {
		r1 = rf(c, raw)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Get provides a mock function with given fields: c, id
func (_m *Usecase) Get(c ctx.Ctx, id domain.ObjectId) (*nft.Item, error) {
	ret := _m.Called(c, id)

	var r0 *nft.Item
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.ObjectId) *nft.Item); ok {
		r0 = rf(c, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*nft.Item)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.ObjectId) error); ok {
		r1 = rf(c, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Invalidate provides a mock function with given fields: c, id
func (_m *Usecase) Invalidate(c ctx.Ctx, id domain.ObjectId) error {
	ret := _m.Called(c, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.ObjectId) error); ok {
		r0 = rf(c, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ListOwned provides a mock function with given fields: c, owner, cursor, limit
func (_m *Usecase) ListOwned(c ctx.Ctx, owner domain.Address, cursor string, limit int) (*nft.Page, error) {
	ret := _m.Called(c, owner, cursor, limit)

	var r0 *nft.Page
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address, string, int) *nft.Page); ok {
		r0 = rf(c, owner, cursor, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*nft.Page)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Address, string, int) error); ok {
		r1 = rf(c, owner, cursor, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
