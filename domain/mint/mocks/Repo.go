package mocks

import (
	mock "github.com/stretchr/testify/mock"

	ctx "github.com/x-xyz/artmint/base/ctx"
	domain "github.com/x-xyz/artmint/domain"
	mint "github.com/x-xyz/artmint/domain/mint"
)

// Repo is a mock type for the Repo type
type Repo struct {
	mock.Mock
}

// FindAll provides a mock function with given fields: c, opts
func (_m *Repo) FindAll(c ctx.Ctx, opts ...mint.FindAllOptionsFunc) ([]*mint.Session, error) {
	_va := make([]interface{}, len(opts))
	for _i := range opts {
		_va[_i] = opts[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, c)
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	var r0 []*mint.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*mint.Session)
	}
	return r0, ret.Error(1)
}

// FindByDigest provides a mock function with given fields: c, digest
func (_m *Repo) FindByDigest(c ctx.Ctx, digest domain.TxDigest) (*mint.Session, error) {
	ret := _m.Called(c, digest)
	var r0 *mint.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*mint.Session)
	}
	return r0, ret.Error(1)
}

// FindOne provides a mock function with given fields: c, id
func (_m *Repo) FindOne(c ctx.Ctx, id string) (*mint.Session, error) {
	ret := _m.Called(c, id)
	var r0 *mint.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*mint.Session)
	}
	return r0, ret.Error(1)
}

// Insert provides a mock function with given fields: c, s
func (_m *Repo) Insert(c ctx.Ctx, s *mint.Session) error {
	ret := _m.Called(c, s)
	return ret.Error(0)
}

// Transit provides a mock function with given fields: c, id, from, patch
func (_m *Repo) Transit(c ctx.Ctx, id string, from mint.Status, patch *mint.SessionPatch) error {
	ret := _m.Called(c, id, from, patch)
	return ret.Error(0)
}
