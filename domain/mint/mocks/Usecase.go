package mocks

import (
	mock "github.com/stretchr/testify/mock"

	ctx "github.com/x-xyz/artmint/base/ctx"
	domain "github.com/x-xyz/artmint/domain"
	mint "github.com/x-xyz/artmint/domain/mint"
)

// Usecase is a mock type for the Usecase type
type Usecase struct {
	mock.Mock
}

func (_m *Usecase) session(ret mock.Arguments) (*mint.Session, error) {
	var r0 *mint.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*mint.Session)
	}
	return r0, ret.Error(1)
}

// ConfirmAttributes provides a mock function with given fields: c, id, digest
func (_m *Usecase) ConfirmAttributes(c ctx.Ctx, id string, digest domain.TxDigest) (*mint.Session, error) {
	return _m.session(_m.Called(c, id, digest))
}

// ConfirmMint provides a mock function with given fields: c, id, digest
func (_m *Usecase) ConfirmMint(c ctx.Ctx, id string, digest domain.TxDigest) (*mint.Session, error) {
	return _m.session(_m.Called(c, id, digest))
}

// ConfirmSplit provides a mock function with given fields: c, id, digest
func (_m *Usecase) ConfirmSplit(c ctx.Ctx, id string, digest domain.TxDigest) (*mint.Session, error) {
	return _m.session(_m.Called(c, id, digest))
}

// FindAll provides a mock function with given fields: c, opts
func (_m *Usecase) FindAll(c ctx.Ctx, opts ...mint.FindAllOptionsFunc) ([]*mint.Session, error) {
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

// Get provides a mock function with given fields: c, id
func (_m *Usecase) Get(c ctx.Ctx, id string) (*mint.Session, error) {
	return _m.session(_m.Called(c, id))
}

// Prepare provides a mock function with given fields: c, form
func (_m *Usecase) Prepare(c ctx.Ctx, form *mint.Form) (*mint.Session, error) {
	return _m.session(_m.Called(c, form))
}
