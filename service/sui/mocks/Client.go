package mocks

import (
	json "encoding/json"
	time "time"

	mock "github.com/stretchr/testify/mock"

	ctx "github.com/x-xyz/artmint/base/ctx"
	domain "github.com/x-xyz/artmint/domain"
	sui "github.com/x-xyz/artmint/service/sui"
)

// Client is a mock type for the Client type
type Client struct {
	mock.Mock
}

// BatchMoveCall provides a mock function with given fields: c, signer, calls, gasBudget
func (_m *Client) BatchMoveCall(c ctx.Ctx, signer domain.Address, calls []sui.MoveCall, gasBudget uint64) (*sui.TransactionBytes, error) {
	ret := _m.Called(c, signer, calls, gasBudget)
	var r0 *sui.TransactionBytes
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sui.TransactionBytes)
	}
	return r0, ret.Error(1)
}

// GetCoins provides a mock function with given fields: c, owner, coinType, cursor
func (_m *Client) GetCoins(c ctx.Ctx, owner domain.Address, coinType string, cursor string) (*sui.CoinPage, error) {
	ret := _m.Called(c, owner, coinType, cursor)
	var r0 *sui.CoinPage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sui.CoinPage)
	}
	return r0, ret.Error(1)
}

// GetObject provides a mock function with given fields: c, id
func (_m *Client) GetObject(c ctx.Ctx, id domain.ObjectId) (json.RawMessage, error) {
	ret := _m.Called(c, id)
	var r0 json.RawMessage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(json.RawMessage)
	}
	return r0, ret.Error(1)
}

// GetOwnedObjects provides a mock function with given fields: c, owner, structType, cursor, limit
func (_m *Client) GetOwnedObjects(c ctx.Ctx, owner domain.Address, structType string, cursor string, limit int) (*sui.ObjectPage, error) {
	ret := _m.Called(c, owner, structType, cursor, limit)
	var r0 *sui.ObjectPage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sui.ObjectPage)
	}
	return r0, ret.Error(1)
}

// GetTransactionBlock provides a mock function with given fields: c, digest
func (_m *Client) GetTransactionBlock(c ctx.Ctx, digest domain.TxDigest) (*sui.TransactionBlock, error) {
	ret := _m.Called(c, digest)
	var r0 *sui.TransactionBlock
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sui.TransactionBlock)
	}
	return r0, ret.Error(1)
}

// MoveCall provides a mock function with given fields: c, signer, call, gas, gasBudget
func (_m *Client) MoveCall(c ctx.Ctx, signer domain.Address, call sui.MoveCall, gas domain.ObjectId, gasBudget uint64) (*sui.TransactionBytes, error) {
	ret := _m.Called(c, signer, call, gas, gasBudget)
	var r0 *sui.TransactionBytes
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sui.TransactionBytes)
	}
	return r0, ret.Error(1)
}

// MultiGetObjects provides a mock function with given fields: c, ids
func (_m *Client) MultiGetObjects(c ctx.Ctx, ids []domain.ObjectId) ([]json.RawMessage, error) {
	ret := _m.Called(c, ids)
	var r0 []json.RawMessage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]json.RawMessage)
	}
	return r0, ret.Error(1)
}

// PaySui provides a mock function with given fields: c, signer, inputCoins, recipients, amounts, gasBudget
func (_m *Client) PaySui(c ctx.Ctx, signer domain.Address, inputCoins []domain.ObjectId, recipients []domain.Address, amounts []uint64, gasBudget uint64) (*sui.TransactionBytes, error) {
	ret := _m.Called(c, signer, inputCoins, recipients, amounts, gasBudget)
	var r0 *sui.TransactionBytes
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sui.TransactionBytes)
	}
	return r0, ret.Error(1)
}

// WaitForTransaction provides a mock function with given fields: c, digest, timeout
func (_m *Client) WaitForTransaction(c ctx.Ctx, digest domain.TxDigest, timeout time.Duration) (*sui.TransactionBlock, error) {
	ret := _m.Called(c, digest, timeout)
	var r0 *sui.TransactionBlock
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sui.TransactionBlock)
	}
	return r0, ret.Error(1)
}
