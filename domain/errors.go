package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// request error
	ErrInvalidAddress  = errors.New("Invalid address")
	ErrInvalidObjectId = errors.New("Invalid object id")

	// chain error
	ErrUnsupportedNetwork  = errors.New("unsupported network")
	ErrRpcFailed           = errors.New("full node request failed")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTxFailed            = errors.New("transaction failed")
	ErrTxTimeout           = errors.New("transaction not confirmed in time")
	ErrCreatedObjectAbsent = errors.New("created object not found in transaction")

	// mint session error
	ErrMintStatus       = errors.New("mint session is not in the expected status")
	ErrCollectionClosed = errors.New("collection is not minting")
)
