package sui

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/tidwall/gjson"
	"golang.org/x/xerrors"

	"github.com/x-xyz/artmint/base/backoff"
	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/log"
	"github.com/x-xyz/artmint/base/metrics"
	"github.com/x-xyz/artmint/domain"
)

const (
	maxPageSize        = 50
	defaultWaitTimeout = 60 * time.Second
)

type ClientCfg struct {
	RpcUrl string
	// Timeout bounds a single JSON-RPC request
	Timeout time.Duration
}

// Client reads objects from a Sui full node and builds unsigned transactions.
type Client interface {
	GetObject(c ctx.Ctx, id domain.ObjectId) (json.RawMessage, error)
	MultiGetObjects(c ctx.Ctx, ids []domain.ObjectId) ([]json.RawMessage, error)
	GetOwnedObjects(c ctx.Ctx, owner domain.Address, structType string, cursor string, limit int) (*ObjectPage, error)
	GetCoins(c ctx.Ctx, owner domain.Address, coinType string, cursor string) (*CoinPage, error)
	// MoveCall pays gas with the gas coin, or lets the node pick one when gas is empty
	MoveCall(c ctx.Ctx, signer domain.Address, call MoveCall, gas domain.ObjectId, gasBudget uint64) (*TransactionBytes, error)
	// PaySui sends amounts to recipients out of inputCoins. The first input
	// coin pays the gas, so a single coin is enough.
	PaySui(c ctx.Ctx, signer domain.Address, inputCoins []domain.ObjectId, recipients []domain.Address, amounts []uint64, gasBudget uint64) (*TransactionBytes, error)
	BatchMoveCall(c ctx.Ctx, signer domain.Address, calls []MoveCall, gasBudget uint64) (*TransactionBytes, error)
	GetTransactionBlock(c ctx.Ctx, digest domain.TxDigest) (*TransactionBlock, error)
	// WaitForTransaction polls until the transaction is indexed. A failed
	// execution returns the block with domain.ErrTxFailed.
	WaitForTransaction(c ctx.Ctx, digest domain.TxDigest, timeout time.Duration) (*TransactionBlock, error)
}

type clientImpl struct {
	rpc *rpc.Client
	met metrics.Service
	// backoff start for WaitForTransaction
	pollStart time.Duration
}

func NewClient(c ctx.Ctx, cfg ClientCfg) (Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	cli, err := rpc.DialHTTPWithClient(cfg.RpcUrl, &http.Client{Timeout: timeout})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "url": cfg.RpcUrl}).Error("rpc.DialHTTPWithClient failed")
		return nil, err
	}
	return &clientImpl{rpc: cli, met: metrics.New("sui"), pollStart: 500 * time.Millisecond}, nil
}

func (im *clientImpl) call(c ctx.Ctx, result interface{}, method string, args ...interface{}) error {
	defer im.met.BumpTime("rpc.latency", "method", method).End()
	if err := im.rpc.CallContext(c, result, method, args...); err != nil {
		im.met.BumpSum("rpc.err", 1, "method", method)
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) {
			return xerrors.Errorf("%s: code %d: %s: %w", method, rpcErr.ErrorCode(), rpcErr.Error(), domain.ErrRpcFailed)
		}
		return xerrors.Errorf("%s: %v: %w", method, err, domain.ErrRpcFailed)
	}
	return nil
}

// objectError maps the error object the full node embeds in object
// responses: missing and deleted objects are not found.
func objectError(raw []byte) error {
	code := gjson.GetBytes(raw, "error.code")
	if !code.Exists() {
		return nil
	}
	switch code.String() {
	case "notExists", "deleted", "dynamicFieldNotFound":
		return domain.ErrNotFound
	}
	return xerrors.Errorf("object error %s: %w", code.String(), domain.ErrBadParamInput)
}

func (im *clientImpl) GetObject(c ctx.Ctx, id domain.ObjectId) (json.RawMessage, error) {
	var res json.RawMessage
	if err := im.call(c, &res, "sui_getObject", id, fullObject); err != nil {
		c.WithFields(log.Fields{"err": err, "objectId": id}).Error("sui_getObject failed")
		return nil, err
	}
	if err := objectError(res); err != nil {
		return nil, xerrors.Errorf("object %s: %w", id, err)
	}
	return res, nil
}

func (im *clientImpl) MultiGetObjects(c ctx.Ctx, ids []domain.ObjectId) ([]json.RawMessage, error) {
	if len(ids) == 0 {
		return []json.RawMessage{}, nil
	}
	var res []json.RawMessage
	if err := im.call(c, &res, "sui_multiGetObjects", ids, fullObject); err != nil {
		c.WithFields(log.Fields{"err": err, "count": len(ids)}).Error("sui_multiGetObjects failed")
		return nil, err
	}
	return res, nil
}

func (im *clientImpl) GetOwnedObjects(c ctx.Ctx, owner domain.Address, structType string, cursor string, limit int) (*ObjectPage, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	query := map[string]interface{}{"options": fullObject}
	if structType != "" {
		query["filter"] = map[string]string{"StructType": structType}
	}
	var cur interface{}
	if cursor != "" {
		cur = cursor
	}
	res := &ObjectPage{}
	if err := im.call(c, res, "suix_getOwnedObjects", owner, query, cur, limit); err != nil {
		c.WithFields(log.Fields{"err": err, "owner": owner}).Error("suix_getOwnedObjects failed")
		return nil, err
	}
	return res, nil
}

func (im *clientImpl) GetCoins(c ctx.Ctx, owner domain.Address, coinType string, cursor string) (*CoinPage, error) {
	var cur interface{}
	if cursor != "" {
		cur = cursor
	}
	res := &CoinPage{}
	if err := im.call(c, res, "suix_getCoins", owner, coinType, cur, maxPageSize); err != nil {
		c.WithFields(log.Fields{"err": err, "owner": owner}).Error("suix_getCoins failed")
		return nil, err
	}
	return res, nil
}

// MoveCall builds a single call with unsafe_moveCall.
func (im *clientImpl) MoveCall(c ctx.Ctx, signer domain.Address, call MoveCall, gas domain.ObjectId, gasBudget uint64) (*TransactionBytes, error) {
	if call.TypeArguments == nil {
		call.TypeArguments = []string{}
	}
	var gasArg interface{}
	if gas != "" {
		gasArg = gas
	}
	res := &TransactionBytes{}
	if err := im.call(c, res, "unsafe_moveCall",
		signer, call.PackageObjectId, call.Module, call.Function,
		call.TypeArguments, call.Arguments, gasArg, strconv.FormatUint(gasBudget, 10),
	); err != nil {
		c.WithFields(log.Fields{"err": err, "function": call.Function}).Error("unsafe_moveCall failed")
		return nil, err
	}
	return res, nil
}

func (im *clientImpl) PaySui(c ctx.Ctx, signer domain.Address, inputCoins []domain.ObjectId, recipients []domain.Address, amounts []uint64, gasBudget uint64) (*TransactionBytes, error) {
	if len(inputCoins) == 0 || len(recipients) != len(amounts) {
		return nil, xerrors.Errorf("paySui with %d coins, %d recipients, %d amounts: %w",
			len(inputCoins), len(recipients), len(amounts), domain.ErrBadParamInput)
	}
	strAmounts := make([]string, len(amounts))
	for i, a := range amounts {
		strAmounts[i] = strconv.FormatUint(a, 10)
	}
	res := &TransactionBytes{}
	if err := im.call(c, res, "unsafe_paySui", signer, inputCoins, recipients, strAmounts, strconv.FormatUint(gasBudget, 10)); err != nil {
		c.WithFields(log.Fields{"err": err, "coins": inputCoins}).Error("unsafe_paySui failed")
		return nil, err
	}
	return res, nil
}

// BatchMoveCall builds one transaction running calls in order with
// unsafe_batchTransaction.
func (im *clientImpl) BatchMoveCall(c ctx.Ctx, signer domain.Address, calls []MoveCall, gasBudget uint64) (*TransactionBytes, error) {
	items := make([]batchItem, len(calls))
	for i, call := range calls {
		if call.TypeArguments == nil {
			call.TypeArguments = []string{}
		}
		items[i] = batchItem{MoveCallRequestParams: call}
	}
	res := &TransactionBytes{}
	if err := im.call(c, res, "unsafe_batchTransaction", signer, items, nil, strconv.FormatUint(gasBudget, 10)); err != nil {
		c.WithFields(log.Fields{"err": err, "calls": len(calls)}).Error("unsafe_batchTransaction failed")
		return nil, err
	}
	return res, nil
}

func (im *clientImpl) GetTransactionBlock(c ctx.Ctx, digest domain.TxDigest) (*TransactionBlock, error) {
	res := &TransactionBlock{}
	opts := TransactionBlockOptions{ShowEffects: true, ShowObjectChanges: true}
	if err := im.call(c, res, "sui_getTransactionBlock", digest, opts); err != nil {
		return nil, err
	}
	return res, nil
}

func (im *clientImpl) WaitForTransaction(c ctx.Ctx, digest domain.TxDigest, timeout time.Duration) (*TransactionBlock, error) {
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}
	defer im.met.BumpTime("tx.wait.time").End()
	waitCtx, cancel := ctx.WithTimeout(c, timeout)
	defer cancel()

	var (
		block   *TransactionBlock
		lastErr error
	)
	b := backoff.NewExponential(im.pollStart, 5*time.Second)
	err := b.Retry(waitCtx, func() (bool, error) {
		res, err := im.GetTransactionBlock(waitCtx, digest)
		if err != nil {
			// not indexed yet, or a transient transport error
			lastErr = err
			return false, nil
		}
		block = res
		return true, nil
	})
	if err != nil {
		c.WithFields(log.Fields{"digest": digest, "err": err, "lastErr": lastErr}).Warn("transaction not confirmed in time")
		return nil, xerrors.Errorf("digest %s: %w", digest, domain.ErrTxTimeout)
	}
	if !block.Succeeded() {
		status := ""
		if block.Effects != nil {
			status = block.Effects.Status.Error
		}
		return block, xerrors.Errorf("digest %s: %s: %w", digest, status, domain.ErrTxFailed)
	}
	return block, nil
}
