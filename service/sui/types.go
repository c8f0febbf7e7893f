package sui

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/x-xyz/artmint/domain"
)

// ObjectDataOptions selects the parts of an object the full node returns.
type ObjectDataOptions struct {
	ShowType    bool `json:"showType"`
	ShowOwner   bool `json:"showOwner"`
	ShowContent bool `json:"showContent"`
	ShowDisplay bool `json:"showDisplay"`
}

var fullObject = ObjectDataOptions{ShowType: true, ShowOwner: true, ShowContent: true, ShowDisplay: true}

// ObjectPage is a page of raw object responses, each shaped like sui_getObject's.
type ObjectPage struct {
	Data        []json.RawMessage `json:"data"`
	NextCursor  *string           `json:"nextCursor"`
	HasNextPage bool              `json:"hasNextPage"`
}

type Coin struct {
	CoinType     string          `json:"coinType"`
	CoinObjectId domain.ObjectId `json:"coinObjectId"`
	Version      string          `json:"version"`
	Digest       string          `json:"digest"`
	Balance      string          `json:"balance"`
}

type CoinPage struct {
	Data        []Coin  `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

// BytesArg is a vector<u8> argument. Sui JSON wants it as an array of numbers.
type BytesArg []byte

func (b BytesArg) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(v)))
	}
	sb.WriteByte(']')
	return []byte(sb.String()), nil
}

// MoveCall is one call of a Move function. Arguments are object ids, strings,
// numbers as strings or BytesArg.
type MoveCall struct {
	PackageObjectId domain.ObjectId `json:"packageObjectId"`
	Module          string          `json:"module"`
	Function        string          `json:"function"`
	TypeArguments   []string        `json:"typeArguments"`
	Arguments       []interface{}   `json:"arguments"`
}

type batchItem struct {
	MoveCallRequestParams MoveCall `json:"moveCallRequestParams"`
}

// TransactionBytes is an unsigned transaction built by the full node.
type TransactionBytes struct {
	TxBytes      string            `json:"txBytes"`
	Gas          []json.RawMessage `json:"gas"`
	InputObjects []json.RawMessage `json:"inputObjects"`
}

type TransactionBlockOptions struct {
	ShowInput         bool `json:"showInput"`
	ShowEffects       bool `json:"showEffects"`
	ShowEvents        bool `json:"showEvents"`
	ShowObjectChanges bool `json:"showObjectChanges"`
}

type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type TransactionEffects struct {
	Status ExecutionStatus `json:"status"`
}

type ObjectChange struct {
	Type       string          `json:"type"`
	Sender     domain.Address  `json:"sender"`
	ObjectType string          `json:"objectType"`
	ObjectId   domain.ObjectId `json:"objectId"`
	Version    string          `json:"version"`
	Digest     string          `json:"digest"`
}

type TransactionBlock struct {
	Digest        domain.TxDigest     `json:"digest"`
	Effects       *TransactionEffects `json:"effects"`
	ObjectChanges []ObjectChange      `json:"objectChanges"`
	TimestampMs   string              `json:"timestampMs"`
}

// Succeeded reports whether the effects carry a success status.
func (t *TransactionBlock) Succeeded() bool {
	return t.Effects != nil && t.Effects.Status.Status == "success"
}

// CreatedObject returns the first created object whose type contains typeName.
func (t *TransactionBlock) CreatedObject(typeName string) (ObjectChange, bool) {
	for _, ch := range t.ObjectChanges {
		if ch.Type == "created" && strings.Contains(ch.ObjectType, typeName) {
			return ch, true
		}
	}
	return ObjectChange{}, false
}
