package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// suiAddressLength is the byte length of Sui addresses and object ids
const suiAddressLength = 32

// Address is a Sui account address in 0x-prefixed hex
type Address string

// ObjectId is a Sui object id. It shares the address format.
type ObjectId string

// ClockObjectId is the shared system clock object
const ClockObjectId = ObjectId("0x6")

// SuiCoinType is the native coin type
const SuiCoinType = "0x2::sui::SUI"

// SuiCoinObjectType is the object type of a SUI coin
const SuiCoinObjectType = "0x2::coin::Coin<" + SuiCoinType + ">"

func normalizeHex(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "0x") {
		return "", false
	}
	body := s[2:]
	if len(body) == 0 || len(body) > suiAddressLength*2 {
		return "", false
	}
	padded := "0x" + strings.Repeat("0", suiAddressLength*2-len(body)) + body
	b, err := hexutil.Decode(padded)
	if err != nil || len(b) != suiAddressLength {
		return "", false
	}
	return padded, true
}

// Normalize returns the lower case, zero padded, 32 byte form.
func (a Address) Normalize() (Address, bool) {
	n, ok := normalizeHex(string(a))
	return Address(n), ok
}

func (a Address) IsValid() bool {
	_, ok := normalizeHex(string(a))
	return ok
}

func (a Address) String() string {
	return string(a)
}

func (a Address) Equals(b Address) bool {
	na, okA := a.Normalize()
	nb, okB := b.Normalize()
	return okA && okB && na == nb
}

// Normalize returns the lower case, zero padded, 32 byte form.
func (i ObjectId) Normalize() (ObjectId, bool) {
	n, ok := normalizeHex(string(i))
	return ObjectId(n), ok
}

func (i ObjectId) IsValid() bool {
	_, ok := normalizeHex(string(i))
	return ok
}

func (i ObjectId) String() string {
	return string(i)
}

type TxDigest string

func (d TxDigest) String() string {
	return string(d)
}
