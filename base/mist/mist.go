package mist

import (
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/artmint/domain"
)

// Decimals is the number of MIST decimals in one SUI.
const Decimals = 9

// Parse reads a MIST amount the way the full node encodes u64 values,
// as a decimal string.
func Parse(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, xerrors.Errorf("parse mist %q: %w", s, domain.ErrInvalidNumberFormat)
	}
	return v, nil
}

func ToSui(mist uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(mist), -Decimals)
}

// FromSui converts a SUI amount to MIST, rejecting negative and fractional MIST.
func FromSui(sui decimal.Decimal) (uint64, error) {
	m := sui.Shift(Decimals)
	if m.IsNegative() || !m.Equal(m.Truncate(0)) {
		return 0, xerrors.Errorf("%s SUI is not a whole MIST amount: %w", sui, domain.ErrInvalidNumberFormat)
	}
	return Parse(m.String())
}

// Format prints a MIST amount in SUI without trailing zeros, e.g. 0.01.
func Format(mist uint64) string {
	return ToSui(mist).String()
}
