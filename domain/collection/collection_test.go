package collection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSoldOut(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want bool
	}{
		{"open", Info{TotalSupply: 3, MaxSupply: 100}, false},
		{"last one minted", Info{TotalSupply: 100, MaxSupply: 100}, true},
		{"over minted", Info{TotalSupply: 101, MaxSupply: 100}, true},
		{"unlimited", Info{TotalSupply: 5000}, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.info.SoldOut(), tt.name)
	}
}
