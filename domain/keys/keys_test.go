package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedisKey(t *testing.T) {
	require.Equal(t, "object:testnet:0x1", RedisKey(PfxObject, "testnet", "0x1"))
	require.Equal(t, "object", RedisKey(PfxObject))
}

func TestGetPrefix(t *testing.T) {
	require.Equal(t, "object", GetPrefix("object:testnet:0x1"))
	require.Equal(t, "healthcheck", GetPrefix("healthcheck"))
	require.Equal(t, "", GetPrefix(":x"))
}
