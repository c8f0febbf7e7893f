package keys

import (
	"strings"
)

const (
	// PfxObject prefixes raw on-chain objects
	PfxObject = "object"
	// PfxCollection prefixes collection info
	PfxCollection = "collection"
	// PfxHealthCheck prefixes the health check probe
	PfxHealthCheck = "healthcheck"

	delimiter = ":"
)

// RedisKey joins key components with ':'
func RedisKey(components ...string) string {
	return strings.Join(components, delimiter)
}

// GetPrefix returns the first component of a key, used as a metric tag
func GetPrefix(key string) string {
	if i := strings.Index(key, delimiter); i >= 0 {
		return key[:i]
	}
	return key
}
