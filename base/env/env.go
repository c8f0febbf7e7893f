package env

import (
	"os"
)

const defaultAppName = "artmint-api"

// Get returns the environment variable, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// PodName example: artmint-api-6868d88fbd-bz8zv
func PodName() string {
	return Get("PODNAME", "local")
}

// EnvName example: testnet
func EnvName() string {
	return Get("ENV_NAME", "dev")
}

// AppName example: artmint-api
func AppName() string {
	return Get("APP_NAME", defaultAppName)
}
