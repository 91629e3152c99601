package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvGRPCAddr        = "STOREFRONT_GRPC_ADDR"
	EnvHTTPAddr        = "STOREFRONT_HTTP_ADDR"
	EnvDatabaseDSN     = "STOREFRONT_DATABASE_DSN"
	EnvStorage         = "STOREFRONT_STORAGE"
	EnvBcryptCost      = "STOREFRONT_BCRYPT_COST"
	EnvLogBackend      = "STOREFRONT_LOG_BACKEND"
	EnvShutdownTimeout = "STOREFRONT_SHUTDOWN_TIMEOUT"
)

func parseEnv(config *Config) {
	parseEnvFrom(config, ".env", os.LookupEnv)
}

// parseEnvFrom overlays STOREFRONT_* values onto config. Values from the
// process environment win over those in dotenvPath; a missing dotenv file is
// ignored. Malformed numbers or durations panic.
func parseEnvFrom(config *Config, dotenvPath string, lookup func(string) (string, bool)) {
	fileVals := map[string]string{}
	if dotenvPath != "" {
		m, err := godotenv.Read(dotenvPath)
		switch {
		case err == nil:
			fileVals = m
		case !errors.Is(err, fs.ErrNotExist):
			panic(err)
		}
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}

	if v, ok := get(EnvGRPCAddr); ok {
		config.EndpointAddrGRPC = v
	}
	if v, ok := get(EnvHTTPAddr); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := get(EnvDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := get(EnvStorage); ok {
		config.StorageBackend = v
	}
	if v, ok := get(EnvLogBackend); ok {
		config.LogBackend = v
	}
	if v, ok := get(EnvBcryptCost); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.BcryptCost = n
	}
	if v, ok := get(EnvShutdownTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.ShutdownTimeout = d
	}
}
