package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset variables
// leave the current value untouched; unparsable durations and integers are
// ignored rather than failing startup.
//
// Variables:
//
//	ADDRESS            HTTP bind address
//	DATABASE_DSN       PostgreSQL DSN
//	ACCESS_TOKEN_KEY   access token signing secret
//	REFRESH_TOKEN_KEY  refresh token signing secret
//	ACCESS_TOKEN_AGE   access token lifetime (Go duration, e.g. "30m")
//	REFRESH_TOKEN_AGE  refresh token lifetime (Go duration, e.g. "168h")
//	BCRYPT_COST        bcrypt work factor
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.Address = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_KEY"); ok {
		config.AccessTokenKey = v
	}
	if v, ok := os.LookupEnv("REFRESH_TOKEN_KEY"); ok {
		config.RefreshTokenKey = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_AGE"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("REFRESH_TOKEN_AGE"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.RefreshTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
