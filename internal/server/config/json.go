package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/forumauth/internal/flagx"
)

// Duration wraps time.Duration for JSON unmarshalling, accepting both string
// values such as "30m" and integer nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		d.Duration = time.Duration(v)
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration: %v", raw)
	}
}

// JsonConfig is the intermediate DTO for reading a JSON configuration file.
// After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	Address                      string   `json:"address"`
	DatabaseDSN                  string   `json:"database_dsn"`
	AccessTokenKey               string   `json:"access_token_key"`
	RefreshTokenKey              string   `json:"refresh_token_key"`
	AccessTokenValidityDuration  Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration Duration `json:"refresh_token_validity_duration"`
	BcryptCost                   int      `json:"bcrypt_cost"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flags. If neither flag is set, nothing is loaded. An
// unreadable or invalid file panics: a half-applied config file must not
// start the server.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Address != "" {
		config.Address = c.Address
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.AccessTokenKey != "" {
		config.AccessTokenKey = c.AccessTokenKey
	}
	if c.RefreshTokenKey != "" {
		config.RefreshTokenKey = c.RefreshTokenKey
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration.Duration != 0 {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
}
