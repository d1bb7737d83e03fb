package config

import (
	"encoding/json"
	"os"

	"github.com/astroerik-coder/agrostock/internal/flagx"
	"github.com/astroerik-coder/agrostock/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations go
// through timex.Duration so "5s" and integer nanoseconds are both accepted.
type JsonConfig struct {
	Backend          string         `json:"backend"`
	DatabaseDSN      string         `json:"database_dsn"`
	RedisAddr        string         `json:"redis_addr"`
	RedisPassword    string         `json:"redis_password"`
	RedisNamespace   string         `json:"redis_namespace"`
	FileStoreURL     string         `json:"file_store_url"`
	PasswordScheme   string         `json:"password_scheme"`
	OperationTimeout timex.Duration `json:"operation_timeout"`
	LogLevel         string         `json:"log_level"`
	LogFormat        string         `json:"log_format"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config. Keys missing from the file leave the current value alone.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.Backend, jc.Backend)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.RedisAddr, jc.RedisAddr)
	overlay(&cfg.RedisPassword, jc.RedisPassword)
	overlay(&cfg.RedisNamespace, jc.RedisNamespace)
	overlay(&cfg.FileStoreURL, jc.FileStoreURL)
	overlay(&cfg.PasswordScheme, jc.PasswordScheme)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	if jc.OperationTimeout.Duration > 0 {
		cfg.OperationTimeout = jc.OperationTimeout.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
