package config

import "time"

// Storage backends understood by storage.Open.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendFile     = "file"
)

// Config holds runtime settings for the agrostock CLI.
//
// Fields:
//   - Backend: which key/value store holds users, session and inventory.
//   - DatabaseDSN: SQLite file or PostgreSQL connection string.
//   - RedisAddr, RedisPassword, RedisNamespace: Redis connection and key prefix.
//   - FileStoreURL: viant/afs URL or plain directory for the file backend.
//   - PasswordScheme: hashing scheme for new credentials ("sha256" or "argon2id").
//   - OperationTimeout: deadline applied to each REPL command.
//   - LogLevel, LogFormat: logger settings (see logging.New).
type Config struct {
	Backend          string
	DatabaseDSN      string
	RedisAddr        string
	RedisPassword    string
	RedisNamespace   string
	FileStoreURL     string
	PasswordScheme   string
	OperationTimeout time.Duration
	LogLevel         string
	LogFormat        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendSQLite
	c.DatabaseDSN = "agrostock.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisNamespace = "agrostock:"
	c.FileStoreURL = "agrostock-data"
	c.PasswordScheme = "sha256"
	c.OperationTimeout = 5 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
