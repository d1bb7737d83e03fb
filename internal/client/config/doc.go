// Package config loads runtime configuration for the agrostock CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   storage backend (sqlite|postgres|redis|file)
//	-d string   SQLite file or PostgreSQL DSN
//	-r string   Redis address
//	-f string   file store URL (file://, mem://) or plain directory
//	-p string   password scheme for new credentials (sha256|argon2id)
//	-t int      per-command timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "backend": "redis",
//	  "redis_addr": "10.0.0.5:6379",
//	  "redis_password": "s3cret",
//	  "redis_namespace": "farm-a:",
//	  "operation_timeout": "10s",
//	  "log_level": "debug",
//	  "log_format": "console"
//	}
//
// Keys missing from the file keep their default. The Redis password and the
// log format can only be set from JSON.
package config
