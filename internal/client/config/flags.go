package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/astroerik-coder/agrostock/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   storage backend: sqlite, postgres, redis or file
//	-d string   SQLite path or PostgreSQL DSN
//	-r string   Redis address
//	-f string   file store URL or directory
//	-p string   password scheme for new credentials
//	-t int      per-command timeout (in seconds)
//	-l string   log level
//
// os.Args is filtered through flagx.FilterArgs first so -c/-config does not
// trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-r", "-f", "-p", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (sqlite|postgres|redis|file)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite file or PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.FileStoreURL, "f", cfg.FileStoreURL, "file store URL or directory")
	fs.StringVar(&cfg.PasswordScheme, "p", cfg.PasswordScheme, "password scheme (sha256|argon2id)")
	timeout := fs.Int("t", 0, "per-command timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only overrides earlier sources when it is actually given.
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "t" {
			return
		}
		if *timeout <= 0 {
			panic(fmt.Sprintf("invalid timeout: %d", *timeout))
		}
		cfg.OperationTimeout = time.Duration(*timeout) * time.Second
	})
}
