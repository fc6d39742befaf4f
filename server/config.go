package server

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/crypto/bcrypt"
)

const (
	MaxSecretSize = 64
	MinSecretSize = 32
)

// Config holds the settings of a Server.
type Config struct {

	// Listen is the address to listen on, in host:port form. If not
	// provided, "localhost:8080" is used.
	Listen string

	// TokenSecret signs the bearer tokens given to clients. A fixed,
	// publicly known secret is used if not set.
	TokenSecret []byte

	// DB is where users and saved queries are kept. Defaults to memory.
	DB Database

	// UnauthDelayMillis is how long to wait before sending a 401 or 403, in
	// milliseconds. It slows down clients guessing passwords one at a time.
	// Defaults to 1000. Negative values turn the delay off.
	UnauthDelayMillis int

	// HashCost is the bcrypt cost of stored passwords. If not set,
	// svc.DefaultHashCost is used.
	HashCost int
}

// fileConfig is the TOML form of a Config.
type fileConfig struct {
	Listen            string `toml:"listen"`
	TokenSecret       string `toml:"token_secret"`
	Database          string `toml:"database"`
	UnauthDelayMillis int    `toml:"unauth_delay_ms"`
	HashCost          int    `toml:"password_hash_cost"`
}

// LoadConfig reads a Config from the TOML file at file:
//
//	listen = "0.0.0.0:8080"
//	token_secret = "..."
//	database = "sqlite:data"
//	unauth_delay_ms = 1000
//	password_hash_cost = 12
//
// A relative sqlite data directory is taken relative to the file. Unset
// values stay unset; call FillDefaults on the result to fill them in.
func LoadConfig(file string) (Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(file, &fc); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Config{
		Listen:            fc.Listen,
		UnauthDelayMillis: fc.UnauthDelayMillis,
		HashCost:          fc.HashCost,
	}
	if fc.TokenSecret != "" {
		cfg.TokenSecret = []byte(fc.TokenSecret)
	}
	if fc.Database != "" {
		db, err := ParseDBConnString(fc.Database)
		if err != nil {
			return Config{}, fmt.Errorf("database: %w", err)
		}
		if db.Type == DatabaseSQLite && !filepath.IsAbs(db.DataDir) {
			db.DataDir = filepath.Join(filepath.Dir(file), db.DataDir)
		}
		cfg.DB = db
	}

	return cfg, nil
}

// UnauthDelay is UnauthDelayMillis as a Duration. A negative setting gives a
// delay of zero.
func (cfg Config) UnauthDelay() time.Duration {
	if cfg.UnauthDelayMillis < 1 {
		return 0
	}
	return time.Duration(cfg.UnauthDelayMillis) * time.Millisecond
}

// FillDefaults returns a copy of cfg with every unset value given its
// default.
func (cfg Config) FillDefaults() Config {
	if cfg.Listen == "" {
		cfg.Listen = "localhost:8080"
	}
	if cfg.TokenSecret == nil {
		cfg.TokenSecret = []byte("MARLIN-DEFAULT-SECRET-DO-NOT-USE-IN-PRODUCTION")
	}
	if cfg.DB.Type == DatabaseNone || cfg.DB.Type == "" {
		cfg.DB = Database{Type: DatabaseInMemory}
	}
	if cfg.UnauthDelayMillis == 0 {
		cfg.UnauthDelayMillis = 1000
	}
	return cfg
}

// Validate returns an error if a value in cfg cannot be used. Unset values
// are errors, so a Config that relies on defaults should be passed through
// FillDefaults first.
func (cfg Config) Validate() error {
	if cfg.Listen == "" {
		return fmt.Errorf("listen: must be set")
	}
	if n := len(cfg.TokenSecret); n < MinSecretSize || n > MaxSecretSize {
		return fmt.Errorf("token secret: must be %d to %d bytes, but is %d", MinSecretSize, MaxSecretSize, n)
	}
	if err := cfg.DB.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if cfg.HashCost != 0 && (cfg.HashCost < bcrypt.MinCost || cfg.HashCost > bcrypt.MaxCost) {
		return fmt.Errorf("password hash cost: must be %d to %d, but is %d", bcrypt.MinCost, bcrypt.MaxCost, cfg.HashCost)
	}
	return nil
}
