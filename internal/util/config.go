// Package util holds the database configuration handed to the migration tooling.
package util

import (
	errs "errors"

	"github.com/pkg/errors"

	"github.com/DaanHessen/dbconf/internal/logger"
)

// Dialect names the database engine the migration tooling generates SQL for.
type Dialect string

const (
	DialectSQLite Dialect = "sqlite" // embedded, file-backed
	DialectTurso  Dialect = "turso"  // hosted libSQL
)

// Fixed locations shared by every dialect.
const (
	MigrationsDir     = "./db/migrations"
	SchemaPath        = "./db/schema/index.ts"
	LocalDatabasePath = "./local-store/sqlite/sqlite.db"
)

const (
	EnvNetwork = "NETWORK"
	EnvDBURL   = "DB_URL"
	EnvDBToken = "DB_TOKEN"

	// HostedNetwork is the only NETWORK value that selects the hosted dialect.
	HostedNetwork = "testnet"
)

var (
	ErrMissingURL      = errs.New("DB_URL is required when NETWORK=testnet")
	ErrUnknownDialect  = errs.New("unknown dialect")
	ErrUnexpectedToken = errs.New("auth token set for embedded dialect")
	ErrMissingPath     = errs.New("missing path")
)

// Credentials holds what the driver needs to connect. AuthToken is only
// populated for the hosted dialect.
type Credentials struct {
	URL       string `json:"url" yaml:"url" toml:"url"`
	AuthToken string `json:"authToken,omitempty" yaml:"authToken,omitempty" toml:"authToken,omitempty"`
}

// Config is the migration configuration handed to the external tooling.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	Out           string      `json:"out" yaml:"out" toml:"out"`
	Schema        string      `json:"schema" yaml:"schema" toml:"schema"`
	Dialect       Dialect     `json:"dialect" yaml:"dialect" toml:"dialect"`
	DBCredentials Credentials `json:"dbCredentials" yaml:"dbCredentials" toml:"dbCredentials"`
}

// DialectFor maps a NETWORK value to a dialect. The comparison is exact:
// "Testnet" or " testnet" select the embedded store.
func DialectFor(network string) Dialect {
	if network == HostedNetwork {
		return DialectTurso
	}
	return DialectSQLite
}

// Load builds the configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(OSEnv{})
}

// LoadFrom builds the configuration from env.
func LoadFrom(env Env) (Config, error) {
	dbURL, _ := env.Lookup(EnvDBURL)
	logger.Info("DB_URL: %s", logger.RedactURL(dbURL))
	network, _ := env.Lookup(EnvNetwork)

	cfg := Config{
		Out:     MigrationsDir,
		Schema:  SchemaPath,
		Dialect: DialectFor(network),
	}
	if cfg.Dialect == DialectTurso {
		token, ok := env.Lookup(EnvDBToken)
		if !ok || token == "" {
			logger.Warn("%s is not set; connecting to the hosted database without an auth token", EnvDBToken)
		}
		cfg.DBCredentials = Credentials{URL: dbURL, AuthToken: token}
	} else {
		cfg.DBCredentials = Credentials{URL: LocalDatabasePath}
	}
	logger.Debug("network=%q dialect=%s", network, cfg.Dialect)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsHosted reports whether cfg targets the hosted dialect.
func (c Config) IsHosted() bool { return c.Dialect == DialectTurso }

// Validate checks the credential shape matches the dialect.
func (c Config) Validate() error {
	if c.Out == "" {
		return errors.Wrap(ErrMissingPath, "out")
	}
	if c.Schema == "" {
		return errors.Wrap(ErrMissingPath, "schema")
	}
	switch c.Dialect {
	case DialectTurso:
		if c.DBCredentials.URL == "" {
			return ErrMissingURL
		}
	case DialectSQLite:
		if c.DBCredentials.URL == "" {
			return errors.Wrap(ErrMissingPath, "database file")
		}
		if c.DBCredentials.AuthToken != "" {
			return ErrUnexpectedToken
		}
	default:
		return errors.Wrapf(ErrUnknownDialect, "%q", c.Dialect)
	}
	return nil
}
