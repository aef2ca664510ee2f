package store

import (
	"context"
	"database/sql"
	errs "errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	_ "github.com/tursodatabase/libsql-client-go/libsql" // registers "libsql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/DaanHessen/dbconf/internal/util"
)

var (
	ErrNoChange   = errs.New("no change")
	ErrNilVersion = errs.New("no migration applied")
)

// migrationsTable is where golang-migrate records the applied version.
const migrationsTable = "schema_migrations"

// DB wraps gorm.DB for the configured dialect and exposes Close.
type DB struct {
	gorm    *gorm.DB
	sql     *sql.DB
	dialect util.Dialect
}

func (d *DB) Close() error          { return d.sql.Close() }
func (d *DB) Gorm() *gorm.DB        { return d.gorm }
func (d *DB) SQL() *sql.DB          { return d.sql }
func (d *DB) Dialect() util.Dialect { return d.dialect }

// Open connects to the database described by cfg.
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	sdb, err := openSQL(cfg)
	if err != nil {
		return nil, err
	}
	gdb, err := gorm.Open(&sqlite.Dialector{Conn: sdb}, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		sdb.Close()
		return nil, wrap(err, "gorm open")
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(10)
	sdb.SetMaxIdleConns(5)
	if err := sdb.PingContext(ctx); err != nil {
		sdb.Close()
		return nil, wrap(err, "ping")
	}
	return &DB{gorm: gdb, sql: sdb, dialect: cfg.Dialect}, nil
}

// openSQL returns a database/sql handle for cfg without pinging it.
func openSQL(cfg util.Config) (*sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Dialect {
	case util.DialectTurso:
		dsn, err := libsqlDSN(cfg.DBCredentials)
		if err != nil {
			return nil, err
		}
		sdb, err := sql.Open("libsql", dsn)
		return sdb, wrap(err, "open libsql")
	default:
		path := cfg.DBCredentials.URL
		if err := ensureDir(path); err != nil {
			return nil, err
		}
		sdb, err := sql.Open("sqlite3", sqliteDSN(path))
		return sdb, wrap(err, "open sqlite")
	}
}

// libsqlDSN appends the auth token as the authToken query parameter.
func libsqlDSN(c util.Credentials) (string, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return "", wrap(err, "parse DB_URL")
	}
	if c.AuthToken != "" {
		q := u.Query()
		q.Set("authToken", c.AuthToken)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
}

// ensureDir creates the parent directory of a local database file.
func ensureDir(path string) error {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return wrap(err, fmt.Sprintf("create %s", dir))
	}
	return nil
}

// AppliedVersion reads the version golang-migrate last recorded.
func (d *DB) AppliedVersion(ctx context.Context) (uint, bool, error) {
	tx := d.gorm.WithContext(ctx)
	if !tx.Migrator().HasTable(migrationsTable) {
		return 0, false, ErrNilVersion
	}
	var row struct {
		Version int64
		Dirty   bool
	}
	res := tx.Raw(`SELECT version, dirty FROM ` + migrationsTable + ` LIMIT 1`).Scan(&row)
	if res.Error != nil {
		return 0, false, wrap(res.Error, "read "+migrationsTable)
	}
	if res.RowsAffected == 0 || row.Version < 0 {
		return 0, false, ErrNilVersion
	}
	return uint(row.Version), row.Dirty, nil
}

// Helper error wrap
func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
