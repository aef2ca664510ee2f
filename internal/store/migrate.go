package store

import (
	"context"
	errs "errors"
	"net/url"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/DaanHessen/dbconf/internal/logger"
	"github.com/DaanHessen/dbconf/internal/util"
)

// Migrator applies the migrations in cfg.Out to the configured database
// using golang-migrate.
type Migrator struct {
	cfg util.Config
}

func NewMigrator(cfg util.Config) (*Migrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Migrator{cfg: cfg}, nil
}

func (m *Migrator) sourceURL() (string, error) {
	p, err := filepath.Abs(m.cfg.Out)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(p)}
	return u.String(), nil
}

func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, func(mig *migrate.Migrate) error { return mig.Up() })
}

// Down rolls back a single migration.
func (m *Migrator) Down(ctx context.Context) error {
	return m.Steps(ctx, -1)
}

// Steps applies n migrations, rolling back when n is negative.
func (m *Migrator) Steps(ctx context.Context, n int) error {
	return m.run(ctx, func(mig *migrate.Migrate) error { return mig.Steps(n) })
}

// Version returns the applied version and whether the last run left it dirty.
func (m *Migrator) Version(ctx context.Context) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)
	err := m.run(ctx, func(mig *migrate.Migrate) error {
		var err error
		version, dirty, err = mig.Version()
		return err
	})
	return version, dirty, err
}

func (m *Migrator) run(ctx context.Context, fn func(*migrate.Migrate) error) error {
	src, err := m.sourceURL()
	if err != nil {
		return err
	}
	mig, closer, err := m.migrateInstance(src)
	if err != nil {
		return err
	}
	defer closer()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			mig.GracefulStop <- true
		case <-done:
		}
	}()

	if err := fn(mig); err != nil {
		switch {
		case errs.Is(err, migrate.ErrNoChange):
			return ErrNoChange
		case errs.Is(err, migrate.ErrNilVersion):
			return ErrNilVersion
		case errs.Is(err, os.ErrNotExist):
			// stepping below the first migration
			return ErrNoChange
		}
		return err
	}
	return ctx.Err()
}

func (m *Migrator) migrateInstance(src string) (*migrate.Migrate, func(), error) {
	sdb, err := openSQL(m.cfg)
	if err != nil {
		return nil, func() {}, err
	}
	driver, err := sqlite3.WithInstance(sdb, driverConfig(m.cfg))
	if err != nil {
		sdb.Close()
		return nil, func() {}, wrap(err, "migrate driver")
	}
	mig, err := migrate.NewWithDatabaseInstance(src, "sqlite3", driver)
	if err != nil {
		driver.Close()
		return nil, func() {}, wrap(err, "migrate init")
	}
	logger.Debug("migrate source=%s dialect=%s", src, m.cfg.Dialect)
	// closes the driver and with it sdb
	return mig, func() { mig.Close() }, nil
}

// driverConfig disables transaction wrapping for the hosted dialect, where
// each statement is sent over HTTP.
func driverConfig(cfg util.Config) *sqlite3.Config {
	return &sqlite3.Config{
		MigrationsTable: migrationsTable,
		NoTxWrap:        cfg.IsHosted(),
	}
}
