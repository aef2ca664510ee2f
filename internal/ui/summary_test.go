package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DaanHessen/dbconf/internal/util"
)

func TestSummary_Embedded(t *testing.T) {
	cfg := util.Config{
		Out:           util.MigrationsDir,
		Schema:        util.SchemaPath,
		Dialect:       util.DialectSQLite,
		DBCredentials: util.Credentials{URL: util.LocalDatabasePath},
	}
	out := Summary(cfg, "dracula")

	assert.Contains(t, out, "sqlite (embedded)")
	assert.Contains(t, out, util.MigrationsDir)
	assert.Contains(t, out, util.SchemaPath)
	assert.Contains(t, out, util.LocalDatabasePath)
	assert.NotContains(t, out, "token")
}

func TestSummary_HostedHidesToken(t *testing.T) {
	cfg := util.Config{
		Out:           util.MigrationsDir,
		Schema:        util.SchemaPath,
		Dialect:       util.DialectTurso,
		DBCredentials: util.Credentials{URL: "libsql://app.turso.io?authToken=q", AuthToken: "very-secret"},
	}
	out := Summary(cfg, "no-such-theme")

	assert.Contains(t, out, "turso (hosted)")
	assert.Contains(t, out, "libsql://app.turso.io")
	assert.Contains(t, out, "set")
	assert.NotContains(t, out, "very-secret")
	assert.NotContains(t, out, "authToken=q")
}

func TestSummary_HostedMissingToken(t *testing.T) {
	cfg := util.Config{Dialect: util.DialectTurso, DBCredentials: util.Credentials{URL: "http://127.0.0.1:8080"}}
	assert.Contains(t, Summary(cfg, DefaultTheme), "missing")
}

func TestThemeNamesSortedAndDefaultPresent(t *testing.T) {
	names := ThemeNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, DefaultTheme)
	assert.Equal(t, palettes[DefaultTheme], paletteFor("unknown"))
}
