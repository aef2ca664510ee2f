package util

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var hosted = Config{
	Out:           MigrationsDir,
	Schema:        SchemaPath,
	Dialect:       DialectTurso,
	DBCredentials: Credentials{URL: "libsql://app.turso.io", AuthToken: "tok"},
}

var embedded = Config{
	Out:           MigrationsDir,
	Schema:        SchemaPath,
	Dialect:       DialectSQLite,
	DBCredentials: Credentials{URL: LocalDatabasePath},
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "YAML": FormatYAML, "yml": FormatYAML, " toml ": FormatTOML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncode_JSONKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, hosted, FormatJSON))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "./db/migrations", m["out"])
	assert.Equal(t, "./db/schema/index.ts", m["schema"])
	assert.Equal(t, "turso", m["dialect"])
	assert.Equal(t, map[string]any{"url": "libsql://app.turso.io", "authToken": "tok"}, m["dbCredentials"])
}

func TestEncode_EmbeddedOmitsToken(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, embedded, f))
		assert.NotContains(t, buf.String(), "authToken", f)
		assert.Contains(t, buf.String(), LocalDatabasePath, f)
	}
}

func TestEncode_YAMLAndTOMLDecodeBack(t *testing.T) {
	var ybuf, tbuf bytes.Buffer
	require.NoError(t, Encode(&ybuf, hosted, FormatYAML))
	require.NoError(t, Encode(&tbuf, hosted, FormatTOML))

	var fromYAML, fromTOML Config
	require.NoError(t, yaml.Unmarshal(ybuf.Bytes(), &fromYAML))
	require.NoError(t, toml.Unmarshal(tbuf.Bytes(), &fromTOML))
	assert.Equal(t, hosted, fromYAML)
	assert.Equal(t, hosted, fromTOML)
}

func TestEncode_UnknownFormat(t *testing.T) {
	assert.ErrorIs(t, Encode(&bytes.Buffer{}, hosted, Format("xml")), ErrUnknownFormat)
}
