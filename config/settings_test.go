package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-pro-directory/model"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, 8080, s.HTTP.Port)
	assert.Equal(t, 10, s.HTTP.ReadTimeoutSec)
	assert.Equal(t, 10, s.HTTP.ShutdownSec)
	assert.Equal(t, "pt-BR", s.Directory.Locale)
	assert.Equal(t, model.SortNatural, s.DefaultSortOrder())
	assert.NoError(t, s.Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "local.yaml", `
http:
  port: 9090
logging:
  level: debug
directory:
  data_file: ./data/professionals.yaml
  locale: en
  default_order: rating
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, s.HTTP.Port)
	assert.Equal(t, 10, s.HTTP.WriteTimeoutSec, "unset fields get defaults")
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "./data/professionals.yaml", s.Directory.DataFile)
	assert.Equal(t, "en", s.Directory.Locale)
	assert.Equal(t, model.SortRating, s.DefaultSortOrder())
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "local.toml", `
[http]
port = 7070
shutdown_timeout_sec = 3

[directory]
default_order = "reviews"
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, s.HTTP.Port)
	assert.Equal(t, 3, s.HTTP.ShutdownSec)
	assert.Equal(t, model.SortReviews, s.DefaultSortOrder())
	assert.Equal(t, "pt-BR", s.Directory.Locale)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("DIRECTORY_PORT", "8181")

	path := writeConfig(t, "env.yaml", `
http:
  port: ${DIRECTORY_PORT}
directory:
  locale: ${DIRECTORY_LOCALE_UNSET:-en}
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8181, s.HTTP.Port)
	assert.Equal(t, "en", s.Directory.Locale)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name:    "port out of range",
			content: "http:\n  port: 70000\n",
			errPart: "http.port",
		},
		{
			name:    "unknown log level",
			content: "logging:\n  level: verbose\n",
			errPart: "logging.level",
		},
		{
			name:    "unknown default order",
			content: "directory:\n  default_order: popularity\n",
			errPart: "directory.default_order",
		},
		{
			name:    "malformed yaml",
			content: "http: [unclosed\n",
			errPart: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "bad.yaml", tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	assert.Equal(t, "local", GetEnv())

	t.Setenv("ENV", "prod")
	assert.Equal(t, "prod", GetEnv())
}
