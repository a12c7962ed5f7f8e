package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-passchange/internal/errutil"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("endpoint", "", "")
	fs.String("base-url", "", "")
	fs.String("bearer-token", "", "")
	fs.String("log-format", "text", "")
	fs.String("log-level", "info", "")
	fs.Bool("stdin", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.HasEndpoint())
}

func TestLoad_FileThenFlags(t *testing.T) {
	path := writeConfig(t, `
endpoint:
  base_url: https://accounts.example.test
  path: /me/password
auth:
  bearer_token: from-file
log:
  format: json
theme:
  variant: high-contrast
`)

	cfg, err := Load(path, newFlags(t, "--bearer-token", "from-flag"))
	require.NoError(t, err)

	assert.Equal(t, "https://accounts.example.test", cfg.Endpoint.BaseURL)
	assert.Equal(t, "/me/password", cfg.Endpoint.Path)
	assert.Equal(t, "from-flag", cfg.Auth.BearerToken, "changed flags override the file")
	assert.Equal(t, "json", cfg.Log.Format, "unchanged flag defaults must not override the file")
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "high-contrast", cfg.Theme.Variant)
	assert.True(t, cfg.HasEndpoint())
}

func TestLoad_FlagsOnly(t *testing.T) {
	cfg, err := Load("", newFlags(t, "--endpoint", "https://a.test/api/change-password", "--log-level", "DEBUG", "--stdin"))
	require.NoError(t, err)
	assert.Equal(t, "https://a.test/api/change-password", cfg.Endpoint.URL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad format", body: "log:\n  format: xml\n"},
		{name: "relative url", body: "endpoint:\n  url: /api/change-password\n"},
		{name: "path without slash", body: "endpoint:\n  base_url: https://a.test\n  path: api\n"},
		{name: "cookie without value", body: "auth:\n  cookie: session\n"},
		{name: "not yaml", body: "endpoint: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), nil)
			require.Error(t, err)
			errutil.AssertErrorCode(t, err, CodeInvalid)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, CodeInvalid)
}

func TestDump_RedactsCredentials(t *testing.T) {
	cfg := Default()
	cfg.Endpoint.URL = "https://a.test/api/change-password"
	cfg.Auth.BearerToken = "secret-token"
	cfg.Auth.Cookie = "session=secret"

	out, err := Dump(cfg)
	require.NoError(t, err)
	text := string(out)
	assert.NotContains(t, text, "secret")
	assert.Contains(t, text, redacted)
	assert.Contains(t, text, "https://a.test/api/change-password")
	assert.Equal(t, "secret-token", cfg.Auth.BearerToken, "dump must not mutate the caller's config")
}

func TestDirAndDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "passchange"), Dir())
	assert.Empty(t, DefaultPath())

	require.NoError(t, os.MkdirAll(Dir(), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(Dir(), "config.yaml"), []byte("log:\n  level: warn\n"), 0o600))
	assert.Equal(t, filepath.Join(dir, "passchange", "config.yaml"), DefaultPath())
}
