package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInitConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := InitConfig[Config](filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, &ConfigLogger{Level: "info", File: "addressbook.log", Format: "json"}, cfg.Logger)
	assert.Equal(t, &ConfigStorage{Driver: DriverFile, Dir: ".", AutoSave: "auto_save", Extension: ".json"}, cfg.Storage)
	assert.Equal(t, &ConfigBirthdays{WindowDays: 7, Separator: "; "}, cfg.Birthdays)
}

func TestInitConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
logger:
  level: debug
storage:
  driver: memory
  auto_save: session
birthdays:
  window_days: 3
`)

	cfg, err := InitConfig[Config](path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "addressbook.log", cfg.Logger.File)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "session", cfg.Storage.AutoSave)
	assert.Equal(t, 3, cfg.Birthdays.WindowDays)
	assert.Equal(t, "; ", cfg.Birthdays.Separator)
}

func TestInitConfig_ExpandsEnvWithDefaults(t *testing.T) {
	t.Setenv("AB_TEST_DIR", "/var/lib/addressbook")
	path := writeConfig(t, `
storage:
  dir: ${AB_TEST_DIR:-/tmp}
  auto_save: ${AB_TEST_UNSET:-fallback}
birthdays:
  window_days: ${AB_TEST_WINDOW:-10}
`)

	cfg, err := InitConfig[Config](path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/addressbook", cfg.Storage.Dir)
	assert.Equal(t, "fallback", cfg.Storage.AutoSave)
	assert.Equal(t, 10, cfg.Birthdays.WindowDays)
}

func TestInitConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("ADDRESSBOOK_STORAGE_DRIVER", "memory")
	t.Setenv("ADDRESSBOOK_LOGGER_FILE", "-")

	cfg, err := InitConfig[Config]("")
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "-", cfg.Logger.File)
}

func TestInitConfig_TextKeysKeepNumericLookingValues(t *testing.T) {
	t.Setenv("AB_TEST_STORE", "0042")
	path := writeConfig(t, `
storage:
  dir: "007"
  auto_save: ${AB_TEST_STORE}
birthdays:
  window_days: "5"
`)

	cfg, err := InitConfig[Config](path)
	require.NoError(t, err)

	assert.Equal(t, "007", cfg.Storage.Dir)
	assert.Equal(t, "0042", cfg.Storage.AutoSave)
	assert.Equal(t, 5, cfg.Birthdays.WindowDays)
}

func TestInitConfig_BrokenFile(t *testing.T) {
	path := writeConfig(t, "logger: [unterminated")

	_, err := InitConfig[Config](path)
	assert.Error(t, err)
}

func TestExpandEnvWithDefaults(t *testing.T) {
	t.Setenv("AB_TEST_NAME", "book")

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"${AB_TEST_NAME}", "book"},
		{"${AB_TEST_NAME:-other}.json", "book.json"},
		{"${AB_TEST_MISSING:-other}", "other"},
		{"${AB_TEST_MISSING}", ""},
	}

	for _, tt := range tests {
		if got := expandEnvWithDefaults(tt.in); got != tt.want {
			t.Errorf("expandEnvWithDefaults(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
