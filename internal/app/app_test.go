package app

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"address-book/internal/config"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		Logger:    &config.ConfigLogger{Level: "debug", File: os.DevNull},
		Storage:   &config.ConfigStorage{Driver: driver, Dir: "/data", AutoSave: "auto_save", Extension: ".json"},
		Birthdays: &config.ConfigBirthdays{WindowDays: 7, Separator: "; "},
	}
}

func newTestApp(t *testing.T, cfg *config.Config, fs afero.Fs, input string) (*App, *bytes.Buffer) {
	t.Helper()

	mock := clock.NewMock()
	mock.Set(time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC))

	var out bytes.Buffer
	a, err := New(cfg, strings.NewReader(input), &out, WithFs(fs), WithClock(mock))
	require.NoError(t, err)
	require.NoError(t, a.Initialize())
	return a, &out
}

func TestApp_SessionIsAutoSavedAndRestored(t *testing.T) {
	fs := afero.NewMemMapFs()

	first, _ := newTestApp(t, testConfig(config.DriverFile), fs, "add\nAlice\n0501234567\n16/10/1990\n\n\n\nexit\n")
	require.NoError(t, first.Run(context.Background()))
	first.Shutdown()

	exists, err := afero.Exists(fs, "/data/auto_save.json")
	require.NoError(t, err)
	assert.True(t, exists)

	second, out := newTestApp(t, testConfig(config.DriverFile), fs, "congratulate\n")
	require.NoError(t, second.Run(context.Background()))

	assert.Equal(t, 1, second.Book.Len())
	assert.Contains(t, out.String(), "Alice: 1 day left")
}

func TestApp_MemoryDriver(t *testing.T) {
	fs := afero.NewMemMapFs()

	a, out := newTestApp(t, testConfig(config.DriverMemory), fs, "add\nBob\n\n\n\n\n\nview\n")
	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), "Contact Bob added.")
	files, err := afero.ReadDir(fs, "/")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestApp_UnknownDriver(t *testing.T) {
	a, err := New(testConfig("sql"), strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)

	assert.Error(t, a.Initialize())
}

func TestApp_RunBeforeInitialize(t *testing.T) {
	a, err := New(testConfig(config.DriverMemory), strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)

	assert.Error(t, a.Run(context.Background()))
}
