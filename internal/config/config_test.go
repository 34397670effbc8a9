// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDSN, EnvAddr, EnvLogLevel, EnvLogFormat, EnvLogFile} {
		if v, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { os.Setenv(key, v) })
		}
	}
}

func TestLoad_AllFields(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	content := `database:
  dsn: postgres://inventory@localhost/inventory
  max_idle_conns: 2
  max_open_conns: 8
server:
  addr: 127.0.0.1:9000
log:
  level: debug
  format: json
  file: ""
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://inventory@localhost/inventory", cfg.Database.DSN)
	assert.Equal(t, 2, cfg.Database.MaxIdleConns)
	assert.Equal(t, 8, cfg.Database.MaxOpenConns)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "", cfg.Log.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MinimalYAMLKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: :9999\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Error(t, cfg.Validate())
}

func TestLoad_ExplicitFileNotFound(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_DefaultFileOptional(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{invalid"), 0644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  dsn: from-file\n"), 0644))

	t.Setenv(EnvDSN, "from-env")
	t.Setenv(EnvAddr, ":7000")
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogFile, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.DSN)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "", cfg.Log.File)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
