// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"inventory/internal/checklist"
	"inventory/internal/config"
	"inventory/internal/fixture"
	"inventory/internal/resource"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, store *fixture.MockStore, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv(config.EnvLogFile, "")
	t.Setenv(config.EnvDSN, "postgres://test")

	closed := false
	t.Cleanup(func() { assert.True(t, closed, "store not closed") })
	open := func(context.Context, *config.Config) (resource.Store, func() error, error) {
		return store, func() error { closed = true; return nil }, nil
	}

	cmd := newRootCmd(&app{open: open, clock: func() time.Time { return fixture.Clock }})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExportToStdout(t *testing.T) {
	out, err := run(t, fixture.NewMockStore(fixture.Complete()), "export", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, fixture.UUID.String())
}

func TestExportToFileCompact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")
	_, err := run(t, fixture.NewMockStore(fixture.Complete()), "export", "1", "--compact", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\n  <gmd:")
}

func TestExportNotFound(t *testing.T) {
	_, err := run(t, fixture.NewMockStore(), "export", "3")
	assert.True(t, errors.Is(err, resource.ErrNotFound), "got %v", err)
}

func TestArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")
	_, err := run(t, fixture.NewMockStore(fixture.Complete()), "archive", "1", "-o", path)
	require.NoError(t, err)

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	require.Len(t, zr.File, 1)
	assert.Equal(t, fixture.UUID.String()+".xml", zr.File[0].Name)
}

func TestArchiveMissingResourceRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")
	_, err := run(t, fixture.NewMockStore(fixture.Complete()), "archive", "1", "2", "-o", path)
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestVerifyText(t *testing.T) {
	r := fixture.Complete()
	r.TitleFre = ""
	r.DescrFre = ""
	store := fixture.NewMockStore(r)

	out, err := run(t, store, "verify", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "rating: 97.5% (78/80)")
	assert.Contains(t, out, "translation needed")
	assert.Contains(t, out, "  - Missing required field: title (French).")
	assert.Contains(t, store.Saved, uint(1))
}

func TestVerifyJSON(t *testing.T) {
	out, err := run(t, fixture.NewMockStore(fixture.Complete()), "verify", "1", "--json")
	require.NoError(t, err)

	var res checklist.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1.0, res.Rating)
	assert.Empty(t, res.Checklist)
}

func TestInvalidID(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(config.EnvLogFile, "")
	cmd := NewRootCmd(func(context.Context, *config.Config) (resource.Store, func() error, error) {
		t.Fatal("store should not be opened")
		return nil, nil, nil
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"verify", "abc"})
	assert.Error(t, cmd.Execute())
}

func TestMigrateUnsupportedStore(t *testing.T) {
	_, err := run(t, fixture.NewMockStore(), "migrate")
	assert.EqualError(t, err, "store does not support migrations")
}

func TestMissingConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	cmd := NewRootCmd(OpenPostgres)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", "missing.yaml", "verify", "1"})
	assert.True(t, errors.Is(cmd.Execute(), config.ErrConfigNotFound))
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
