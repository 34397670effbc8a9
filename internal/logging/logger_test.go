// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"inventory/internal/config"
	"inventory/internal/logging"

	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	logger, err := logging.New(config.LogConfig{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatal(err)
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Fatal("debug level not enabled")
	}

	logger, err = logging.New(config.LogConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if logger.Core().Enabled(zap.InfoLevel) {
		t.Fatal("default level should be warn")
	}
}

func TestNewRejectsBadSettings(t *testing.T) {
	if _, err := logging.New(config.LogConfig{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := logging.New(config.LogConfig{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.log")
	logger, err := logging.New(config.LogConfig{Level: "info", Format: "json", File: path})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("log file is empty")
	}
}
