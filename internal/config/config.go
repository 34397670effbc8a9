// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when an explicitly named config file does
// not exist.
var ErrConfigNotFound = errors.New("config file not found")

// DefaultFileName is read from the working directory when no path is given.
const DefaultFileName = "inventory.yaml"

const (
	EnvDSN       = "INVENTORY_PG_DSN"
	EnvAddr      = "INVENTORY_ADDR"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
	EnvLogFile   = "LOG_FILE"
)

type DatabaseConfig struct {
	DSN          string `yaml:"dsn"`
	MaxIdleConns int    `yaml:"max_idle_conns,omitempty"`
	MaxOpenConns int    `yaml:"max_open_conns,omitempty"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
	File   string `yaml:"file"`   // rotated log file, "" disables
}

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Database: DatabaseConfig{MaxIdleConns: 10, MaxOpenConns: 100},
		Server:   ServerConfig{Addr: ":8080"},
		Log:      LogConfig{Level: "warn", Format: "console", File: "inventory.log"},
	}
}

// Load reads path over Default and then applies environment overrides. An
// empty path falls back to DefaultFileName, which may be absent.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		if explicit {
			return nil, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
	default:
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	override := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	override(&c.Database.DSN, EnvDSN)
	override(&c.Server.Addr, EnvAddr)
	override(&c.Log.Level, EnvLogLevel)
	override(&c.Log.Format, EnvLogFormat)
	override(&c.Log.File, EnvLogFile)
}

// Validate reports settings a server cannot start without.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn is not set (%s)", EnvDSN)
	}
	return nil
}
