// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"inventory/internal/checklist"
	"inventory/internal/config"
	"inventory/internal/db"
	"inventory/internal/inventory"
	"inventory/internal/logging"
	"inventory/internal/lookup"
	"inventory/internal/metrics"
	"inventory/internal/nap"
	"inventory/internal/resource"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Opener connects the resource store. The returned func releases it.
type Opener func(ctx context.Context, cfg *config.Config) (resource.Store, func() error, error)

// OpenPostgres is the production Opener.
func OpenPostgres(_ context.Context, cfg *config.Config) (resource.Store, func() error, error) {
	conn, err := db.Connect(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, nil, err
	}
	return resource.NewGormStore(conn), sqlDB.Close, nil
}

// app is the state shared by every subcommand after PersistentPreRunE.
type app struct {
	open       Opener
	configPath string
	envFile    string
	clock      func() time.Time

	cfg    *config.Config
	logger *zap.Logger
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", a.envFile, err)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.logger = logger
	zap.ReplaceGlobals(logger)
	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return nil
}

// service opens the store and wires the builder and scorer around it.
func (a *app) service(ctx context.Context, reg prometheus.Registerer) (*inventory.Service, func() error, error) {
	store, closeStore, err := a.open(ctx, a.cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	lookups := lookup.Default()
	var m *metrics.Metrics
	if reg != nil {
		m = metrics.New(reg)
	}
	svc := inventory.NewService(store,
		nap.NewBuilder(lookups, nap.WithClock(a.clock)),
		checklist.NewScorer(lookups, checklist.WithClock(a.clock)),
		m,
	)
	return svc, closeStore, nil
}

// NewRootCmd builds the inventory command tree around open.
func NewRootCmd(open Opener) *cobra.Command {
	return newRootCmd(&app{open: open, clock: time.Now})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "inventory",
		Short: "Export ISO 19115 NAP metadata and score resource completeness",
		Long: `inventory serves and exports bilingual ISO 19115 North American Profile
metadata for catalogued resources, and scores each resource against the
completeness checklist.

Configuration is read from inventory.yaml (or --config), then .env, then the
environment: INVENTORY_PG_DSN, INVENTORY_ADDR, LOG_LEVEL, LOG_FORMAT, LOG_FILE.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to the YAML config file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before the environment is read")

	root.AddCommand(
		newServeCmd(a),
		newExportCmd(a),
		newArchiveCmd(a),
		newVerifyCmd(a),
		newMigrateCmd(a),
	)
	return root
}

// Execute runs the production command tree.
func Execute(ctx context.Context) error {
	return NewRootCmd(OpenPostgres).ExecuteContext(ctx)
}
