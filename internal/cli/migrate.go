// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type migrator interface {
	Migrate(ctx context.Context) error
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the resource tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeStore, err := a.open(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			m, ok := store.(migrator)
			if !ok {
				return errors.New("store does not support migrations")
			}
			if err := m.Migrate(cmd.Context()); err != nil {
				return err
			}
			zap.L().Info("schema migrated")
			return nil
		},
	}
}
