// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid resource id %q", s)
	}
	return uint(n), nil
}

func newExportCmd(a *app) *cobra.Command {
	var (
		output  string
		compact bool
	)
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Write the NAP XML document of one resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			svc, closeStore, err := a.service(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closeStore()

			doc, err := svc.Export(cmd.Context(), id, !compact)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(doc.XML)
				return err
			}
			if err := os.WriteFile(output, doc.XML, 0o644); err != nil {
				return err
			}
			zap.L().Info("document written", zap.String("path", output), zap.Int("bytes", len(doc.XML)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&compact, "compact", false, "omit indentation")
	return cmd
}

func newArchiveCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "archive <id>...",
		Short: "Write a zip holding the NAP XML documents of several resources",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("--output is required")
			}
			ids := make([]uint, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			svc, closeStore, err := a.service(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer closeStore()

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := svc.ExportArchive(cmd.Context(), f, ids); err != nil {
				f.Close()
				os.Remove(output)
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "zip file to write")
	return cmd
}
