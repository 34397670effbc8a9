// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "verify <id>",
		Short: "Score a resource and store its completeness checklist",
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

			res, err := svc.Verify(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprintf(out, "rating: %.1f%% (%d/%d)\n", res.Rating*100, res.Achievable-res.Penalties, res.Achievable)
			if res.TranslationNeeded {
				fmt.Fprintln(out, "translation needed")
			}
			for _, msg := range res.Checklist {
				fmt.Fprintf(out, "  - %s\n", msg)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
