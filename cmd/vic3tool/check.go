package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load all configured data files and report broken references",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := loadDatabase(cmd.Context(), newAssets())
		if err != nil {
			return err
		}

		problems := multierr.Errors(db.Validate())
		out := cmd.OutOrStdout()
		for _, p := range problems {
			fmt.Fprintln(out, p)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d problem(s) found", len(problems))
		}
		fmt.Fprintf(out, "ok: %d cultures, %d religions, %d countries, %d states\n",
			len(db.Cultures), len(db.Religions), len(db.CountryDefinitions), len(db.States))
		return nil
	},
}
