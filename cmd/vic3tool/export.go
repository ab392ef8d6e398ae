package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/vicky3-mod/internal/game"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all loaded records as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := loadDatabase(cmd.Context(), newAssets())
		if err != nil {
			return err
		}

		if exportOutput == "" {
			return exportYAML(cmd.OutOrStdout(), db)
		}
		f, err := os.Create(exportOutput)
		if err != nil {
			return err
		}
		if err := exportYAML(f, db); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
}

func exportYAML(w io.Writer, db *game.Database) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(db); err != nil {
		return err
	}
	return enc.Close()
}
