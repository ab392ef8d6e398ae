package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or save the effective configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration after applying file and flags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save [path]",
	Short: "Write the configuration to path or the user config directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			if err := cfg.SaveTo(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", args[0])
			return nil
		}
		return cfg.Save()
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSaveCmd)
}
