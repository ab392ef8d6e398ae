// vic3tool inspects and rewrites Victoria 3 game and mod data.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Faultbox/vicky3-mod/internal/assets"
	"github.com/Faultbox/vicky3-mod/internal/config"
	"github.com/Faultbox/vicky3-mod/internal/game"
	"github.com/Faultbox/vicky3-mod/internal/logger"
	"github.com/Faultbox/vicky3-mod/pkg/color"
)

var (
	overrides config.Overrides
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vic3tool",
	Short: "Victoria 3 mod data utility",
	Long: `vic3tool reads the script files of a Victoria 3 installation and any mods
layered over it. It decodes colors in all their written shapes, converts
them between color spaces, checks references between records and exports
the data as YAML.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { logger.Sync() },
}

func init() {
	overrides.Register(rootCmd.PersistentFlags())
	rootCmd.AddCommand(colorCmd, convertCmd, checkCmd, exportCmd, watchCmd, configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(*cobra.Command, []string) error {
	var err error
	cfg, err = config.Load(overrides)
	if err != nil {
		return err
	}
	return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
}

func encodeOptions() color.EncodeOptions {
	return color.EncodeOptions{TagRGB: cfg.Color.TagRGB}
}

func newAssets() *assets.Manager {
	return assets.NewManager(cfg.Data.Root, cfg.Data.Mods...)
}

func loadDatabase(ctx context.Context, fs game.FileSource) (*game.Database, error) {
	return game.Load(ctx, fs, game.SourcesFrom(cfg.Data), game.Options{Workers: cfg.Data.Workers})
}
