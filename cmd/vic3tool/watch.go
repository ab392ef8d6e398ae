package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/vicky3-mod/internal/game"
	"github.com/Faultbox/vicky3-mod/internal/logger"
	"github.com/Faultbox/vicky3-mod/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-check data files whenever they are saved",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		src := game.SourcesFrom(cfg.Data)
		m := newAssets()

		// Every root a listed file could come from is watched, so a new mod
		// override is picked up as well as edits to the current one.
		type target struct {
			rel  string
			kind game.Kind
		}
		targets := make(map[string]target)
		for _, kind := range game.Kinds {
			for _, rel := range src.Files(kind) {
				for _, path := range m.Candidates(rel) {
					if _, err := os.Stat(filepath.Dir(path)); err == nil {
						targets[path] = target{rel: rel, kind: kind}
					}
				}
			}
		}
		if len(targets) == 0 {
			return fmt.Errorf("none of the configured data directories exist under %s", cfg.Data.Root)
		}

		decode := func(path string) error {
			t := targets[path]
			m.Invalidate(t.rel)
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			n, err := game.Decode(t.kind, data)
			if err != nil {
				return err
			}
			logger.Debug("records decoded", zap.String("file", path), zap.Int("records", n))
			return nil
		}

		paths := make([]string, 0, len(targets))
		for p := range targets {
			paths = append(paths, p)
		}
		w, err := watch.New(paths, decode, cfg.Watch.Debounce)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			w.Stop()
			return err
		}
		go func() {
			<-ctx.Done()
			w.Stop()
		}()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "watching %d file(s), press Ctrl+C to stop\n", len(paths))
		for res := range w.Results {
			if res.Err != nil {
				fmt.Fprintf(out, "FAIL %s: %v\n", res.File, res.Err)
				continue
			}
			fmt.Fprintf(out, "ok   %s\n", res.File)
		}
		return nil
	},
}
