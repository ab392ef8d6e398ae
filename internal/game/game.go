// Package game loads the record files of a game installation, with mods
// layered on top, into one Database.
package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/vicky3-mod/internal/logger"
	"github.com/Faultbox/vicky3-mod/pkg/formats"
)

// FileSource reads data files by their relative path.
type FileSource interface {
	Load(path string) ([]byte, error)
}

// Database holds every loaded record, keyed by record name. The names are
// the handles records use to refer to each other.
type Database struct {
	Cultures           map[string]*formats.Culture           `yaml:"cultures"`
	Religions          map[string]*formats.Religion          `yaml:"religions"`
	CountryDefinitions map[string]*formats.CountryDefinition `yaml:"country_definitions"`
	CountryTypes       map[string]*formats.CountryType       `yaml:"country_types"`
	CountryRanks       map[string]*formats.CountryRank       `yaml:"country_ranks"`
	States             map[string]*formats.StateDefinition   `yaml:"states"`

	sources Sources
}

// Options configures Load.
type Options struct {
	Workers int // files decoded concurrently, at least 1
}

// Load reads and decodes every file in src. Files are decoded concurrently;
// the first failure cancels the remaining work and is returned.
func Load(ctx context.Context, fs FileSource, src Sources, opts Options) (*Database, error) {
	log := logger.Named("game")

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	cultures := schedule(ctx, g, fs, src.Cultures, formats.ParseCultures)
	religions := schedule(ctx, g, fs, src.Religions, formats.ParseReligions)
	defs := schedule(ctx, g, fs, src.CountryDefinitions, formats.ParseCountryDefinitions)
	types := schedule(ctx, g, fs, src.CountryTypes, formats.ParseCountryTypes)
	ranks := schedule(ctx, g, fs, src.CountryRanks, formats.ParseCountryRanks)
	states := schedule(ctx, g, fs, src.States, formats.ParseStates)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	db := &Database{
		Cultures:           merge(log, KindCulture, src.Cultures, cultures),
		Religions:          merge(log, KindReligion, src.Religions, religions),
		CountryDefinitions: merge(log, KindCountryDefinition, src.CountryDefinitions, defs),
		CountryTypes:       merge(log, KindCountryType, src.CountryTypes, types),
		CountryRanks:       merge(log, KindCountryRank, src.CountryRanks, ranks),
		States:             merge(log, KindState, src.States, states),
		sources:            src,
	}

	log.Info("data loaded",
		zap.Int("cultures", len(db.Cultures)),
		zap.Int("religions", len(db.Religions)),
		zap.Int("countries", len(db.CountryDefinitions)),
		zap.Int("country_types", len(db.CountryTypes)),
		zap.Int("country_ranks", len(db.CountryRanks)),
		zap.Int("states", len(db.States)),
	)
	return db, nil
}

// schedule queues one decode task per file. Results land in the returned
// slice at the file's index once the group finishes.
func schedule[T any](ctx context.Context, g *errgroup.Group, fs FileSource, files []string, parse func([]byte) (map[string]*T, error)) []map[string]*T {
	out := make([]map[string]*T, len(files))
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := fs.Load(file)
			if err != nil {
				return err
			}
			records, err := parse(data)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			out[i] = records
			return nil
		})
	}
	return out
}

// merge folds per-file results in file order.
func merge[T any](log *zap.Logger, kind Kind, files []string, parts []map[string]*T) map[string]*T {
	out := make(map[string]*T)
	for i, part := range parts {
		for name, rec := range part {
			if _, dup := out[name]; dup {
				log.Debug("record replaced",
					zap.Stringer("kind", kind),
					zap.String("name", name),
					zap.String("file", files[i]),
				)
			}
			out[name] = rec
		}
	}
	return out
}

// Sources returns the file lists the database was loaded from.
func (db *Database) Sources() Sources {
	return db.sources
}
