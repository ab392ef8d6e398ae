package game

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/Faultbox/vicky3-mod/internal/assets"
	"github.com/Faultbox/vicky3-mod/internal/config"
	"github.com/Faultbox/vicky3-mod/pkg/color"
	"github.com/Faultbox/vicky3-mod/pkg/formats"
)

// memFiles is an in-memory FileSource.
type memFiles map[string]string

func (m memFiles) Load(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(data), nil
}

var testFiles = memFiles{
	"cultures.txt": `
swedish = { color = { 8 84 160 } religion = protestant graphics = european ethnicities = { 1 = caucasian } }
sami = { color = hsv{ 0.1 0.5 0.5 } religion = animist graphics = european ethnicities = { 1 = caucasian } }
`,
	"religions.txt": `
protestant = { texture = "p.dds" traits = { christian } color = hsv360{ 220 60 80 } }
`,
	"countries.txt": `
SWE = { color = { 8 84 160 } country_type = recognized tier = kingdom cultures = { swedish } capital = STATE_SVEALAND }
NOR = { color = { 1 2 3 } country_type = colonial tier = principality cultures = { norwegian } }
`,
	"types.txt": `
recognized = { uses_prestige = yes default_rank = minor_power }
`,
	"ranks.txt": `
minor_power = { rank_value = 1 icon_index = 1 }
`,
	"states.txt": `
STATES = { s:STATE_SVEALAND = { create_state = { country = c:SWE owned_provinces = { x1 } } add_homeland = cu:swedish } }
`,
}

var testSources = Sources{
	Cultures:           []string{"cultures.txt"},
	Religions:          []string{"religions.txt"},
	CountryDefinitions: []string{"countries.txt"},
	CountryTypes:       []string{"types.txt"},
	CountryRanks:       []string{"ranks.txt"},
	States:             []string{"states.txt"},
}

func TestLoad(t *testing.T) {
	db, err := Load(context.Background(), testFiles, testSources, Options{Workers: 2})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(db.Cultures) != 2 || len(db.CountryDefinitions) != 2 || len(db.States) != 1 {
		t.Errorf("unexpected record counts: %d cultures, %d countries, %d states",
			len(db.Cultures), len(db.CountryDefinitions), len(db.States))
	}
	if db.Religions["protestant"].Color != color.HSV360(220, 60, 80) {
		t.Errorf("unexpected religion color %v", db.Religions["protestant"].Color)
	}
	if db.CountryDefinitions["SWE"].Tier != formats.TierKingdom {
		t.Errorf("unexpected SWE tier %s", db.CountryDefinitions["SWE"].Tier)
	}
}

func TestLoad_LaterFileWins(t *testing.T) {
	files := memFiles{
		"a.txt": `swedish = { color = { 1 1 1 } religion = protestant graphics = european ethnicities = { 1 = caucasian } }`,
		"b.txt": `swedish = { color = { 2 2 2 } religion = protestant graphics = european ethnicities = { 1 = caucasian } }`,
	}
	for i := 0; i < 10; i++ {
		db, err := Load(context.Background(), files, Sources{Cultures: []string{"a.txt", "b.txt"}}, Options{Workers: 2})
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if db.Cultures["swedish"].Color != color.RGB(2, 2, 2) {
			t.Fatalf("expected the later file to win, got %v", db.Cultures["swedish"].Color)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	files := memFiles{
		"bad.txt": `swedish = { color = rgb{ 1 2 } religion = protestant graphics = european ethnicities = { } }`,
	}

	_, err := Load(context.Background(), files, Sources{Cultures: []string{"bad.txt"}}, Options{Workers: 1})
	var ae *color.ArityError
	if !errors.As(err, &ae) {
		t.Fatalf("expected ArityError, got %v", err)
	}
	if !strings.Contains(err.Error(), "bad.txt") || !strings.Contains(err.Error(), "swedish.color") {
		t.Errorf("error should name the file and field: %v", err)
	}

	_, err = Load(context.Background(), files, Sources{Religions: []string{"missing.txt"}}, Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, testFiles, testSources, Options{Workers: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLoad_FromModdedDirectories(t *testing.T) {
	game := t.TempDir()
	mod := t.TempDir()
	write := func(dir, rel, content string) {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write(game, "common/religions/religion.txt", testFiles["religions.txt"])
	write(mod, "common/religions/religion.txt",
		`protestant = { texture = "p.dds" traits = { christian } color = { 0.5 0.5 0.5 } }`)

	cfg := config.Default().Data
	cfg.Cultures, cfg.CountryDefinitions, cfg.CountryTypes, cfg.CountryRanks, cfg.States = nil, nil, nil, nil, nil

	db, err := Load(context.Background(), assets.NewManager(game, mod), SourcesFrom(cfg), Options{Workers: cfg.Workers})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if db.Religions["protestant"].Color != color.RGBF(0.5, 0.5, 0.5) {
		t.Errorf("expected the mod religion, got %v", db.Religions["protestant"].Color)
	}
}

func TestValidate(t *testing.T) {
	db, err := Load(context.Background(), testFiles, testSources, Options{Workers: 4})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	errs := multierr.Errors(db.Validate())
	want := []RefError{
		{KindCulture, "sami", "religion", KindReligion, "animist"},
		{KindCountryDefinition, "NOR", "cultures", KindCulture, "norwegian"},
		{KindCountryDefinition, "NOR", "country_type", KindCountryType, "colonial"},
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d problems, got %d: %v", len(want), len(errs), errs)
	}
	for i, err := range errs {
		var re *RefError
		if !errors.As(err, &re) {
			t.Fatalf("expected RefError, got %v", err)
		}
		if *re != want[i] {
			t.Errorf("problem %d: expected %+v, got %+v", i, want[i], *re)
		}
	}
	if !strings.Contains(errs[0].Error(), `religion "animist" is not a defined religion`) {
		t.Errorf("unexpected message %q", errs[0])
	}
}

func TestValidate_SkipsUnloadedKinds(t *testing.T) {
	src := Sources{Cultures: testSources.Cultures}
	db, err := Load(context.Background(), testFiles, src, Options{Workers: 1})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := db.Validate(); err != nil {
		t.Errorf("expected no problems without religion files, got %v", err)
	}
}

func TestSources(t *testing.T) {
	if kind, ok := testSources.Lookup("ranks.txt"); !ok || kind != KindCountryRank {
		t.Errorf("expected country rank, got %s (ok=%v)", kind, ok)
	}
	if _, ok := testSources.Lookup("other.txt"); ok {
		t.Error("expected unlisted file to be unknown")
	}

	n, err := Decode(KindState, []byte(testFiles["states.txt"]))
	if err != nil || n != 1 {
		t.Errorf("expected 1 state, got %d (err=%v)", n, err)
	}
	if _, err := Decode(Kind(99), nil); err == nil {
		t.Error("expected error for unknown kind")
	}
}
