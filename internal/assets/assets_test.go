package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestManager_ModShadowsGame(t *testing.T) {
	game := t.TempDir()
	mod := t.TempDir()
	writeFile(t, filepath.Join(game, "common/cultures/00_cultures.txt"), "game")
	writeFile(t, filepath.Join(game, "common/religions/religion.txt"), "game religion")
	writeFile(t, filepath.Join(mod, "common/cultures/00_cultures.txt"), "mod")

	m := NewManager(game, mod)

	data, err := m.Load("common/cultures/00_cultures.txt")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "mod" {
		t.Errorf("expected mod file to win, got %q", data)
	}

	data, err = m.Load("common/religions/religion.txt")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "game religion" {
		t.Errorf("expected fallback to game file, got %q", data)
	}

	path, err := m.Locate("common/religions/religion.txt")
	if err != nil || path != filepath.Join(game, "common/religions/religion.txt") {
		t.Errorf("unexpected location %s (err=%v)", path, err)
	}
}

func TestManager_Candidates(t *testing.T) {
	m := NewManager("/game", "/mod1", "/mod2")

	got := m.Candidates("a/b.txt")
	want := []string{
		filepath.Join("/mod2", "a/b.txt"),
		filepath.Join("/mod1", "a/b.txt"),
		filepath.Join("/game", "a/b.txt"),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	if abs := m.Candidates("/abs/x.txt"); len(abs) != 1 || abs[0] != "/abs/x.txt" {
		t.Errorf("absolute path should be its own candidate, got %v", abs)
	}
}

func TestManager_NotFound(t *testing.T) {
	m := NewManager(t.TempDir())
	if _, err := m.Load("missing.txt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestManager_CacheAndInvalidate(t *testing.T) {
	game := t.TempDir()
	path := filepath.Join(game, "x.txt")
	writeFile(t, path, "one")

	m := NewManager(game)
	if _, err := m.Load("x.txt"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	writeFile(t, path, "two")
	data, _ := m.Load("x.txt")
	if string(data) != "one" {
		t.Errorf("expected cached contents, got %q", data)
	}
	if hits, misses := m.Stats(); hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d/%d", hits, misses)
	}

	m.Invalidate("x.txt")
	data, _ = m.Load("x.txt")
	if string(data) != "two" {
		t.Errorf("expected fresh contents after Invalidate, got %q", data)
	}
}
