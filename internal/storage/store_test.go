package storage

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/session"
)

func testStats() session.Stats {
	return session.Stats{
		Algorithm:   "merge",
		Kind:        "write",
		Rows:        3,
		Width:       8,
		TotalFrames: 24,
		Writes:      70,
		RowOps:      []int{24, 22, 24},
		Ticks:       25,
		Captures:    10,
		Completed:   true,
		Elapsed:     3 * time.Millisecond,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := *config.DefaultConfig()
	cfg.Algorithm = "merge"
	cfg.Seed = 42

	runID, err := st.Save(cfg, testStats(), image.NewRGBA(image.Rect(0, 0, 8, 10)))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Algorithm != "merge" {
		t.Errorf("expected algorithm 'merge', got '%s'", meta.Algorithm)
	}
	if meta.Config.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Config.Seed)
	}
	if meta.Writes != 70 || meta.Ticks != 25 {
		t.Errorf("unexpected counts: writes %d ticks %d", meta.Writes, meta.Ticks)
	}

	ops, err := st.LoadRowOps(runID)
	if err != nil {
		t.Fatalf("load row ops failed: %v", err)
	}
	want := []int{24, 22, 24}
	if len(ops) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(ops))
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("row %d: expected %d, got %d", i, want[i], ops[i])
		}
	}

	if st.FilmstripPath(runID) == "" {
		t.Error("expected filmstrip to be saved")
	}
}

func TestStoreSaveWithoutFilmstrip(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save(*config.DefaultConfig(), testStats(), nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if st.FilmstripPath(runID) != "" {
		t.Error("expected no filmstrip")
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	first, err := st.Save(*config.DefaultConfig(), testStats(), nil)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := st.Save(*config.DefaultConfig(), testStats(), nil)
	if err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second || runs[1].ID != first {
		t.Error("expected newest run first")
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/absent")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := st.LoadRowOps("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
