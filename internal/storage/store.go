// Package storage keeps a log of finished runs on disk: one directory per
// run holding its metadata, the per-row op counts and the filmstrip. Traces
// themselves are never written.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/session"
)

const (
	metadataFile  = "metadata.json"
	rowOpsFile    = "row_ops.csv"
	filmstripFile = "filmstrip.png"
)

var ErrNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string        `json:"id"`
	Algorithm   string        `json:"algorithm"`
	Kind        string        `json:"kind"`
	Timestamp   time.Time     `json:"timestamp"`
	Config      config.Config `json:"config"`
	Rows        int           `json:"rows"`
	Width       int           `json:"width"`
	TotalFrames int           `json:"total_frames"`
	Ticks       int           `json:"ticks"`
	Swaps       int           `json:"swaps"`
	Writes      int           `json:"writes"`
	Captures    int           `json:"captures"`
	Completed   bool          `json:"completed"`
	Elapsed     time.Duration `json:"elapsed"`
}

// Save records a finished session. strip may be nil when no renderer was
// attached. The returned id names the run directory.
func (s *Store) Save(cfg config.Config, st session.Stats, strip image.Image) (string, error) {
	runID := uuid.NewString()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Algorithm:   st.Algorithm,
		Kind:        st.Kind,
		Timestamp:   time.Now(),
		Config:      cfg,
		Rows:        st.Rows,
		Width:       st.Width,
		TotalFrames: st.TotalFrames,
		Ticks:       st.Ticks,
		Swaps:       st.Swaps,
		Writes:      st.Writes,
		Captures:    st.Captures,
		Completed:   st.Completed,
		Elapsed:     st.Elapsed,
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeRowOps(filepath.Join(runDir, rowOpsFile), st.RowOps); err != nil {
		return "", err
	}
	if strip != nil {
		if err := export.SavePNG(filepath.Join(runDir, filmstripFile), strip); err != nil {
			return "", err
		}
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRowOps(path string, ops []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"row", "ops"}); err != nil {
		return err
	}
	for y, n := range ops {
		if err := w.Write([]string{strconv.Itoa(y), strconv.Itoa(n)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadRowOps reads back the trace length of every row.
func (s *Store) LoadRowOps(runID string) ([]int, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, rowOpsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return []int{}, nil
		}
		return nil, err
	}

	ops := make([]int, 0)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("row %s: %w", record[0], err)
		}
		ops = append(ops, n)
	}
	return ops, nil
}

// FilmstripPath returns the filmstrip of a run, or "" if none was saved.
func (s *Store) FilmstripPath(runID string) string {
	path := filepath.Join(s.baseDir, runID, filmstripFile)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
