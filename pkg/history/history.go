package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/plan"
)

// Run is one recorded execution attempt: the plan summary as it stood
// when execution started plus the tracking outcome.
type Run struct {
	Timestamp time.Time    `json:"timestamp"`
	Summary   plan.Summary `json:"summary"`
	Cursor    int          `json:"cursor"`
	Completed bool         `json:"completed"`
	Error     string       `json:"error,omitempty"`
}

// Store writes and reads run logs as one JSON file per run.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. An empty dir uses the
// default state directory.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Store{dir: dir}
}

// DefaultDir returns the default run-log directory under the XDG state
// home.
func DefaultDir() string {
	return filepath.Join(xdg.StateHome, "renamer", "runs")
}

// Dir returns the directory runs are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save records a run, returning the path it was written to.
func (s *Store) Save(run Run) (string, error) {
	logger := logging.GetLogger("history")

	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now()
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrHistoryWrite, "failed to create run log directory %s", s.dir)
	}

	name := fmt.Sprintf("run-%s.json", run.Timestamp.UTC().Format("20060102T150405.000000000Z"))
	path := filepath.Join(s.dir, name)

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrHistoryWrite, "failed to encode run log")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrHistoryWrite, "failed to write run log %s", path)
	}

	logger.Debug().Str("path", path).Bool("completed", run.Completed).Msg("Recorded run")
	return path, nil
}

// List returns all recorded runs, oldest first.
func (s *Store) List() ([]Run, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrHistoryRead, "failed to read run log directory %s", s.dir)
	}

	var runs []Run
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrHistoryRead, "failed to read run log %s", e.Name())
		}
		var run Run
		if err := json.Unmarshal(data, &run); err != nil {
			return nil, errors.Wrapf(err, errors.ErrHistoryRead, "failed to decode run log %s", e.Name())
		}
		runs = append(runs, run)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

// Latest returns the most recent run, or nil if none is recorded.
func (s *Store) Latest() (*Run, error) {
	runs, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[len(runs)-1], nil
}
