// Package leadlog is the durable record of accepted leads: one JSON object
// per line, appended to <dir>/leads.jsonl and never rewritten.
package leadlog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

// FileName is the log file inside the configured directory.
const FileName = "leads.jsonl"

// Store appends leads to a JSONL file.
type Store struct {
	dir   string
	fsync bool
	mu    sync.Mutex
}

// New creates a Store writing into dir. The directory is created on first append.
func New(dir string, fsync bool) *Store {
	return &Store{dir: dir, fsync: fsync}
}

// Path returns the full path of the log file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Append writes lead as a single line. Appends are serialized and each record
// is written with one Write call, so a failed append never corrupts earlier
// lines.
func (s *Store) Append(ctx context.Context, lead domain.Lead) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("leadlog: append: %w", err)
	}

	line, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("leadlog: marshal: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("leadlog: create dir: %w", err)
	}

	f, err := os.OpenFile(s.Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("leadlog: open: %w", err)
	}

	if _, err := f.Write(line); err != nil {
		f.Close()
		return fmt.Errorf("leadlog: write: %w", err)
	}
	if s.fsync {
		if err := f.Sync(); err != nil {
			f.Close()
			return fmt.Errorf("leadlog: sync: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("leadlog: close: %w", err)
	}

	return nil
}

// Ping checks that the log directory exists or can be created.
func (s *Store) Ping(_ context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("leadlog: %w", err)
	}
	return nil
}

// Entry is one line read back from the log. Err is set when the line could
// not be decoded.
type Entry struct {
	Lead domain.Lead
	Err  error
}

// Tail returns the last n lines of the log, oldest first. A missing file
// yields domain.ErrNotFound.
func (s *Store) Tail(n int) ([]Entry, error) {
	f, err := os.Open(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("leadlog: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("leadlog: open: %w", err)
	}
	defer f.Close()

	lines, err := lastLines(f, n)
	if err != nil {
		return nil, fmt.Errorf("leadlog: read: %w", err)
	}

	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		var e Entry
		if err := json.Unmarshal(line, &e.Lead); err != nil {
			e.Err = err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// lastLines keeps a ring of the last n non-blank lines.
func lastLines(r io.Reader, n int) ([][]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	ring := make([][]byte, 0, n)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		cp := append([]byte(nil), line...)
		if len(ring) == n {
			copy(ring, ring[1:])
			ring[n-1] = cp
		} else {
			ring = append(ring, cp)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ring, nil
}
