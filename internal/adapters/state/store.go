// Package state persists a record of the last completed invocation inside
// the object directory.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"github.com/distroeng/eebuild/internal/core/domain"
)

// recordFile is the record's path relative to the object directory.
const recordFile = ".eebuild/last_run.json"

// Record describes the last completed invocation. The configure fingerprint
// lets the driver report when configure options changed between runs; it
// never short-circuits anything, since configuring is always rerun.
type Record struct {
	ConfigureFingerprint string    `json:"configure_fingerprint"`
	ConfigureLine        string    `json:"configure_line"`
	BuildLine            string    `json:"build_line,omitempty"`
	CompletedAt          time.Time `json:"completed_at"`
}

// Store reads and writes the invocation record for one object directory.
// It is safe for concurrent use.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a Store rooted at the given object directory.
func NewStore(objDir string) *Store {
	return &Store{path: filepath.Join(filepath.Clean(objDir), recordFile)}
}

// Last returns the previous invocation record, or nil when none exists.
func (s *Store) Last() (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStateReadFailed, err), "path", s.path)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStateReadFailed, err), "path", s.path)
	}
	return &rec, nil
}

// Put writes rec as the new invocation record.
func (s *Store) Put(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrStateWriteFailed, err), "path", s.path)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.With(errors.Join(domain.ErrStateWriteFailed, err), "path", s.path)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil { //nolint:gosec // record carries no secrets
		return zerr.With(errors.Join(domain.ErrStateWriteFailed, err), "path", s.path)
	}
	return nil
}

// Fingerprint returns a stable hash of a command line, used to detect
// configure option changes between invocations.
func Fingerprint(line string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(line))
}
