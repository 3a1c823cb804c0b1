// Package highscore persists the best score across sessions as a small JSON
// document in the user's config directory.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type record struct {
	HighScore int `json:"high_score"`
}

// Store reads and writes a single high-score value.
type Store struct {
	path string

	mu   sync.Mutex
	best int
}

// DefaultPath returns <user config dir>/blockfill/highscore.json.
func DefaultPath() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "blockfill", "highscore.json"), nil
}

// Open returns a store backed by path and loads the current value. A missing
// file reads as zero.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	best, err := s.read()
	if err != nil {
		return s, err
	}
	s.best = best
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Best returns the last loaded or submitted high score.
func (s *Store) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best
}

// Submit records score if it beats the current best and reports whether it did.
func (s *Store) Submit(score int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score <= s.best {
		return false, nil
	}
	s.best = score
	return true, s.write(score)
}

func (s *Store) read() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if rec.HighScore < 0 {
		return 0, nil
	}
	return rec.HighScore, nil
}

func (s *Store) write(score int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(record{HighScore: score}, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
