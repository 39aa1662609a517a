package glossary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hbollon/go-edlib"
)

// Store defines glossary source operations.
type Store interface {
	// Entries returns a snapshot of the glossary in stored order.
	Entries() Glossary
	// Lookup returns the entry with the given source term.
	Lookup(source string) (Entry, error)
	// Add merges entries into the glossary and returns how many were given.
	Add(entries ...Entry) (int, error)
}

// FileStore is a Store backed by a JSON file.
type FileStore struct {
	mu      sync.RWMutex
	saveMu  sync.Mutex // serializes file writes
	path    string
	entries Glossary
	saved   string // fingerprint of the last loaded or written content
	logger  *slog.Logger
}

// NewFileStore creates a store for the JSON file at path. The file is not
// read until Load is called. A nil logger uses slog.Default().
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{
		path:    path,
		entries: Glossary{},
		logger:  logger,
	}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load replaces the in-memory glossary with the file contents. A missing
// file, or one holding invalid JSON, loads as an empty glossary.
func (s *FileStore) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.replace(Glossary{}, "")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read glossary: %w", err)
	}

	var entries Glossary
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("glossary file is not valid JSON, starting empty",
			"path", s.path, "error", err)
		s.replace(Glossary{}, "")
		return nil
	}
	if entries == nil {
		entries = Glossary{}
	}
	s.replace(entries, Fingerprint(entries))
	s.logger.Debug("glossary loaded", "path", s.path, "entries", len(entries))
	return nil
}

func (s *FileStore) replace(g Glossary, fp string) {
	s.mu.Lock()
	s.entries = g
	s.saved = fp
	s.mu.Unlock()
}

// Save writes the glossary as indented JSON. Nothing is written when the
// content matches what was last loaded or saved.
func (s *FileStore) Save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	entries := s.entries.Clone()
	saved := s.saved
	s.mu.RUnlock()

	fp := Fingerprint(entries)
	if fp == saved {
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode glossary: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create glossary dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write glossary: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace glossary: %w", err)
	}

	s.mu.Lock()
	s.saved = fp
	s.mu.Unlock()
	s.logger.Debug("glossary saved", "path", s.path, "entries", len(entries))
	return nil
}

// Entries returns a snapshot of the glossary.
func (s *FileStore) Entries() Glossary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Clone()
}

// Len returns the number of entries.
func (s *FileStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Lookup returns the first entry whose key equals source.
func (s *FileStore) Lookup(source string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.entries.Index(source); i >= 0 {
		return s.entries[i], nil
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, source)
}

// Add merges entries by source term (last write wins) and saves the file.
// Entries without a source term are rejected before anything is merged.
func (s *FileStore) Add(entries ...Entry) (int, error) {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return 0, err
		}
	}
	if len(entries) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	s.entries = Merge(s.entries, entries...)
	s.mu.Unlock()

	if err := s.Save(); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// AddPairs parses a "vn:en[:src],..." list and merges it.
func (s *FileStore) AddPairs(pairs string) (int, error) {
	return s.Add(ParsePairs(pairs)...)
}

// ImportXLSX merges the entries of a workbook and saves the file.
func (s *FileStore) ImportXLSX(path string) (int, error) {
	entries, err := ImportXLSX(path)
	if err != nil {
		return 0, err
	}
	return s.Add(entries...)
}

// Suggest returns up to n source terms closest to term by Levenshtein
// similarity, best first. Ties keep stored order.
func (s *FileStore) Suggest(term string, n int) []string {
	term = strings.TrimSpace(term)
	if term == "" || n <= 0 {
		return nil
	}

	s.mu.RLock()
	keys := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		keys = append(keys, e.Key())
	}
	s.mu.RUnlock()

	type scored struct {
		key string
		sim float32
	}
	candidates := make([]scored, 0, len(keys))
	for _, key := range keys {
		sim, err := edlib.StringsSimilarity(strings.ToLower(term), strings.ToLower(key), edlib.Levenshtein)
		if err != nil || sim <= 0 {
			continue
		}
		candidates = append(candidates, scored{key: key, sim: sim})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].sim > candidates[j].sim
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.key
	}
	return out
}
