package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists named JSON documents as files under a single root
// directory. Document "events" lives at <root>/events.json.
type Store struct {
	mu     sync.Mutex
	root   string
	logger *Logger
}

func NewStore(root string, logger *Logger) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Store{root: root, logger: logger}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.root, name+".json")
}

// Load reads the named document. A missing file returns def without
// touching disk; content that fails to parse (or parses to null) also
// returns def, with a diagnostic instead of an error.
func Load[T any](s *Store, name string, def T) T {
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		return def
	}
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		s.logger.Warning(ComponentStore, fmt.Sprintf("Document %q is empty, using default", name))
		return def
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		s.logger.Warning(ComponentStore, fmt.Sprintf("Document %q failed to parse, using default: %v", name, err))
		return def
	}
	return v
}

// Save overwrites the named document with pretty-printed JSON.
func Save[T any](s *Store, name string, v T) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document %q: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), b, 0644); err != nil {
		return fmt.Errorf("write document %q: %w", name, err)
	}
	return nil
}

// Ensure seeds the named document with def if its file does not exist yet.
func Ensure[T any](s *Store, name string, def T) error {
	if _, err := os.Stat(s.path(name)); err == nil {
		return nil
	}
	return Save(s, name, def)
}
