// Package kvstore is a small persistent scalar map backed by a JSON file.
// It holds onboarding state, the cached display name, UI toggles, and the
// backup snapshot blob. Last write wins; there are no transactional
// guarantees across keys.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// ErrKeyNotFound is returned when a key has never been set
var ErrKeyNotFound = errors.New("key not found")

type Store struct {
	path string

	mu     sync.Mutex
	values map[string]string
	loaded bool
}

func New(path string) *Store {
	return &Store{
		path: path,
	}
}

// load reads the settings file from disk. A missing file is an empty map.
// Callers must hold s.mu.
func (s *Store) load() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.values = make(map[string]string)
			s.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read settings: %w", err)
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to parse settings: %w", err)
	}

	s.values = values
	s.loaded = true
	return nil
}

// save writes the settings file to disk. Callers must hold s.mu.
func (s *Store) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

func (s *Store) get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return "", err
	}

	value, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *Store) set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	s.values[key] = value
	return s.save()
}

func (s *Store) GetString(key string) (string, error) {
	return s.get(key)
}

func (s *Store) SetString(key, value string) error {
	return s.set(key, value)
}

func (s *Store) GetBool(key string) (bool, error) {
	value, err := s.get(key)
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

func (s *Store) SetBool(key string, value bool) error {
	return s.set(key, strconv.FormatBool(value))
}

func (s *Store) GetInt(key string) (int, error) {
	value, err := s.get(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return n, nil
}

func (s *Store) SetInt(key string, value int) error {
	return s.set(key, strconv.Itoa(value))
}

// Delete removes a key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.save()
}

// ClearAll removes every key and persists the empty map.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]string)
	s.loaded = true
	return s.save()
}

// GetPath returns the path to the underlying settings file.
func (s *Store) GetPath() string {
	return s.path
}
