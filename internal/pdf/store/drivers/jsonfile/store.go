// Package jsonfile persists the key store as a single JSON document on
// disk. Reads are served from an in-memory snapshot; every mutation is
// written to a temp file and renamed into place so a crash mid-write never
// leaves a truncated store behind.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/store"
)

// fileMode keeps the key file readable by the service user only.
const fileMode = 0o600

type Store struct {
	path string

	// mu serializes the load-mutate-persist critical section. Readers
	// never take it, they work off the last committed snapshot.
	mu    sync.Mutex
	state atomic.Pointer[domain.KeyFile]
}

var _ store.Store = (*Store)(nil)

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read key file %s: %w", s.path, err)
	}

	f, err := decodeStrict(raw)
	if err != nil {
		return fmt.Errorf("parse key file %s: %w", s.path, err)
	}

	if err := validate(f); err != nil {
		return fmt.Errorf("validate key file %s: %w", s.path, err)
	}

	if f.RateLimit.RequestsPerMinute > f.RateLimit.RequestsPerHour {
		slog.Warn("per-minute ceiling exceeds per-hour ceiling, hourly limit binds first",
			"requests_per_minute", f.RateLimit.RequestsPerMinute,
			"requests_per_hour", f.RateLimit.RequestsPerHour,
		)
	}

	s.state.Store(f)
	return nil
}

func (s *Store) FindBySecret(secret string) (store.Credential, bool) {
	f := s.state.Load()
	if f == nil || secret == "" {
		return store.Credential{}, false
	}

	if secret == f.SuperUser.Key {
		return store.Credential{SuperUser: true, Name: f.SuperUser.Name, Key: f.SuperUser.Key}, true
	}

	for i := range f.APIKeys {
		if f.APIKeys[i].Key == secret && f.APIKeys[i].Active {
			return store.Credential{Name: f.APIKeys[i].Name, Key: f.APIKeys[i].Key}, true
		}
	}
	return store.Credential{}, false
}

func (s *Store) Snapshot() domain.KeyFile {
	f := s.state.Load()
	if f == nil {
		return domain.KeyFile{}
	}
	return *f.Clone()
}

func (s *Store) RateLimit() domain.RateLimitConfig {
	f := s.state.Load()
	if f == nil {
		return domain.RateLimitConfig{}
	}
	return f.RateLimit
}

func (s *Store) Mutate(fn func(*domain.KeyFile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.state.Load()
	if cur == nil {
		return fmt.Errorf("key store not loaded")
	}

	next := cur.Clone()
	if err := fn(next); err != nil {
		return err
	}

	if err := validate(next); err != nil {
		return err
	}

	if err := s.save(next); err != nil {
		return fmt.Errorf("persist key file: %w", err)
	}

	s.state.Store(next)
	return nil
}

// save writes the document to a temp file in the store's directory and
// renames it over the original.
func (s *Store) save(f *domain.KeyFile) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func decodeStrict(raw []byte) (*domain.KeyFile, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var f domain.KeyFile
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func validate(f *domain.KeyFile) error {
	if f.SuperUser.Key == "" {
		return fmt.Errorf("super_user.key is required")
	}
	if f.RateLimit.RequestsPerMinute <= 0 || f.RateLimit.RequestsPerHour <= 0 {
		return fmt.Errorf("rate_limit ceilings must be positive")
	}

	seen := map[string]struct{}{f.SuperUser.Key: {}}
	for i := range f.APIKeys {
		k := f.APIKeys[i].Key
		if k == "" {
			return fmt.Errorf("api_keys[%d].key is empty", i)
		}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("duplicate key secret %s", domain.MaskSecret(k))
		}
		seen[k] = struct{}{}
	}
	return nil
}

// Init creates a brand-new key file at path with the given super-user
// credential and rate limit configuration. It refuses to overwrite an
// existing file.
func Init(path string, super domain.SuperUser, rl domain.RateLimitConfig) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("key file %s already exists", path)
	} else if !os.IsNotExist(err) {
		return err
	}

	f := &domain.KeyFile{
		SuperUser: super,
		APIKeys:   []domain.APIKey{},
		RateLimit: rl,
	}
	if err := validate(f); err != nil {
		return err
	}

	s := New(path)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(f); err != nil {
		return fmt.Errorf("write key file %s: %w", path, err)
	}
	return nil
}
