package store

import (
	"errors"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"
)

var (
	ErrNotFound        = errors.New("store: not found")
	ErrAmbiguousPrefix = errors.New("store: ambiguous prefix")
)

// Credential is the result of a successful secret lookup. Exactly one of
// the two identities applies: the super-user or an ordinary API key.
type Credential struct {
	SuperUser bool
	Name      string
	Key       string
}

// Store is the single source of truth for credentials and the rate limit
// configuration. Reads run lock-free against the last committed snapshot;
// mutations run under a process-wide critical section and are persisted
// atomically before they become visible.
type Store interface {
	// Load reads the backing file. Called once at startup; any error is
	// fatal. An absent or malformed file is an error, never an empty store.
	Load() error

	// FindBySecret resolves a raw secret, exact match only. Inactive keys
	// are not returned.
	FindBySecret(secret string) (Credential, bool)

	// Snapshot returns a deep copy of the current state for listings.
	Snapshot() domain.KeyFile

	// RateLimit returns the configured per-key ceilings.
	RateLimit() domain.RateLimitConfig

	// Mutate applies fn to a copy of the current state, persists the copy,
	// and commits it. If fn or the save fails nothing changes, in memory
	// or on disk.
	Mutate(fn func(*domain.KeyFile) error) error
}

// ResolvePrefix finds the index of the API key whose secret starts with
// prefix. The super-user key is never addressable this way. Zero matches
// yield ErrNotFound, more than one ErrAmbiguousPrefix.
func ResolvePrefix(f *domain.KeyFile, prefix string) (int, error) {
	if prefix == "" {
		return 0, ErrNotFound
	}

	idx := -1
	for i := range f.APIKeys {
		if len(f.APIKeys[i].Key) >= len(prefix) && f.APIKeys[i].Key[:len(prefix)] == prefix {
			if idx >= 0 {
				return 0, ErrAmbiguousPrefix
			}
			idx = i
		}
	}
	if idx < 0 {
		return 0, ErrNotFound
	}
	return idx, nil
}
