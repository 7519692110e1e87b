package service

import (
	"context"
	"errors"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/store"
	"github.com/systemifyautomation/html-to-pdf/pkg/cryptox"
	"github.com/systemifyautomation/html-to-pdf/pkg/slogx"
)

var (
	ErrNameRequired    = errors.New("key name is required")
	ErrKeyNotFound     = errors.New("api key not found")
	ErrAmbiguousPrefix = errors.New("key prefix matches more than one key")
)

// LimiterReset drops accumulated rate-limit state for a key.
type LimiterReset interface {
	Forget(key string)
}

// KeyService implements the admin CRUD operations over the key store.
// Every mutation runs inside store.Mutate, so concurrent admin calls
// serialize on the store's critical section and persist atomically.
type KeyService struct {
	Store store.Store

	// Limiter, when set, is reset for keys that are deleted or
	// deactivated so a re-issued secret starts with a clean window.
	Limiter LimiterReset
}

// MaskedKey is a listing entry. The secret is reduced to its masked form;
// the prefix shown is what Update and Delete accept as an identifier.
type MaskedKey struct {
	KeyPreview string
	Name       string
	Created    string
	Active     bool
}

// List returns every stored key, masked, plus the shared rate limits.
func (s *KeyService) List(ctx context.Context) ([]MaskedKey, domain.RateLimitConfig) {
	snap := s.Store.Snapshot()

	out := make([]MaskedKey, 0, len(snap.APIKeys))
	for _, k := range snap.APIKeys {
		out = append(out, MaskedKey{
			KeyPreview: k.Masked(),
			Name:       k.Name,
			Created:    k.Created,
			Active:     k.Active,
		})
	}
	return out, snap.RateLimit
}

// Create generates a new key and persists it. The returned APIKey carries
// the full secret; this is the only time it is ever disclosed.
func (s *KeyService) Create(ctx context.Context, name string, active bool) (domain.APIKey, error) {
	l := slogx.FromContext(ctx)

	if name == "" {
		return domain.APIKey{}, ErrNameRequired
	}

	secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		l.Error("failed to generate key secret", "error", err)
		return domain.APIKey{}, err
	}

	key := domain.APIKey{
		Key:     secret,
		Name:    name,
		Created: domain.Today(),
		Active:  active,
	}

	err = s.Store.Mutate(func(f *domain.KeyFile) error {
		f.APIKeys = append(f.APIKeys, key)
		return nil
	})
	if err != nil {
		l.Error("failed to persist new key", "name", name, "error", err)
		return domain.APIKey{}, err
	}

	l.Info("api key created", "name", name, "key_preview", key.Masked(), "active", active)
	return key, nil
}

// Update applies a partial update to the key addressed by prefix. Nil
// fields are left unchanged. Repeating the same update is a no-op.
func (s *KeyService) Update(ctx context.Context, prefix string, name *string, active *bool) (MaskedKey, error) {
	l := slogx.FromContext(ctx)

	var updated domain.APIKey
	err := s.Store.Mutate(func(f *domain.KeyFile) error {
		i, err := store.ResolvePrefix(f, prefix)
		if err != nil {
			return err
		}
		if name != nil {
			f.APIKeys[i].Name = *name
		}
		if active != nil {
			f.APIKeys[i].Active = *active
		}
		updated = f.APIKeys[i]
		return nil
	})
	if err != nil {
		return MaskedKey{}, mapStoreErr(err)
	}

	if s.Limiter != nil && active != nil && !*active {
		s.Limiter.Forget(updated.Key)
	}

	l.Info("api key updated", "key_preview", updated.Masked(), "name", updated.Name, "active", updated.Active)
	return MaskedKey{
		KeyPreview: updated.Masked(),
		Name:       updated.Name,
		Created:    updated.Created,
		Active:     updated.Active,
	}, nil
}

// Delete removes the key addressed by prefix. Deleting the same key twice
// returns ErrKeyNotFound on the second call.
func (s *KeyService) Delete(ctx context.Context, prefix string) (MaskedKey, error) {
	l := slogx.FromContext(ctx)

	var removed domain.APIKey
	err := s.Store.Mutate(func(f *domain.KeyFile) error {
		i, err := store.ResolvePrefix(f, prefix)
		if err != nil {
			return err
		}
		removed = f.APIKeys[i]
		f.APIKeys = append(f.APIKeys[:i], f.APIKeys[i+1:]...)
		return nil
	})
	if err != nil {
		return MaskedKey{}, mapStoreErr(err)
	}

	if s.Limiter != nil {
		s.Limiter.Forget(removed.Key)
	}

	l.Info("api key deleted", "key_preview", removed.Masked(), "name", removed.Name)
	return MaskedKey{
		KeyPreview: removed.Masked(),
		Name:       removed.Name,
		Created:    removed.Created,
		Active:     removed.Active,
	}, nil
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrKeyNotFound
	case errors.Is(err, store.ErrAmbiguousPrefix):
		return ErrAmbiguousPrefix
	default:
		return err
	}
}
