package store_test

import (
	"testing"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/store"

	"github.com/stretchr/testify/require"
)

func TestResolvePrefix(t *testing.T) {
	f := &domain.KeyFile{
		SuperUser: domain.SuperUser{Key: "superuser-secret"},
		APIKeys: []domain.APIKey{
			{Key: "aaaa1111-first", Name: "first", Active: true},
			{Key: "aaaa2222-second", Name: "second", Active: true},
			{Key: "bbbb3333-third", Name: "third", Active: false},
		},
	}

	t.Run("unique prefix resolves", func(t *testing.T) {
		idx, err := store.ResolvePrefix(f, "bbbb")
		require.NoError(t, err)
		require.Equal(t, 2, idx)
	})

	t.Run("inactive keys are still addressable", func(t *testing.T) {
		idx, err := store.ResolvePrefix(f, "bbbb3333")
		require.NoError(t, err)
		require.Equal(t, 2, idx)
	})

	t.Run("ambiguous prefix errors", func(t *testing.T) {
		_, err := store.ResolvePrefix(f, "aaaa")
		require.ErrorIs(t, err, store.ErrAmbiguousPrefix)
	})

	t.Run("longer prefix disambiguates", func(t *testing.T) {
		idx, err := store.ResolvePrefix(f, "aaaa2")
		require.NoError(t, err)
		require.Equal(t, 1, idx)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := store.ResolvePrefix(f, "zzzz")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("empty prefix never matches", func(t *testing.T) {
		_, err := store.ResolvePrefix(f, "")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("super-user key is not addressable", func(t *testing.T) {
		_, err := store.ResolvePrefix(f, "superuser")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
