// Package authtest holds a conformance suite shared by every
// auth.RecordStore implementation.
package authtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazechase/internal/auth"
)

// RecordStore runs the store contract against s. The store must start empty.
func RecordStore(t *testing.T, s auth.RecordStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("lookup missing", func(t *testing.T) {
		_, err := s.Lookup(ctx, "nobody")
		assert.ErrorIs(t, err, auth.ErrNotFound)
	})

	t.Run("insert then lookup", func(t *testing.T) {
		require.NoError(t, s.Insert(ctx, "alice", auth.Hash("pw1")))

		digest, err := s.Lookup(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, auth.Hash("pw1"), digest)
	})

	t.Run("insert never overwrites", func(t *testing.T) {
		err := s.Insert(ctx, "alice", auth.Hash("other"))
		assert.ErrorIs(t, err, auth.ErrAlreadyExists)

		digest, err := s.Lookup(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, auth.Hash("pw1"), digest)
	})

	t.Run("usernames are case sensitive", func(t *testing.T) {
		require.NoError(t, s.Insert(ctx, "Alice", auth.Hash("pw2")))

		digest, err := s.Lookup(ctx, "Alice")
		require.NoError(t, err)
		assert.Equal(t, auth.Hash("pw2"), digest)
	})

	t.Run("service round trip", func(t *testing.T) {
		svc := auth.NewService(s, nil)

		require.NoError(t, svc.Register(ctx, "bob", "hunter2"))
		assert.NoError(t, svc.Verify(ctx, "bob", "hunter2"))
		assert.ErrorIs(t, svc.Verify(ctx, "bob", "hunter3"), auth.ErrMismatch)
		assert.ErrorIs(t, svc.Register(ctx, "bob", "x"), auth.ErrAlreadyExists)
		assert.ErrorIs(t, svc.Verify(ctx, "carol", "hunter2"), auth.ErrNotFound)
	})
}
