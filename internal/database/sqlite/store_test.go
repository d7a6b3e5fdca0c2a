package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	s, err := Open(path)
	require.NoError(t, err)

	_, err = s.Get(ctx, domain.StateKey)
	assert.ErrorIs(t, err, domain.ErrStateNotFound)

	require.NoError(t, s.Put(ctx, domain.StateKey, []byte(`{"userBalance":1}`)))
	require.NoError(t, s.Put(ctx, domain.StateKey, []byte(`{"userBalance":2}`)))

	got, err := s.Get(ctx, domain.StateKey)
	require.NoError(t, err)
	assert.Equal(t, `{"userBalance":2}`, string(got))
	require.NoError(t, s.Close())

	// Data survives reopening
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err = s.Get(ctx, domain.StateKey)
	require.NoError(t, err)
	assert.Equal(t, `{"userBalance":2}`, string(got))

	require.NoError(t, s.Delete(ctx, domain.StateKey))
	_, err = s.Get(ctx, domain.StateKey)
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
	assert.NoError(t, s.Ping(ctx))
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
