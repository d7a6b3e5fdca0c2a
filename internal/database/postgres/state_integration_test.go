package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinerTapper_Go/internal/domain"
	"github.com/osse101/MinerTapper_Go/internal/testing/pgtest"
)

func setupStateRepository(t *testing.T) *StateRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	connStr, terminate, err := pgtest.StartContainer(ctx)
	if err != nil {
		t.Skipf("Skipping integration test: %v", err)
	}
	t.Cleanup(terminate)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool))
	// Migrations are idempotent
	require.NoError(t, Migrate(ctx, pool))

	return NewStateRepository(pool)
}

func TestStateRepository_Integration(t *testing.T) {
	repo := setupStateRepository(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, repo.Ping(ctx))

	_, err := repo.Get(ctx, domain.StateKey)
	assert.ErrorIs(t, err, domain.ErrStateNotFound)

	require.NoError(t, repo.Put(ctx, domain.StateKey, []byte(`{"userBalance": 1.5}`)))
	require.NoError(t, repo.Put(ctx, domain.StateKey, []byte(`{"userBalance": 2.5}`)))

	got, err := repo.Get(ctx, domain.StateKey)
	require.NoError(t, err)
	// JSONB normalises whitespace, compare semantically
	assert.JSONEq(t, `{"userBalance": 2.5}`, string(got))

	require.NoError(t, repo.Delete(ctx, domain.StateKey))
	_, err = repo.Get(ctx, domain.StateKey)
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
}
