package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinerTapper_Go/internal/domain"
)

// StateRepository implements repository.StateStore for PostgreSQL
type StateRepository struct {
	db *pgxpool.Pool
}

// NewStateRepository creates a new StateRepository
func NewStateRepository(db *pgxpool.Pool) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRow(ctx, `SELECT state_value FROM game_state WHERE state_key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStateFailed, key, err)
	}
	return value, nil
}

func (r *StateRepository) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO game_state (state_key, state_value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (state_key) DO UPDATE
		SET state_value = EXCLUDED.state_value, updated_at = EXCLUDED.updated_at`,
		key, string(value))
	if err != nil {
		return fmt.Errorf(ErrMsgPutStateFailed, key, err)
	}
	return nil
}

func (r *StateRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM game_state WHERE state_key = $1`, key); err != nil {
		return fmt.Errorf(ErrMsgDeleteStateFailed, key, err)
	}
	return nil
}

func (r *StateRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close closes the underlying pool
func (r *StateRepository) Close() error {
	r.db.Close()
	return nil
}
