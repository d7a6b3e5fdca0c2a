package repository

import (
	"context"
)

// StateStore defines the interface for durable key-value persistence of
// serialized economy state. Get returns domain.ErrStateNotFound when nothing
// was stored under key.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
