package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/osse101/MinerTapper_Go/internal/config"
	"github.com/osse101/MinerTapper_Go/internal/database"
	"github.com/osse101/MinerTapper_Go/internal/database/file"
	"github.com/osse101/MinerTapper_Go/internal/database/memory"
	"github.com/osse101/MinerTapper_Go/internal/database/mongodb"
	"github.com/osse101/MinerTapper_Go/internal/database/postgres"
	"github.com/osse101/MinerTapper_Go/internal/database/s3store"
	"github.com/osse101/MinerTapper_Go/internal/database/sqlite"
	"github.com/osse101/MinerTapper_Go/internal/repository"
)

// OpenStore creates the StateStore selected by cfg.StoreDriver.
// The postgres driver applies the embedded migrations before returning.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.StateStore, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
	return store, nil
}

func openStore(ctx context.Context, cfg *config.Config) (repository.StateStore, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		return memory.NewStore(), nil

	case config.StoreDriverFile:
		store, err := file.NewStore(cfg.StorePath, cfg.StoreCompress)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenStoreFailed, cfg.StoreDriver, err)
		}
		return store, nil

	case config.StoreDriverSQLite:
		path := cfg.StorePath
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, SQLiteFileName)
		}
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenStoreFailed, cfg.StoreDriver, err)
		}
		return store, nil

	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenStoreFailed, cfg.StoreDriver, err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf(ErrMsgMigrateFailed, err)
		}
		return postgres.NewStateRepository(pool), nil

	case config.StoreDriverMongo:
		store, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenStoreFailed, cfg.StoreDriver, err)
		}
		return store, nil

	case config.StoreDriverS3:
		store, err := s3store.New(ctx, s3store.Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenStoreFailed, cfg.StoreDriver, err)
		}
		return store, nil

	default:
		return nil, fmt.Errorf(ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}
}
