package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	cfg "github.com/templui/mindspace/internal/config"
)

// ErrNotFound is returned by Load and Delete when no record exists for a key.
var ErrNotFound = errors.New("record not found")

// Store is a durable key-value store holding whole snapshots.
type Store interface {
	// Load returns the value stored under key.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the value stored under key.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes the record under key.
	Delete(ctx context.Context, key string) error
}

const (
	BackendSQL    = "sql"
	BackendS3     = "s3"
	BackendMemory = "memory"
)

// New builds the store selected by STORE_BACKEND. The database is only
// required by the sql backend.
func New(ctx context.Context, c *cfg.Config, db *sqlx.DB) (Store, error) {
	switch c.StoreBackend {
	case BackendSQL, "":
		if db == nil {
			return nil, errors.New("sql store requires a database")
		}
		slog.Info("initializing SQL store", "driver", c.DBDriver)
		return NewSQLStore(db), nil
	case BackendS3:
		slog.Info("initializing S3 store",
			"bucket", c.S3Bucket,
			"region", c.S3Region,
			"endpoint", c.S3Endpoint,
		)
		return NewS3Store(ctx, S3Config{
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Endpoint:  c.S3Endpoint,
			Prefix:    c.S3Prefix,
		})
	case BackendMemory:
		slog.Warn("using in-memory store, goals are lost on exit")
		return NewMemoryStore(), nil
	}

	return nil, fmt.Errorf("unknown store backend %q", c.StoreBackend)
}
