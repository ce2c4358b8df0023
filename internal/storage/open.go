// Package storage selects and opens a document backend.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtroode/taskboard-server/internal/model"
	"github.com/dtroode/taskboard-server/internal/storage/memory"
	"github.com/dtroode/taskboard-server/internal/storage/mongo"
	"github.com/dtroode/taskboard-server/internal/storage/postgres"
	"github.com/dtroode/taskboard-server/internal/storage/redis"
)

// Config names the backend and how to reach it.
type Config struct {
	Driver string
	URL    string
	// Database is only used by the mongo driver.
	Database string
}

// Open connects to the configured backend.
func Open(ctx context.Context, cfg Config) (model.Backend, error) {
	switch strings.ToLower(cfg.Driver) {
	case "mongo", "mongodb":
		b, err := mongo.Connect(ctx, cfg.URL, cfg.Database)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "postgres", "pg", "postgresql":
		b, err := postgres.NewConnection(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "redis":
		b, err := redis.Connect(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "memory":
		return memory.NewBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnsupportedDriver, cfg.Driver)
	}
}
