package main

import (
	"context"
	"fmt"

	"github.com/dtroode/taskboard-server/internal/config"
	"github.com/dtroode/taskboard-server/internal/logger"
	"github.com/dtroode/taskboard-server/internal/model"
	"github.com/dtroode/taskboard-server/internal/repository"
	"github.com/dtroode/taskboard-server/internal/service"
	"github.com/dtroode/taskboard-server/internal/storage"
	"github.com/dtroode/taskboard-server/internal/storage/minio"
)

// app holds the dependencies shared by the commands.
type app struct {
	cfg     *config.Config
	logger  *logger.Logger
	backend model.Backend
	users   *repository.UserRepository
	tasks   *repository.TaskRepository
}

func loadConfig(envFiles []string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.NewConfig(envFiles...)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat, logOutput), nil
}

// newApp loads configuration, opens the document backend and builds the
// repositories on top of it.
func newApp(ctx context.Context, envFiles []string) (*app, error) {
	cfg, lg, err := loadConfig(envFiles)
	if err != nil {
		return nil, err
	}

	backend, err := storage.Open(ctx, storage.Config{
		Driver:   cfg.Database.Driver,
		URL:      cfg.Database.URL,
		Database: cfg.Database.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var opts []repository.Option
	if cfg.StrictDecode {
		opts = append(opts, repository.WithStrictDecode())
	}

	lg.Info("storage opened",
		"driver", cfg.Database.Driver,
		"users", cfg.UserCollection,
		"tasks", cfg.TaskCollection,
		"strict_decode", cfg.StrictDecode)

	return &app{
		cfg:     cfg,
		logger:  lg,
		backend: backend,
		users:   repository.NewUserRepository(backend.Collection(cfg.UserCollection), opts...),
		tasks:   repository.NewTaskRepository(backend.Collection(cfg.TaskCollection), opts...),
	}, nil
}

// snapshotService returns nil when object storage is disabled.
func (a *app) snapshotService(ctx context.Context) (*service.Snapshot, error) {
	if !a.cfg.Storage.Enabled {
		return nil, nil
	}

	client, err := minio.Dial(ctx, minio.Config{
		Endpoint:  a.cfg.Storage.Endpoint,
		AccessKey: a.cfg.Storage.AccessKey,
		SecretKey: a.cfg.Storage.SecretKey,
		Bucket:    a.cfg.Storage.Bucket,
		UseSSL:    a.cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}

	return service.NewSnapshot(a.users, a.tasks, client, a.cfg.UserCollection, a.cfg.TaskCollection, a.logger), nil
}

func (a *app) close(ctx context.Context) {
	if err := a.backend.Close(ctx); err != nil {
		a.logger.Error("failed to close storage", "error", err)
	}
}
