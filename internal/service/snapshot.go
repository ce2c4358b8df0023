package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dtroode/taskboard-server/internal/logger"
	"github.com/dtroode/taskboard-server/internal/model"
)

const (
	snapshotPrefix      = "snapshots"
	snapshotContentType = "application/json"
	snapshotTimeLayout  = "20060102T150405Z"
)

// Snapshot dumps both collections into object storage.
type Snapshot struct {
	users   model.UserStore
	tasks   model.TaskStore
	storage model.ObjectStorage
	logger  *logger.Logger

	userCollection string
	taskCollection string

	now   func() time.Time
	newID func() string
}

func NewSnapshot(
	users model.UserStore,
	tasks model.TaskStore,
	storage model.ObjectStorage,
	userCollection, taskCollection string,
	logger *logger.Logger,
) *Snapshot {
	return &Snapshot{
		users:          users,
		tasks:          tasks,
		storage:        storage,
		logger:         logger,
		userCollection: userCollection,
		taskCollection: taskCollection,
		now:            time.Now,
		newID:          func() string { return uuid.NewString() },
	}
}

// Export reads users and tasks concurrently and uploads one JSON array per
// collection followed by the manifest. Objects uploaded before a failure are
// removed again.
func (s *Snapshot) Export(ctx context.Context) (model.SnapshotManifest, error) {
	var (
		users []model.User
		tasks []model.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to read users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tasks, err = s.tasks.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to read tasks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.SnapshotManifest{}, err
	}

	createdAt := s.now().UTC()
	manifest := model.SnapshotManifest{
		ID:        createdAt.Format(snapshotTimeLayout) + "-" + s.newID(),
		CreatedAt: createdAt,
	}

	dumps := []struct {
		collection string
		records    int
		value      any
	}{
		{collection: s.userCollection, records: len(users), value: users},
		{collection: s.taskCollection, records: len(tasks), value: tasks},
	}

	var uploaded []string
	for _, d := range dumps {
		key := s.key(manifest.ID, d.collection+".json")
		size, err := s.upload(ctx, key, d.value)
		if err != nil {
			s.cleanup(ctx, uploaded)
			return model.SnapshotManifest{}, fmt.Errorf("failed to upload %s: %w", d.collection, err)
		}
		uploaded = append(uploaded, key)
		manifest.Objects = append(manifest.Objects, model.SnapshotObject{
			Key:        key,
			Collection: d.collection,
			Records:    d.records,
			Bytes:      size,
		})
	}

	if _, err := s.upload(ctx, s.key(manifest.ID, "manifest.json"), manifest); err != nil {
		s.cleanup(ctx, uploaded)
		return model.SnapshotManifest{}, fmt.Errorf("failed to upload manifest: %w", err)
	}

	s.logger.Info("Snapshot service: export finished",
		"snapshot_id", manifest.ID,
		"users", len(users),
		"tasks", len(tasks))

	return manifest, nil
}

func (s *Snapshot) key(id, name string) string {
	return path.Join(snapshotPrefix, id, name)
}

func (s *Snapshot) upload(ctx context.Context, key string, v any) (int64, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal: %w", err)
	}
	size := int64(len(body))
	if err := s.storage.Upload(ctx, key, bytes.NewReader(body), size, snapshotContentType); err != nil {
		return 0, err
	}
	return size, nil
}

func (s *Snapshot) cleanup(ctx context.Context, keys []string) {
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Error("Failed to delete snapshot object from storage", "key", key, "error", err)
		}
	}
}
