package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskboard-server/internal/model"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user model.User) (model.InsertResult, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.InsertResult), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user model.User) (model.UpdateResult, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *MockUserStore) DeleteByID(ctx context.Context, id string) (model.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.DeleteResult), args.Error(1)
}

func (m *MockUserStore) DeleteByEmail(ctx context.Context, email string) (model.DeleteResult, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.DeleteResult), args.Error(1)
}

func (m *MockUserStore) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (model.User, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Bool(1), args.Error(2)
}

type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Create(ctx context.Context, task model.Task) (model.InsertResult, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(model.InsertResult), args.Error(1)
}

func (m *MockTaskStore) Update(ctx context.Context, task model.Task) (model.UpdateResult, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *MockTaskStore) DeleteByID(ctx context.Context, id string) (model.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.DeleteResult), args.Error(1)
}

func (m *MockTaskStore) GetAll(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]model.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskStore) GetByID(ctx context.Context, id string) (model.Task, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Task), args.Bool(1), args.Error(2)
}

type MockSnapshotService struct {
	mock.Mock
}

func (m *MockSnapshotService) Export(ctx context.Context) (model.SnapshotManifest, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.SnapshotManifest), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
