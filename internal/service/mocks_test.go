package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskboard-server/internal/model"
)

// MockUserStore mocks the UserStore interface
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

// MockTaskStore mocks the TaskStore interface
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

// MockObjectStorage mocks the ObjectStorage interface and keeps uploaded bodies.
type MockObjectStorage struct {
	mock.Mock
	bodies map[string][]byte
}

func (m *MockObjectStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	body, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	if m.bodies == nil {
		m.bodies = make(map[string][]byte)
	}
	m.bodies[key] = body
	args := m.Called(ctx, key, size, contentType)
	return args.Error(0)
}

func (m *MockObjectStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockObjectStorage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
