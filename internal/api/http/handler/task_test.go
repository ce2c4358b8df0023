package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskboard-server/internal/model"
	"github.com/dtroode/taskboard-server/internal/testutil"
)

func TestTask_Routes(t *testing.T) {
	task := model.Task{ID: "t1", Title: "write", Description: "docs", UserID: "u1", Todo: "yes"}

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setup      func(*MockTaskStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "list",
			method: http.MethodGet,
			target: "/api/task",
			setup: func(m *MockTaskStore) {
				m.On("GetAll", mock.Anything).Return([]model.Task{task}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":"t1","title":"write","description":"docs","user_id":"u1","todo":"yes"}]`,
		},
		{
			name:   "list failure",
			method: http.MethodGet,
			target: "/api/task",
			setup: func(m *MockTaskStore) {
				m.On("GetAll", mock.Anything).Return(nil, &model.StoreError{Op: "find", Collection: "tasks", Err: errors.New("down")})
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
		{
			name:   "get",
			method: http.MethodGet,
			target: "/api/task/t1",
			setup: func(m *MockTaskStore) {
				m.On("GetByID", mock.Anything, "t1").Return(task, true, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"t1","title":"write","description":"docs","user_id":"u1","todo":"yes"}`,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			target: "/api/task/t9",
			setup: func(m *MockTaskStore) {
				m.On("GetByID", mock.Anything, "t9").Return(model.Task{}, false, nil)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"task not found"}`,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/api/task",
			body:   `{"id":"t1","title":"write","description":"docs","user_id":"u1","todo":"yes"}`,
			setup: func(m *MockTaskStore) {
				m.On("Create", mock.Anything, task).Return(model.InsertResult{InsertedID: "t1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"t1"`,
		},
		{
			name:   "update uses path id",
			method: http.MethodPost,
			target: "/api/task/t1",
			body:   `{"id":"other","title":"write","description":"docs","user_id":"u1","todo":"yes"}`,
			setup: func(m *MockTaskStore) {
				m.On("Update", mock.Anything, task).Return(model.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `1`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/task/t1",
			setup: func(m *MockTaskStore) {
				m.On("DeleteByID", mock.Anything, "t1").Return(model.DeleteResult{DeletedCount: 1}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockTaskStore)
			tt.setup(store)

			rec := serve(t, NewTask(store, testutil.MakeNoopLogger()).Register, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			store.AssertExpectations(t)
		})
	}
}
