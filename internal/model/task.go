package model

import "context"

// TaskStore defines persistence operations for tasks.
type TaskStore interface {
	Create(ctx context.Context, task Task) (InsertResult, error)
	Update(ctx context.Context, task Task) (UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (DeleteResult, error)
	GetAll(ctx context.Context) ([]Task, error)
	GetByID(ctx context.Context, id string) (Task, bool, error)
}

// Task is a unit of work owned by a user. UserID is not checked against
// the user collection.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"user_id"`
	Todo        string `json:"todo"`
}
