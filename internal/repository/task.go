package repository

import (
	"github.com/dtroode/taskboard-server/internal/codec"
	"github.com/dtroode/taskboard-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	*Repository[model.Task]
}

func NewTaskRepository(collection model.Collection, opts ...Option) *TaskRepository {
	return &TaskRepository{
		Repository: New(collection, codec.Task, opts...),
	}
}
