package service

import "github.com/dtroode/taskboard-server/internal/model"

// Manager hands the user and task stores to request handlers as one value.
// It holds no state of its own and is safe to share between goroutines as
// long as the stores are.
type Manager struct {
	Users model.UserStore
	Tasks model.TaskStore
}

func NewManager(users model.UserStore, tasks model.TaskStore) *Manager {
	return &Manager{Users: users, Tasks: tasks}
}
