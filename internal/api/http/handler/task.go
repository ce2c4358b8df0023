package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/taskboard-server/internal/logger"
	"github.com/dtroode/taskboard-server/internal/model"
)

// TaskStore defines the task operations exposed over HTTP.
type TaskStore interface {
	Create(ctx context.Context, task model.Task) (model.InsertResult, error)
	Update(ctx context.Context, task model.Task) (model.UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (model.DeleteResult, error)
	GetAll(ctx context.Context) ([]model.Task, error)
	GetByID(ctx context.Context, id string) (model.Task, bool, error)
}

// Task handles /api/task endpoints.
type Task struct {
	store  TaskStore
	logger *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(store TaskStore, logger *logger.Logger) *Task {
	return &Task{store: store, logger: logger}
}

// Register mounts the task routes on r.
func (h *Task) Register(r chi.Router) {
	r.Route("/api/task", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Post("/{id}", h.Update)
		r.Delete("/{id}", h.DeleteByID)
	})
}

func (h *Task) GetAll(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.GetAll(r.Context())
	if err != nil {
		h.logger.Error("Task handler: list failed", "error", err)
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *Task) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	task, found, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("Task handler: get failed", "id", id, "error", err)
		handleError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *Task) Create(w http.ResponseWriter, r *http.Request) {
	var task model.Task
	if err := readJSON(w, r, &task); err != nil {
		handleError(w, err)
		return
	}

	res, err := h.store.Create(r.Context(), task)
	if err != nil {
		h.logger.Error("Task handler: create failed", "id", task.ID, "error", err)
		handleError(w, err)
		return
	}

	h.logger.Debug("Task handler: task created", "id", res.InsertedID, "user_id", task.UserID)
	writeJSON(w, http.StatusOK, res.InsertedID)
}

// Update replaces the task named in the path. The body id is ignored.
func (h *Task) Update(w http.ResponseWriter, r *http.Request) {
	var task model.Task
	if err := readJSON(w, r, &task); err != nil {
		handleError(w, err)
		return
	}
	task.ID = chi.URLParam(r, "id")

	res, err := h.store.Update(r.Context(), task)
	if err != nil {
		h.logger.Error("Task handler: update failed", "id", task.ID, "error", err)
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res.ModifiedCount)
}

func (h *Task) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.store.DeleteByID(r.Context(), id)
	if err != nil {
		h.logger.Error("Task handler: delete failed", "id", id, "error", err)
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res.DeletedCount)
}
