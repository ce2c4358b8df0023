package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/taskboard-server/internal/logger"
	"github.com/dtroode/taskboard-server/internal/model"
)

// UserStore defines the user operations exposed over HTTP.
type UserStore interface {
	Create(ctx context.Context, user model.User) (model.InsertResult, error)
	Update(ctx context.Context, user model.User) (model.UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (model.DeleteResult, error)
	DeleteByEmail(ctx context.Context, email string) (model.DeleteResult, error)
	GetAll(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id string) (model.User, bool, error)
}

// User handles /api/user endpoints.
type User struct {
	store  UserStore
	logger *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(store UserStore, logger *logger.Logger) *User {
	return &User{store: store, logger: logger}
}

// Register mounts the user routes on r.
func (h *User) Register(r chi.Router) {
	r.Route("/api/user", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Post("/update", h.Update)
		r.Delete("/delete-user", h.DeleteByEmail)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.DeleteByID)
	})
}

func (h *User) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.GetAll(r.Context())
	if err != nil {
		h.logger.Error("User handler: list failed", "error", err)
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *User) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, found, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("User handler: get failed", "id", id, "error", err)
		handleError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *User) Create(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := readJSON(w, r, &user); err != nil {
		handleError(w, err)
		return
	}

	res, err := h.store.Create(r.Context(), user)
	if err != nil {
		h.logger.Error("User handler: create failed", "id", user.ID, "error", err)
		handleError(w, err)
		return
	}

	h.logger.Debug("User handler: user created", "id", res.InsertedID)
	writeJSON(w, http.StatusOK, res.InsertedID)
}

// Update replaces the user identified by the body id, or by the path id when
// the route carries one.
func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := readJSON(w, r, &user); err != nil {
		handleError(w, err)
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		user.ID = id
	}

	res, err := h.store.Update(r.Context(), user)
	if err != nil {
		h.logger.Error("User handler: update failed", "id", user.ID, "error", err)
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res.ModifiedCount)
}

func (h *User) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.store.DeleteByID(r.Context(), id)
	if err != nil {
		h.logger.Error("User handler: delete failed", "id", id, "error", err)
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res.DeletedCount)
}

type deleteByEmailRequest struct {
	Email string `json:"email"`
}

func (h *User) DeleteByEmail(w http.ResponseWriter, r *http.Request) {
	var req deleteByEmailRequest
	if err := readJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	res, err := h.store.DeleteByEmail(r.Context(), req.Email)
	if err != nil {
		h.logger.Error("User handler: delete by email failed", "error", err)
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res.DeletedCount)
}
