package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/taskboard-server/internal/logger"
	"github.com/dtroode/taskboard-server/internal/model"
)

// SnapshotService exports the collections to object storage.
type SnapshotService interface {
	Export(ctx context.Context) (model.SnapshotManifest, error)
}

// Snapshot handles POST /api/snapshot.
type Snapshot struct {
	service SnapshotService
	logger  *logger.Logger
}

func NewSnapshot(service SnapshotService, logger *logger.Logger) *Snapshot {
	return &Snapshot{service: service, logger: logger}
}

func (h *Snapshot) Register(r chi.Router) {
	r.Post("/api/snapshot", h.Export)
}

func (h *Snapshot) Export(w http.ResponseWriter, r *http.Request) {
	manifest, err := h.service.Export(r.Context())
	if err != nil {
		h.logger.Error("Snapshot handler: export failed", "error", err)
		handleError(w, err)
		return
	}

	h.logger.Info("Snapshot handler: export completed", "snapshot_id", manifest.ID)
	writeJSON(w, http.StatusCreated, manifest)
}
