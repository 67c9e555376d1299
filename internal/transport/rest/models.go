package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/arlearn/admin-backend/internal/domain"
)

// modelLister is the read-only slice of the catalog service the public
// endpoint needs.
type modelLister interface {
	ListModels(ctx context.Context) ([]*domain.ARModel, error)
}

// ModelsHandler serves the public model list. The AR viewer app consumes
// this endpoint without logging in, and its response envelope predates the
// admin API, so the shape is kept as-is.
type ModelsHandler struct {
	svc modelLister
	log *slog.Logger
}

// NewModelsHandler creates a ModelsHandler.
func NewModelsHandler(svc modelLister, logger *slog.Logger) *ModelsHandler {
	return &ModelsHandler{svc: svc, log: logger.With("handler", "models")}
}

type modelsEnvelope struct {
	Success bool            `json:"success"`
	Data    []modelResponse `json:"data"`
}

// List handles GET /api/models.
func (h *ModelsHandler) List(w http.ResponseWriter, r *http.Request) {
	models, err := h.svc.ListModels(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "list models", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to fetch models")
		return
	}

	data := make([]modelResponse, 0, len(models))
	for _, m := range models {
		data = append(data, toModelResponse(m))
	}

	writeJSON(w, http.StatusOK, modelsEnvelope{Success: true, Data: data})
}
