package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/arlearn/admin-backend/internal/domain"
	"github.com/arlearn/admin-backend/internal/service/catalog"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	ListModels(ctx context.Context) ([]*domain.ARModel, error)
	CreateModel(ctx context.Context, input catalog.ModelInput) (*domain.ARModel, error)
	UpdateModel(ctx context.Context, id int64, input catalog.ModelInput) (*domain.ARModel, error)
	DeleteModel(ctx context.Context, id int64) error

	ListQuestions(ctx context.Context) ([]*domain.QuizQuestion, error)
	CreateQuestion(ctx context.Context, input catalog.QuizInput) (*domain.QuizQuestion, error)
	UpdateQuestion(ctx context.Context, id int64, input catalog.QuizInput) (*domain.QuizQuestion, error)
	DeleteQuestion(ctx context.Context, id int64) error
}

// CatalogHandler serves the admin CRUD endpoints for both catalogs.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type modelRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type modelResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type quizRequest struct {
	Question string `json:"question"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
	Answer   string `json:"answer"`
}

type quizResponse struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
	Answer   string `json:"answer"`
}

func toModelResponse(m *domain.ARModel) modelResponse {
	return modelResponse{ID: m.ID, Name: m.Name, Description: m.Description}
}

func toQuizResponse(q *domain.QuizQuestion) quizResponse {
	return quizResponse{
		ID:       q.ID,
		Question: q.Question,
		OptionA:  q.OptionA,
		OptionB:  q.OptionB,
		OptionC:  q.OptionC,
		OptionD:  q.OptionD,
		Answer:   string(q.Answer),
	}
}

// ListModels handles GET /api/catalog/models.
func (h *CatalogHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.svc.ListModels(r.Context())
	if err != nil {
		h.handleError(w, r, err, false)
		return
	}

	out := make([]modelResponse, 0, len(models))
	for _, m := range models {
		out = append(out, toModelResponse(m))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateModel handles POST /api/catalog/models.
func (h *CatalogHandler) CreateModel(w http.ResponseWriter, r *http.Request) {
	var req modelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	model, err := h.svc.CreateModel(r.Context(), catalog.ModelInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err, true)
		return
	}

	writeJSON(w, http.StatusCreated, toModelResponse(model))
}

// UpdateModel handles PUT /api/catalog/models/{id}.
func (h *CatalogHandler) UpdateModel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req modelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	model, err := h.svc.UpdateModel(r.Context(), id, catalog.ModelInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err, true)
		return
	}

	writeJSON(w, http.StatusOK, toModelResponse(model))
}

// DeleteModel handles DELETE /api/catalog/models/{id}.
func (h *CatalogHandler) DeleteModel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteModel(r.Context(), id); err != nil {
		h.handleError(w, r, err, false)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListQuestions handles GET /api/catalog/quiz.
func (h *CatalogHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.svc.ListQuestions(r.Context())
	if err != nil {
		h.handleError(w, r, err, false)
		return
	}

	out := make([]quizResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, toQuizResponse(q))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateQuestion handles POST /api/catalog/quiz.
func (h *CatalogHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.svc.CreateQuestion(r.Context(), quizInput(req))
	if err != nil {
		h.handleError(w, r, err, true)
		return
	}

	writeJSON(w, http.StatusCreated, toQuizResponse(question))
}

// UpdateQuestion handles PUT /api/catalog/quiz/{id}.
func (h *CatalogHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.svc.UpdateQuestion(r.Context(), id, quizInput(req))
	if err != nil {
		h.handleError(w, r, err, true)
		return
	}

	writeJSON(w, http.StatusOK, toQuizResponse(question))
}

// DeleteQuestion handles DELETE /api/catalog/quiz/{id}.
func (h *CatalogHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		h.handleError(w, r, err, false)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func quizInput(req quizRequest) catalog.QuizInput {
	return catalog.QuizInput{
		Question: req.Question,
		OptionA:  req.OptionA,
		OptionB:  req.OptionB,
		OptionC:  req.OptionC,
		OptionD:  req.OptionD,
		Answer:   req.Answer,
	}
}

// pathID parses the {id} path segment. Writes 400 and returns false on
// anything that is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// handleError maps service errors onto HTTP responses. Save operations get
// the full error text so the form can show what to fix; reads and deletes
// get a generic message.
func (h *CatalogHandler) handleError(w http.ResponseWriter, r *http.Request, err error, verbose bool) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		if verbose {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			writeError(w, http.StatusBadRequest, "invalid input")
		}
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
