// Package httpapi exposes the submission workflow over a REST API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fstr-project/pereval/internal/common"
	"github.com/fstr-project/pereval/internal/logging"
	"github.com/fstr-project/pereval/internal/server/models"
	"github.com/go-chi/chi/v5"
)

// PassOps is the slice of the service layer the handlers need.
type PassOps interface {
	Submit(ctx context.Context, pass *models.Pass) (*models.Pass, error)
	Edit(ctx context.Context, id int64, pass *models.Pass) (*models.Pass, error)
	GetByID(ctx context.Context, id int64) (*models.Pass, error)
	ListByOwnerEmail(ctx context.Context, email string) ([]*models.Pass, error)
}

// Handlers holds the HTTP handlers for the submitData endpoints.
type Handlers struct {
	passes PassOps
	logger logging.Logger
}

// NewHandlers constructs the handler set.
func NewHandlers(passes PassOps, logger logging.Logger) *Handlers {
	return &Handlers{passes: passes, logger: logger.With("module", "httpapi")}
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, code int, msg string) {
	respondJSON(w, code, submitResponse{Status: code, Message: &msg})
}

// writeErr maps service errors onto the response contract: validation and
// status-gate violations are bad requests, missing records are 404, and
// everything else is an opaque server failure.
func (h *Handlers) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorEditNotAllowed):
		respondError(w, http.StatusBadRequest, common.ErrorEditNotAllowed.Error())
	case errors.Is(err, common.ErrorNotFound):
		respondError(w, http.StatusNotFound, "record not found")
	default:
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
		respondError(w, http.StatusInternalServerError, "server error")
	}
}

// Health responds to the root probe.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "API is running"})
}

// SubmitPass handles POST /submitData.
func (h *Handlers) SubmitPass(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pass, err := h.passes.Submit(r.Context(), req.toModel())
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, submitResponse{Status: http.StatusOK, ID: &pass.ID})
}

// GetPass handles GET /submitData/{id}.
func (h *Handlers) GetPass(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	pass, err := h.passes.GetByID(r.Context(), id)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toPassResponse(pass))
}

// UpdatePass handles PATCH /submitData/{id}. Every editable field is
// overwritten from the request body; owner and images are left as they are.
func (h *Handlers) UpdatePass(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pass, err := h.passes.Edit(r.Context(), id, req.toModel())
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, submitResponse{Status: http.StatusOK, ID: &pass.ID})
}

// ListPasses handles GET /submitData/?user__email=<email>.
func (h *Handlers) ListPasses(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("user__email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "user__email query parameter is required")
		return
	}

	list, err := h.passes.ListByOwnerEmail(r.Context(), email)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	resp := make([]passResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, toPassResponse(p))
	}
	respondJSON(w, http.StatusOK, resp)
}
