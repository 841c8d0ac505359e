package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ideaboard/ideaboard-go/internal/middleware"
	"github.com/ideaboard/ideaboard-go/internal/model"
	"github.com/ideaboard/ideaboard-go/internal/service"
)

// IdeaHandler handles the idea CRUD endpoints.
type IdeaHandler struct {
	service *service.IdeaService
}

// NewIdeaHandler creates a new IdeaHandler.
func NewIdeaHandler(svc *service.IdeaService) *IdeaHandler {
	return &IdeaHandler{service: svc}
}

// HandleList handles GET /api/ideas. Anonymous viewers are fine; they just
// never see hasUpvoted true.
func (h *IdeaHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.service.List(r.Context(), middleware.ViewerFromContext(r.Context()))
	if err != nil {
		writeInternalError(w, "list ideas", err)
		return
	}

	writeJSON(w, http.StatusOK, ideas)
}

// HandleGet handles GET /api/ideas/{id}.
func (h *IdeaHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := ideaIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("Idea not found"))
		return
	}

	idea, err := h.service.Get(r.Context(), id, middleware.ViewerFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, service.ErrIdeaNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("Idea not found"))
			return
		}
		writeInternalError(w, "get idea", err)
		return
	}

	writeJSON(w, http.StatusOK, idea)
}

// HandleCreate handles POST /api/ideas.
func (h *IdeaHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Not authenticated"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	idea, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeValidationError(w, vErr)
			return
		}
		writeInternalError(w, "create idea", err)
		return
	}

	writeJSON(w, http.StatusCreated, idea)
}

// HandleUpdate handles PUT /api/ideas/{id} with a partial body.
func (h *IdeaHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Not authenticated"))
		return
	}

	id, err := ideaIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("Idea not found"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	idea, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeValidationError(w, vErr)
		case errors.Is(err, service.ErrIdeaNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("Idea not found"))
		case errors.Is(err, service.ErrForbidden):
			writeJSON(w, http.StatusForbidden, errorResponse("Not allowed to modify this idea"))
		default:
			writeInternalError(w, "update idea", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, idea)
}

// HandleDelete handles DELETE /api/ideas/{id}. Deleting a missing idea is
// 404, deliberately not idempotent.
func (h *IdeaHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Not authenticated"))
		return
	}

	id, err := ideaIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("Idea not found"))
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrIdeaNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("Idea not found"))
		case errors.Is(err, service.ErrForbidden):
			writeJSON(w, http.StatusForbidden, errorResponse("Not allowed to modify this idea"))
		default:
			writeInternalError(w, "delete idea", err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
