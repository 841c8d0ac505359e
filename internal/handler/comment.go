package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ideaboard/ideaboard-go/internal/middleware"
	"github.com/ideaboard/ideaboard-go/internal/model"
	"github.com/ideaboard/ideaboard-go/internal/service"
)

// CommentHandler handles the per-section comment endpoints.
type CommentHandler struct {
	service *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{service: svc}
}

// HandleList handles GET /api/ideas/{id}/comments/{section}. An unknown
// idea or section yields an empty list rather than an error.
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, err := ideaIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("Idea not found"))
		return
	}

	comments, err := h.service.List(r.Context(), id, chi.URLParam(r, "section"))
	if err != nil {
		writeInternalError(w, "list comments", err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

// HandleCreate handles POST /api/ideas/{id}/comments.
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	comment, err := h.service.Create(r.Context(), id, userID, req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeValidationError(w, vErr)
		case errors.Is(err, service.ErrIdeaNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("Idea not found"))
		default:
			writeInternalError(w, "create comment", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}
