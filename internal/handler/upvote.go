package handler

import (
	"errors"
	"net/http"

	"github.com/ideaboard/ideaboard-go/internal/middleware"
	"github.com/ideaboard/ideaboard-go/internal/service"
)

// UpvoteHandler handles the upvote toggle endpoints.
type UpvoteHandler struct {
	service *service.UpvoteService
}

// NewUpvoteHandler creates a new UpvoteHandler.
func NewUpvoteHandler(svc *service.UpvoteService) *UpvoteHandler {
	return &UpvoteHandler{service: svc}
}

// HandleAdd handles POST /api/ideas/{id}/upvote. Double submissions lose
// with 400 "Already upvoted"; exactly one row survives.
func (h *UpvoteHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.service.Add(r.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIdeaNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("Idea not found"))
		case errors.Is(err, service.ErrAlreadyUpvoted):
			writeJSON(w, http.StatusBadRequest, errorResponse("Already upvoted"))
		default:
			writeInternalError(w, "add upvote", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleRemove handles DELETE /api/ideas/{id}/upvote. Removing an upvote
// that is not there succeeds; only a missing idea is an error.
func (h *UpvoteHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.service.Remove(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, service.ErrIdeaNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("Idea not found"))
			return
		}
		writeInternalError(w, "remove upvote", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
