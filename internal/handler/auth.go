package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ideaboard/ideaboard-go/internal/middleware"
	"github.com/ideaboard/ideaboard-go/internal/model"
	"github.com/ideaboard/ideaboard-go/internal/repository"
	"github.com/ideaboard/ideaboard-go/internal/service"
)

// AuthHandler handles the auth endpoints. The session token rides in an
// HttpOnly cookie; response bodies only carry the safe user record.
type AuthHandler struct {
	service      *service.AuthService
	cookieMaxAge time.Duration
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler. cookieSecure should be on in
// production.
func NewAuthHandler(svc *service.AuthService, cookieMaxAge time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		service:      svc,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

// HandleRegister handles POST /api/auth/register. A successful registration
// logs the user in immediately.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeValidationError(w, vErr)
		case errors.Is(err, service.ErrUsernameTaken):
			writeJSON(w, http.StatusBadRequest, fieldErrorResponse("Username already taken", "username"))
		default:
			writeInternalError(w, "register", err)
		}
		return
	}

	h.setTokenCookie(w, resp.Token, h.cookieMaxAge)
	writeJSON(w, http.StatusCreated, resp.User)
}

// HandleLogin handles POST /api/auth/login.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse("Invalid username or password"))
			return
		}
		writeInternalError(w, "login", err)
		return
	}

	h.setTokenCookie(w, resp.Token, h.cookieMaxAge)
	writeJSON(w, http.StatusOK, resp.User)
}

// HandleLogout handles POST /api/auth/logout by expiring the session cookie.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.setTokenCookie(w, "", -1)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// HandleMe handles GET /api/auth/me.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Not authenticated"))
		return
	}

	resp, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		// the token may outlive its account
		if errors.Is(err, repository.ErrUserNotFound) {
			writeJSON(w, http.StatusUnauthorized, errorResponse("Not authenticated"))
			return
		}
		writeInternalError(w, "me", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, token string, maxAge time.Duration) {
	age := -1
	if maxAge > 0 {
		age = int(maxAge.Seconds())
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   age,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
