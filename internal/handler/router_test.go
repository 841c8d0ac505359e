package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ideaboard/ideaboard-go/internal/middleware"
	"github.com/ideaboard/ideaboard-go/internal/model"
	"github.com/ideaboard/ideaboard-go/internal/repository"
	"github.com/ideaboard/ideaboard-go/internal/service"
)

const testJWTSecret = "handler-test-secret"

// testApp wires the full stack over an in-memory SQLite database, mirroring
// the production router.
type testApp struct {
	t      *testing.T
	router http.Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := repository.NewDB("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := repository.Migrate(context.Background(), db, "sqlite"); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	upvoteRepo := repository.NewUpvoteRepository(db)

	guard := service.Guard{LegacyMutable: true}

	authHandler := NewAuthHandler(service.NewAuthService(userRepo, testJWTSecret, time.Hour), time.Hour, false)
	ideaHandler := NewIdeaHandler(service.NewIdeaService(ideaRepo, guard))
	commentHandler := NewCommentHandler(service.NewCommentService(commentRepo))
	upvoteHandler := NewUpvoteHandler(service.NewUpvoteService(ideaRepo, upvoteRepo))

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.HandleRegister)
			r.Post("/login", authHandler.HandleLogin)
			r.Post("/logout", authHandler.HandleLogout)
			r.With(middleware.RequireAuth(testJWTSecret)).Get("/me", authHandler.HandleMe)
		})

		r.Route("/ideas", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.OptionalAuth(testJWTSecret))
				r.Get("/", ideaHandler.HandleList)
				r.Get("/{id}", ideaHandler.HandleGet)
				r.Get("/{id}/comments/{section}", commentHandler.HandleList)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(testJWTSecret))
				r.Post("/", ideaHandler.HandleCreate)
				r.Put("/{id}", ideaHandler.HandleUpdate)
				r.Delete("/{id}", ideaHandler.HandleDelete)
				r.Post("/{id}/comments", commentHandler.HandleCreate)
				r.Post("/{id}/upvote", upvoteHandler.HandleAdd)
				r.Delete("/{id}/upvote", upvoteHandler.HandleRemove)
			})
		})
	})

	return &testApp{t: t, router: r}
}

// do performs one request against the router. body is JSON-encoded when
// non-nil; cookie carries the session when non-nil.
func (a *testApp) do(method, path string, cookie *http.Cookie, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			a.t.Fatalf("encoding body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// doWithHeader performs one request carrying an Authorization header
// instead of a cookie.
func (a *testApp) doWithHeader(method, path, authorization string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			a.t.Fatalf("encoding body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", authorization)

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns its session cookie.
func (a *testApp) register(username string) *http.Cookie {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/auth/register", nil, map[string]string{
		"username": username,
		"password": "password1",
	})
	if rec.Code != http.StatusCreated {
		a.t.Fatalf("register %q: status %d, body %s", username, rec.Code, rec.Body.String())
	}
	return sessionCookie(a.t, rec)
}

// createIdea creates a valid idea as the given session and returns its id.
func (a *testApp) createIdea(cookie *http.Cookie) int64 {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/ideas/", cookie, map[string]string{
		"what":         "A plant watering reminder",
		"who":          "Forgetful plant owners",
		"features":     "1. Schedule 2. Notify",
		"doneCriteria": "A plant survives a month",
		"inspiration":  "A dead fern",
	})
	if rec.Code != http.StatusCreated {
		a.t.Fatalf("create idea: status %d, body %s", rec.Code, rec.Body.String())
	}

	var idea model.IdeaResponse
	decodeBody(a.t, rec, &idea)
	return idea.ID
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.TokenCookie {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding body %s: %v", rec.Body.String(), err)
	}
}
