package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ideaboard/ideaboard-go/internal/config"
	"github.com/ideaboard/ideaboard-go/internal/handler"
	"github.com/ideaboard/ideaboard-go/internal/middleware"
	"github.com/ideaboard/ideaboard-go/internal/repository"
	"github.com/ideaboard/ideaboard-go/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Error("failed to open database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := repository.Migrate(ctx, db, cfg.DBDriver); err != nil {
		slog.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	upvoteRepo := repository.NewUpvoteRepository(db)

	if err := repository.SeedIdeas(ctx, ideaRepo); err != nil {
		slog.Warn("skipping seed data", "error", err)
	}

	guard := service.Guard{LegacyMutable: cfg.LegacyIdeasMutable}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	ideaService := service.NewIdeaService(ideaRepo, guard)
	commentService := service.NewCommentService(commentRepo)
	upvoteService := service.NewUpvoteService(ideaRepo, upvoteRepo)

	authHandler := handler.NewAuthHandler(authService, cfg.JWTExpiry, cfg.Env == "production")
	ideaHandler := handler.NewIdeaHandler(ideaService)
	commentHandler := handler.NewCommentHandler(commentService)
	upvoteHandler := handler.NewUpvoteHandler(upvoteService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(cfg.AllowedOrigin))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.HandleRegister)
			r.Post("/login", authHandler.HandleLogin)
			r.Post("/logout", authHandler.HandleLogout)
			r.With(middleware.RequireAuth(cfg.JWTSecret)).Get("/me", authHandler.HandleMe)
		})

		r.Route("/ideas", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.OptionalAuth(cfg.JWTSecret))
				r.Get("/", ideaHandler.HandleList)
				r.Get("/{id}", ideaHandler.HandleGet)
				r.Get("/{id}/comments/{section}", commentHandler.HandleList)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(cfg.JWTSecret))
				r.Post("/", ideaHandler.HandleCreate)
				r.Put("/{id}", ideaHandler.HandleUpdate)
				r.Delete("/{id}", ideaHandler.HandleDelete)
				r.Post("/{id}/comments", commentHandler.HandleCreate)
				r.Post("/{id}/upvote", upvoteHandler.HandleAdd)
				r.Delete("/{id}/upvote", upvoteHandler.HandleRemove)
			})
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
