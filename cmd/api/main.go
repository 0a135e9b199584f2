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
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/puresoul/puresoul-go/internal/config"
	"github.com/puresoul/puresoul-go/internal/elevenlabs"
	"github.com/puresoul/puresoul-go/internal/groq"
	"github.com/puresoul/puresoul-go/internal/handler"
	"github.com/puresoul/puresoul-go/internal/middleware"
	"github.com/puresoul/puresoul-go/internal/repository"
	"github.com/puresoul/puresoul-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	creditService := service.NewCreditService(userRepo)
	chatService := service.NewChatService(groq.NewClient(cfg.GroqAPIKey))
	speechService := service.NewSpeechService(elevenlabs.NewClient(cfg.ElevenAPIKey))

	authHandler := handler.NewAuthHandler(authService)
	creditHandler := handler.NewCreditHandler(creditService)
	chatHandler := handler.NewChatHandler(chatService)
	speechHandler := handler.NewSpeechHandler(speechService)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/", handler.HandleIndex)
	r.Post("/api/text-to-speech", speechHandler.HandleTextToSpeech)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/register", authHandler.HandleRegister)
		r.Post("/api/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret, userRepo))
		r.Get("/api/credits", creditHandler.HandleGetCredits)
		r.Post("/api/credits/use", creditHandler.HandleUseCredit)
		r.Post("/api/credits/buy", creditHandler.HandleBuyCredits)
		r.Post("/api/get-response", chatHandler.HandleGetResponse)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
