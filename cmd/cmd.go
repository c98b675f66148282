package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sendaboop-backend/internal/config"
	"sendaboop-backend/internal/email"
	"sendaboop-backend/internal/handlers"
	"sendaboop-backend/internal/middleware"
	"sendaboop-backend/internal/registry"
	"sendaboop-backend/internal/services"
	"sendaboop-backend/internal/token"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret must be set")
	}
	if cfg.Email.APIKey == "" {
		log.Warn().Msg("email.api_key not set, emails will not be sent")
	}

	// Pick the used-token registry driver
	var used registry.Store
	switch cfg.Registry.Driver {
	case "postgres":
		db, err := pgxpool.New(context.Background(), cfg.Registry.DSN())
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()

		if err := db.Ping(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to ping database")
		}

		pg := registry.NewPostgresStore(db)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare used_tokens table")
		}
		used = pg
		log.Info().Msg("Database connection established")
	default:
		mem := registry.NewMemoryStore()
		sweepCtx, stopSweeper := context.WithCancel(context.Background())
		defer stopSweeper()
		// Entries older than the token validity can never be redeemed again
		go mem.RunSweeper(sweepCtx, time.Hour, token.Validity)
		used = mem
		log.Info().Msg("Using in-memory used-token registry")
	}

	// Initialize services
	codec := token.NewCodec(cfg.JWT.Secret)
	mailer := email.NewResendSender(cfg.Email.APIKey, cfg.Email.From)
	boopService := services.NewBoopService(codec, used, mailer, cfg.App.BaseURL)
	contactService := services.NewContactService(mailer, cfg.Email.ContactTo)
	dogService, err := services.NewDogService(
		cfg.AWS.Region,
		cfg.AWS.S3Bucket,
		cfg.AWS.AccessKey,
		cfg.AWS.SecretKey,
		cfg.AWS.Endpoint,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create dog service")
	}

	// Initialize handlers
	boopHandler := handlers.NewBoopHandler(boopService)
	dogHandler := handlers.NewDogHandler(dogService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	sendLimit := middleware.RateLimit(middleware.RateLimitConfig{
		Requests: cfg.RateLimit.SendRequests,
		Window:   time.Duration(cfg.RateLimit.SendWindowSec) * time.Second,
	})
	verifyLimit := middleware.RateLimit(middleware.RateLimitConfig{
		Requests: cfg.RateLimit.VerifyRequests,
		Window:   time.Duration(cfg.RateLimit.VerifyWindowSec) * time.Second,
	})

	// Routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthCheck)
		r.Get("/dogs", dogHandler.GetDogs)
		r.With(sendLimit).Post("/send-boop", boopHandler.SendBoop)
		r.With(verifyLimit).Get("/verify-boop", boopHandler.VerifyBoop)
		r.With(verifyLimit).Get("/verify-boop/{token}", boopHandler.VerifyBoop)
		r.Post("/contact", contactHandler.SendMessage)
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// healthCheck handles GET /api/health
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
