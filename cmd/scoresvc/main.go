package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	config "github.com/cueline/score-services/configs"
	"github.com/cueline/score-services/internal/scoresvc/db"
	handlers "github.com/cueline/score-services/internal/scoresvc/handlers"
	"github.com/cueline/score-services/internal/scoresvc/service"
	"github.com/cueline/score-services/internal/scoresvc/store"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "score"

func main() {
	config.Logging(SERVICE_NAME + "_service")
	config.CreateUniqueInstance(SERVICE_NAME)

	cfg, err := config.Load(SERVICE_NAME)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Without a store DSN the service still serves /health; every data
	// endpoint answers 503 until the environment is fixed.
	var h *handlers.Handler
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL is not set, data endpoints disabled")
		h = handlers.NewHandler(nil, nil, nil)
	} else {
		dbpool, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		defer dbpool.Close()
		log.Printf("pg connection established successfully")

		gameStore := store.NewGameStore(dbpool)
		playerStore := store.NewPlayerStore(dbpool)
		gamePlayerStore := store.NewGamePlayerStore(dbpool)
		scoreUpdateStore := store.NewScoreUpdateStore(dbpool)

		gameService := service.NewGameService(gameStore, playerStore, gamePlayerStore, scoreUpdateStore)
		playerService := service.NewPlayerService(playerStore)
		scoreService := service.NewScoreService(gameStore, gamePlayerStore, scoreUpdateStore)

		h = handlers.NewHandler(gameService, playerService, scoreService)
	}

	// Setup router
	r := chi.NewRouter()
	c := config.CORS(cfg.AllowedOrigins)

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	r.Use(httprate.LimitByIP(cfg.RateLimit, 1*time.Minute))

	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + cfg.ServicePort,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
