package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/vizboard/insight-engine/pkg/config"
	"github.com/vizboard/insight-engine/pkg/handlers"
	"github.com/vizboard/insight-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := []services.VisualizationServiceOption{
		services.WithImpactCoefficient(cfg.Pipeline.ImpactCoefficient),
	}
	if cfg.Pipeline.NetworkSeed != 0 {
		opts = append(opts, services.WithNetworkSeed(cfg.Pipeline.NetworkSeed))
	}
	service := services.NewVisualizationService(logger, opts...)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(r)
	handlers.NewVisualizationHandler(service, logger).RegisterRoutes(r)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("starting insight-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
		zap.String("env", cfg.Env))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// buildLogger returns a production logger outside local environments and a
// development logger otherwise.
func buildLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
