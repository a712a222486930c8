package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"idnum/internal/platform/config"
	"idnum/internal/platform/httpserver"
	"idnum/internal/platform/logger"
	"idnum/internal/validate"
	"idnum/internal/validate/handler"
	"idnum/internal/validate/metrics"
	"idnum/internal/validate/schemes"
	"idnum/pkg/platform/middleware/metadata"
	"idnum/pkg/platform/middleware/requestid"
	"idnum/pkg/platform/middleware/requesttime"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Validation logic lives in internal/validate.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	service, err := validate.NewService(schemes.Default(), log, metrics.New())
	if err != nil {
		log.Error("service wiring failed", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	handler.New(service, log).Register(r)

	srv := httpserver.New(cfg.Addr, r)

	log.Info("starting idnum server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
