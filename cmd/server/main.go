package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mmi-portfolio/backend/internal/config"
	"github.com/mmi-portfolio/backend/internal/handler"
	"github.com/mmi-portfolio/backend/internal/logging"
	"github.com/mmi-portfolio/backend/internal/metrics"
	"github.com/mmi-portfolio/backend/internal/repository"
	"github.com/mmi-portfolio/backend/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	// A missing or broken store is a degraded state, not a fatal one.
	store := openStore(cfg)
	if store != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Close(ctx); err != nil {
				slog.Warn("closing document store", "error", err)
			}
		}()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	projectRepo := repository.NewProjectRepository(store)
	messageRepo := repository.NewMessageRepository(store)
	projectService := service.NewProjectService(projectRepo, m)
	contactService := service.NewContactService(messageRepo, m)
	diagnosticsService := service.NewDiagnosticsService(store, cfg.DatabaseURL != "", cfg.DatabaseName != "")

	router := handler.NewRouter(handler.Routes{
		Handler:  handler.New(diagnosticsService),
		Projects: handler.NewProjectHandler(projectService),
		Contact:  handler.NewContactHandler(contactService),
		Metrics:  m,
		Gatherer: reg,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// openStore returns nil when no usable store is configured.
func openStore(cfg *config.Config) repository.DocumentStore {
	if !cfg.StoreConfigured() {
		slog.Warn("DATABASE_URL or DATABASE_NAME not set; serving demo data")
		return nil
	}
	store, err := repository.Open(context.Background(), cfg.DatabaseURL, cfg.DatabaseName, cfg.StoreTimeout)
	if err != nil {
		slog.Error("document store unavailable; serving demo data", "error", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		slog.Warn("document store not reachable at startup", "store", store.Name(), "error", err)
	} else {
		slog.Info("document store connected", "store", store.Name())
	}
	return store
}
