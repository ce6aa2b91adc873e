package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/complyaudit/complyaudit/internal/api/handlers"
	"github.com/complyaudit/complyaudit/internal/api/router"
	"github.com/complyaudit/complyaudit/internal/config"
	"github.com/complyaudit/complyaudit/internal/domain/compliance"
	"github.com/complyaudit/complyaudit/internal/domain/recommendation"
	"github.com/complyaudit/complyaudit/internal/pkg/logger"
	"github.com/complyaudit/complyaudit/internal/repository/sqlite"
	"github.com/complyaudit/complyaudit/internal/services"
	"github.com/complyaudit/complyaudit/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.OutputPath,
	})
	log := logger.Get()

	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal(fmt.Sprintf("failed to open database %s: %v", cfg.Database.Path, err))
	}
	defer store.Close()

	catalog := compliance.DefaultCatalog()
	if cfg.Workflow.CatalogPath != "" {
		catalog, err = compliance.LoadCatalog(cfg.Workflow.CatalogPath)
		if err != nil {
			log.Fatal(fmt.Sprintf("failed to load catalog %s: %v", cfg.Workflow.CatalogPath, err))
		}
	}
	library := recommendation.DefaultLibrary()

	postureOpts := []services.PostureOption{services.WithTrendStore(store)}
	if cfg.Workflow.CountAppliedAsPassed {
		postureOpts = append(postureOpts, services.WithAppliedCountedAsPassed())
	}
	postureService := services.NewPostureService(catalog, library, store, log, postureOpts...)
	workflowManager := services.NewWorkflowManager(catalog, library, store, cfg.Workflow.ApplyDelay, log)

	h := &router.Handlers{
		Health:      handlers.NewHealthHandler(store, log),
		Posture:     handlers.NewPostureHandler(postureService, log),
		Remediation: handlers.NewRemediationHandler(workflowManager, log),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snapshotWorker := worker.NewSnapshotWorker(postureService, cfg.Workflow.SnapshotSchedule, log)
	go func() {
		if err := snapshotWorker.Start(ctx); err != nil {
			log.ErrorWithErr(err, "Snapshot worker failed to start")
		}
	}()

	go func() {
		log.WithFields(map[string]interface{}{
			"addr":       srv.Addr,
			"frameworks": catalog.Len(),
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(fmt.Sprintf("server failed: %v", err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorWithErr(err, "Graceful shutdown failed")
	}
}
