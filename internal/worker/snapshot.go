package worker

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/complyaudit/complyaudit/internal/domain/compliance"
	"github.com/complyaudit/complyaudit/internal/pkg/logger"
)

// SnapshotWorker records posture trend snapshots on a cron schedule
type SnapshotWorker struct {
	postureService compliance.Service
	schedule       string
	logger         *logger.Logger
	cron           *cron.Cron
}

// NewSnapshotWorker creates a new snapshot worker
func NewSnapshotWorker(postureService compliance.Service, schedule string, log *logger.Logger) *SnapshotWorker {
	return &SnapshotWorker{
		postureService: postureService,
		schedule:       schedule,
		logger:         log,
	}
}

// Start schedules snapshots and blocks until the context is cancelled
func (w *SnapshotWorker) Start(ctx context.Context) error {
	w.cron = cron.New()

	if _, err := w.cron.AddFunc(w.schedule, func() {
		if err := w.postureService.Snapshot(ctx); err != nil {
			w.logger.ErrorWithErr(err, "Posture snapshot failed")
		}
	}); err != nil {
		return err
	}

	w.logger.WithFields(map[string]interface{}{
		"schedule": w.schedule,
	}).Info("Starting snapshot worker")
	w.cron.Start()

	<-ctx.Done()
	<-w.cron.Stop().Done()
	w.logger.Info("Snapshot worker stopped")
	return nil
}
