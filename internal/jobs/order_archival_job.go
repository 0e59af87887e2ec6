package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"kitchen/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderArchivalJob manages the scheduled purge of old served orders.
// Runs every minute so a served check lingers on the expediter view for the
// retention window and then disappears.
type OrderArchivalJob struct {
	handler   commands.ArchiveServedOrdersCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderArchivalJob creates a new job for archiving served orders.
// Uses ArchiveServedOrdersCommandHandler to purge orders served more than
// retention ago.
func NewOrderArchivalJob(handler commands.ArchiveServedOrdersCommandHandler, retention time.Duration, logger *slog.Logger) *OrderArchivalJob {
	return &OrderArchivalJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "order_archival_job"),
	}
}

// Start begins the archival job to run every minute.
func (j *OrderArchivalJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewArchiveServedOrdersCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order archival job misconfigured", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty purge is the normal outcome between meal rushes.
			if !errors.Is(err, commands.ErrNoServedOrdersToArchive) {
				j.logger.ErrorContext(ctx, "Order archival job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order archival job started (running every minute)")
	return nil
}

// Stop stops the archival job.
func (j *OrderArchivalJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order archival job stopped")
}
