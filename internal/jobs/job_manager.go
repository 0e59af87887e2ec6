package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"kitchen/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderArchivalJob *OrderArchivalJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	archiveServedOrdersHandler commands.ArchiveServedOrdersCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderArchivalJob: NewOrderArchivalJob(archiveServedOrdersHandler, retention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderArchivalJob.Start(); err != nil {
		return fmt.Errorf("failed to start order archival job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderArchivalJob.Stop()
}
