package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CancellationJob finalizes orders whose cancellation compensation has
// completed. Runs every second to move Cancelling orders to Cancelled.
type CancellationJob struct {
	handler commands.CompleteCancellationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCancellationJob creates a new job for finalizing cancellations.
// Uses CompleteCancellationsCommandHandler to process pending cancellations
// every second.
func NewCancellationJob(handler commands.CompleteCancellationsCommandHandler, logger *slog.Logger) *CancellationJob {
	return &CancellationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cancellation_job"),
	}
}

// Start begins the cancellation job to run every second.
func (j *CancellationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCompleteCancellationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Cancellation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cancellation job started (running every second)")
	return nil
}

// Stop stops the cancellation job.
func (j *CancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cancellation job stopped")
}
