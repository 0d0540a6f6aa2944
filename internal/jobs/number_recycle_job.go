package jobs

import (
	"context"
	"log/slog"
	"time"

	"pos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NumberRecycleJob periodically frees the display numbers of paid orders
// older than the retention window, returning them to the pool the allocator
// draws from. Unpaid orders keep their numbers regardless of age.
type NumberRecycleJob struct {
	handler   commands.ReleaseOrderNumbersCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNumberRecycleJob creates a job that releases stale display numbers.
// retention is how long a paid order keeps its number before it is freed.
func NewNumberRecycleJob(
	handler commands.ReleaseOrderNumbersCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *NumberRecycleJob {
	return &NumberRecycleJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "number_recycle_job"),
	}
}

// Start begins the number recycle job to run every minute.
func (j *NumberRecycleJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-j.retention)

		cmd, cmdErr := commands.NewReleaseOrderNumbersCommand(cutoff)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Number recycle job failed to build command", "error", cmdErr)
			return
		}

		released, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Number recycle job failed", "error", handleErr)
			return
		}

		if released > 0 {
			j.logger.InfoContext(ctx, "Released stale order numbers", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Number recycle job started (running every minute)")
	return nil
}

// Stop stops the number recycle job.
func (j *NumberRecycleJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Number recycle job stopped")
}
