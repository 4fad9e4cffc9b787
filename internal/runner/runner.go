package runner

import (
	"context"
	"fmt"
	"go-async-exercises/internal/models"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type RunnerService interface {
	Run(ctx context.Context) error
}

// Runner starts every job at once and waits for all of them.
// A failing job does not cancel the others.
type Runner struct {
	jobs []models.Job
}

func New(jobs ...models.Job) *Runner {
	return &Runner{jobs: jobs}
}

// Run returns the first job error once every job has finished.
func (r *Runner) Run(ctx context.Context) error {
	jobs := make([]models.Job, len(r.jobs))
	for i, job := range r.jobs {
		if job.ID == "" {
			id, err := uuid.NewRandom()
			if err != nil {
				return fmt.Errorf("generate job id: %w", err)
			}
			job.ID = id.String()
		}
		jobs[i] = job
	}

	// IDs are assigned before any job starts so an early return leaves nothing running.
	var g errgroup.Group // plain group: no shared cancellation between jobs
	for _, job := range jobs {
		g.Go(func() error {
			return runJob(ctx, job)
		})
	}
	return g.Wait()
}

func runJob(ctx context.Context, job models.Job) error {
	slog.Debug("Starting job", "jobID", job.ID, "job", job.Name)
	start := time.Now()
	err := job.Run(ctx)
	if err != nil {
		// the job already reported its failure to the console
		slog.Debug("Job failed", "jobID", job.ID, "job", job.Name, "elapsed", time.Since(start), "error", err)
		return fmt.Errorf("%s: %w", job.Name, err)
	}
	slog.Debug("Job finished", "jobID", job.ID, "job", job.Name, "elapsed", time.Since(start))
	return nil
}
