package workers

import (
	"context"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker and waits for all of them. The first error
// cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		worker := worker
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}

// Job is one unit of periodic work.
type Job func(ctx context.Context) error

// Periodic runs a job immediately and then every interval. A failing run is
// logged and does not stop the schedule; runs never overlap.
type Periodic struct {
	name     string
	interval time.Duration
	job      Job
	logger   *logger.Logger
}

func NewPeriodic(name string, interval time.Duration, job Job, logger *logger.Logger) *Periodic {
	return &Periodic{name: name, interval: interval, job: job, logger: logger}
}

func (p *Periodic) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.runOnce(ctx)
		if ctx.Err() != nil {
			p.logger.Info().Str("worker", p.name).Msg("worker stopped")
			return nil
		}

		select {
		case <-ctx.Done():
			p.logger.Info().Str("worker", p.name).Msg("worker stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (p *Periodic) runOnce(ctx context.Context) {
	start := time.Now()
	if err := p.job(ctx); err != nil {
		p.logger.Error().Err(err).Str("worker", p.name).Msg("run failed")
		return
	}
	p.logger.Debug().Str("worker", p.name).Dur("duration", time.Since(start)).Msg("run finished")
}
