package pipelineimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
)

const runTimeout = 30 * time.Minute

func newScheduler() (gocron.Scheduler, error) {
	return gocron.NewScheduler(gocron.WithLocation(time.UTC))
}

func (p *PipelineImpl) registerRunJob(ctx context.Context, scheduler gocron.Scheduler) error {
	_, err := scheduler.NewJob(
		gocron.CronJob(p.Config.App.CronSpec, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				p.Logger.Info("Context cancelled, skipping scheduled run")
				return
			}
			taskCtx, cancel := context.WithTimeout(ctx, runTimeout)
			defer cancel()

			report := p.Run(taskCtx)
			if report.Status != domain.RunSuccess {
				p.Logger.Warn("Scheduled run did not fully succeed", "status", report.Status.String())
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule run: %w", err)
	}
	return nil
}
