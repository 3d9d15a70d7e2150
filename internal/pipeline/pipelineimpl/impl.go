package pipelineimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/mediacache"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/pipeline"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/publisher"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/repositories/submission"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/selector"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/telegram"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/twitter"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/config"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Twitter        twitter.Client
	Selector       *selector.Selector
	Publisher      publisher.Client
	SubmissionRepo submission.Repository
	Telegram       telegram.Client
	Media          *mediacache.Cache
	Logger         logger.Logger
	Config         *config.Config
}

type PipelineImpl struct {
	Twitter        twitter.Client
	Selector       *selector.Selector
	Publisher      publisher.Client
	SubmissionRepo submission.Repository
	Telegram       telegram.Client
	Media          *mediacache.Cache
	Logger         logger.Logger
	Config         *config.Config
}

func New(opts Opts) *PipelineImpl {
	return &PipelineImpl{
		Twitter:        opts.Twitter,
		Selector:       opts.Selector,
		Publisher:      opts.Publisher,
		SubmissionRepo: opts.SubmissionRepo,
		Telegram:       opts.Telegram,
		Media:          opts.Media,
		Logger:         opts.Logger.WithComponent("Pipeline"),
		Config:         opts.Config,
	}
}

var _ pipeline.Client = (*PipelineImpl)(nil)

// Run executes one full cycle. Failures before a group is selected are fatal;
// a publish failure after a submission went live downgrades to partial so the
// live handles are not lost.
func (p *PipelineImpl) Run(ctx context.Context) domain.RunReport {
	started := time.Now()
	p.Logger.Info("Starting run", "test_mode", p.Config.App.TestMode)

	// Stale artifacts from a crashed run would leak into this run's video
	// and gallery uploads.
	p.Media.Cleanup()

	posts, err := p.fetchPosts(ctx)
	if err != nil {
		return p.fatal(fmt.Errorf("failed to fetch posts: %w", err))
	}
	p.Logger.Info("Fetched posts", "count", len(posts))

	window, err := p.selectionWindow()
	if err != nil {
		return p.fatal(err)
	}

	group, err := p.Selector.SelectGroup(posts, window)
	if err != nil {
		return p.fatal(fmt.Errorf("selection failed: %w", err))
	}
	if group == nil {
		p.Logger.Info("Nothing to publish", "elapsed", time.Since(started))
		return domain.RunReport{Status: domain.RunSuccess}
	}

	outcome := domain.GroupOutcome{TweetURL: group.TweetURL}
	record, err := p.Publisher.PublishGroup(ctx, *group)
	outcome.Record = record
	outcome.Err = err

	if record != nil {
		p.persistRecord(ctx, record)
	}

	report := domain.RunReport{Groups: []domain.GroupOutcome{outcome}}
	switch {
	case err == nil:
		report.Status = domain.RunSuccess
	case record != nil:
		// The submission exists; only a follow-up step failed.
		report.Status = domain.RunPartial
	default:
		return p.fatal(err)
	}

	p.Logger.Info("Run finished",
		"status", report.Status.String(),
		"tweet_url", group.TweetURL,
		"elapsed", time.Since(started),
	)
	if report.Status == domain.RunPartial {
		p.Telegram.NotifyError(fmt.Sprintf("Run partial for %s: %v", group.TweetURL, err))
	} else if record != nil {
		p.Telegram.NotifyInfo(fmt.Sprintf("Mirrored %s -> %s", group.TweetURL, record.Submission.Permalink))
	}
	return report
}

// Schedule registers the daily cron job and starts the scheduler. The job
// shares the bot's context: cancelling it shuts the scheduler down.
func (p *PipelineImpl) Schedule(ctx context.Context) error {
	scheduler, err := newScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	if err := p.registerRunJob(ctx, scheduler); err != nil {
		return err
	}

	scheduler.Start()
	p.Logger.Info("Scheduler started", "cron", p.Config.App.CronSpec)

	go func() {
		<-ctx.Done()
		p.Logger.Info("Stopping scheduler")
		if err := scheduler.Shutdown(); err != nil {
			p.Logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}

func (p *PipelineImpl) fetchPosts(ctx context.Context) ([]domain.RawPost, error) {
	if ids := p.Config.CustomPostIDList(); len(ids) > 0 {
		p.Logger.Info("Fetching explicit post ids", "count", len(ids))
		return p.Twitter.FetchPosts(ctx, ids)
	}
	return p.Twitter.FetchRecentPosts(
		ctx,
		p.Config.Twitter.ScreenName,
		p.Config.Twitter.FetchCount,
		true,  // replies carry the rest of a split chain
		false, // retweets are never the account's own content
	)
}

// selectionWindow builds the filter window: explicit RFC3339 bounds when
// configured, otherwise the rolling daily lower bound.
func (p *PipelineImpl) selectionWindow() (domain.SelectionWindow, error) {
	if p.Config.Window.Lower == "" {
		window := domain.DailyWindow(time.Now(), p.Config.Window.LowerHourUTC)
		return window, nil
	}

	lower, err := time.Parse(time.RFC3339, p.Config.Window.Lower)
	if err != nil {
		return domain.SelectionWindow{}, fmt.Errorf("bad WINDOW_LOWER %q: %w", p.Config.Window.Lower, err)
	}
	window := domain.SelectionWindow{Lower: lower}

	if p.Config.Window.Upper != "" {
		upper, err := time.Parse(time.RFC3339, p.Config.Window.Upper)
		if err != nil {
			return domain.SelectionWindow{}, fmt.Errorf("bad WINDOW_UPPER %q: %w", p.Config.Window.Upper, err)
		}
		window.Upper = upper
	}
	return window, nil
}

// persistRecord writes the audit row. Best-effort: the mirror already
// happened and a duplicate id just means a re-run.
func (p *PipelineImpl) persistRecord(ctx context.Context, record *domain.SubmissionRecord) {
	if err := p.SubmissionRepo.Create(ctx, *record); err != nil {
		if errors.Is(err, submission.ErrAlreadyExists) {
			p.Logger.Warn("Submission record already stored", "post_id", record.PostID)
			return
		}
		p.Logger.Error("Failed to store submission record", "post_id", record.PostID, "error", err)
	}
}

func (p *PipelineImpl) fatal(err error) domain.RunReport {
	p.Logger.Error("Run failed", "error", err)
	p.Telegram.NotifyError(fmt.Sprintf("Run failed: %v", err))
	return domain.RunReport{Status: domain.RunFatal, Err: err}
}
