package app

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/encoder"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/encoder/encoderimpl"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/imgur"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/imgur/imgurimpl"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/mediacache"
	_ "github.com/phamtrung98/tweet-mirror-reddit-bot/internal/migrations"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/pipeline"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/pipeline/pipelineimpl"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/publisher"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/publisher/publisherimpl"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/ratelimit"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/reddit"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/reddit/redditimpl"
	repositories "github.com/phamtrung98/tweet-mirror-reddit-bot/internal/repositories/fx"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/selector"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/telegram"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/telegram/telegramimpl"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/translate"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/translate/translateimpl"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/twitter"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/twitter/twitterimpl"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/config"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/pgx"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		func() ratelimit.Limiter {
			return ratelimit.NewInMemoryLimiter(1, time.Second, 3)
		},
		func(cfg *config.Config, log logger.Logger) *mediacache.Cache {
			return mediacache.New(cfg.App.MediaDir, log)
		},
		selector.New,
	),
	fx.Provide(
		fx.Annotate(
			twitterimpl.New,
			fx.As(new(twitter.Client)),
		),
		fx.Annotate(
			imgurimpl.New,
			fx.As(new(imgur.Client)),
		),
		fx.Annotate(
			redditimpl.New,
			fx.As(new(reddit.Client)),
		),
		fx.Annotate(
			translateimpl.New,
			fx.As(new(translate.Client)),
		),
		fx.Annotate(
			encoderimpl.New,
			fx.As(new(encoder.Client)),
		),
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		fx.Annotate(
			publisherimpl.New,
			fx.As(new(publisher.Client)),
		),
		fx.Annotate(
			pipelineimpl.New,
			fx.As(new(pipeline.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

// migrate applies pending schema migrations. Skipped entirely when the audit
// store is not configured.
func migrate(cfg *config.Config, log logger.Logger) error {
	if !cfg.PostgresEnabled() {
		log.Info("Postgres not configured, skipping migrations")
		return nil
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	return goose.Up(db, filepath.Join(wd, "internal", "migrations"))
}

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, log logger.Logger, cfg *config.Config, pClient pipeline.Client) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if cfg.App.RunOnce {
				go func() {
					report := pClient.Run(ctx)
					code := 0
					if report.Status != domain.RunSuccess {
						code = 1
					}
					if err := shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
						log.Error("Failed to shut down", "error", err)
					}
				}()
				return nil
			}
			return pClient.Schedule(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
