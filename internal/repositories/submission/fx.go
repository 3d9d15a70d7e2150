package submission

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Module("submission_repository",
	fx.Provide(
		func(pg *pgxpool.Pool, log logger.Logger) Repository {
			if pg == nil {
				return Noop{}
			}
			return NewPgx(pg, log)
		},
	),
)
