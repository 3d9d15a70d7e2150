package fx

import (
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/repositories/submission"
	"go.uber.org/fx"
)

var Module = fx.Options(
	submission.Module,
)
