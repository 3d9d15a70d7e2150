package pipeline

import (
	"context"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=pipeline.go -destination=mocks/mock.go

type Client interface {
	// Run executes one fetch-select-publish cycle and reports the outcome.
	Run(ctx context.Context) domain.RunReport

	// Schedule registers the recurring daily run and returns immediately.
	Schedule(ctx context.Context) error
}
