package publisher

import (
	"context"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=mocks/mock.go

type Client interface {
	// PublishGroup mirrors the group's media, submits it to the forum,
	// attaches the provenance comment and applies moderation actions. On
	// error the returned record may still carry handles created before the
	// failure; callers must keep them.
	PublishGroup(ctx context.Context, group domain.MediaGroup) (*domain.SubmissionRecord, error)
}
