package submission

import (
	"context"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
)

// Noop stands in when Postgres is not configured; the bot runs fine without
// the audit trail.
type Noop struct{}

var _ Repository = (*Noop)(nil)

func (Noop) Create(ctx context.Context, record domain.SubmissionRecord) error { return nil }

func (Noop) GetByPostID(ctx context.Context, postID string) (*domain.SubmissionRecord, error) {
	return nil, ErrNotFound
}

func (Noop) GetLatest(ctx context.Context, count int) ([]*domain.SubmissionRecord, error) {
	return nil, nil
}

func (Noop) Exists(ctx context.Context, postID string) (bool, error) { return false, nil }
