package submission

import (
	"context"
	"errors"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
)

var (
	ErrAlreadyExists = errors.New("submission record already exists")
	ErrNotFound      = errors.New("submission record not found")
)

//go:generate go run go.uber.org/mock/mockgen -source=submission.go -destination=mocks/mock.go
type Repository interface {
	// Create persists the audit record of one mirrored group.
	Create(ctx context.Context, record domain.SubmissionRecord) error

	// GetByPostID returns the record for a source post, if one was mirrored.
	GetByPostID(ctx context.Context, postID string) (*domain.SubmissionRecord, error)

	// GetLatest returns the most recent records, newest first.
	GetLatest(ctx context.Context, count int) ([]*domain.SubmissionRecord, error)

	// Exists reports whether the source post was already mirrored.
	Exists(ctx context.Context, postID string) (bool, error)
}
