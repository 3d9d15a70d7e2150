package twitter

import (
	"context"
	"errors"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
)

var ErrProtectedAccount = errors.New("account is protected and cannot be accessed")

//go:generate go run go.uber.org/mock/mockgen -source=twitter.go -destination=mocks/mock.go

type Client interface {
	// FetchRecentPosts returns the account's most recent tweets, newest first.
	FetchRecentPosts(ctx context.Context, screenName string, count int, includeReplies, includeRetweets bool) ([]domain.RawPost, error)
	// FetchPosts looks up explicit tweet ids, preserving the given order.
	FetchPosts(ctx context.Context, ids []string) ([]domain.RawPost, error)
}
