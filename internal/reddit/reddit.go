package reddit

import (
	"context"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=reddit.go -destination=mocks/mock.go

type Client interface {
	SubmitLink(ctx context.Context, subreddit, title, linkURL, flairID string) (domain.SubmissionHandle, error)
	SubmitImage(ctx context.Context, subreddit, title, imagePath, flairID string) (domain.SubmissionHandle, error)
	// SubmitGallery submits local image files as one gallery post, preserving order.
	SubmitGallery(ctx context.Context, subreddit, title string, imagePaths []string, flairID string) (domain.SubmissionHandle, error)
	SubmitVideo(ctx context.Context, subreddit, title, videoPath, thumbnailPath, flairID string) (domain.SubmissionHandle, error)

	Reply(ctx context.Context, parentFullname, body string) (domain.CommentHandle, error)

	// Distinguish marks a thing as posted by a moderator; sticky pins comments.
	Distinguish(ctx context.Context, fullname string, sticky bool) error
	Approve(ctx context.Context, fullname string) error
}
