package imgur

import (
	"context"
	"errors"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
)

// ErrUploadFailed marks an upload whose API response reported no success.
var ErrUploadFailed = errors.New("imgur upload failed")

//go:generate go run go.uber.org/mock/mockgen -source=imgur.go -destination=mocks/mock.go

type Client interface {
	// UploadImage mirrors a remote image and returns its host id and public URL.
	UploadImage(ctx context.Context, imageURL, title, description string) (domain.UploadResult, error)
	// ListAlbum returns the album's image ids in display order.
	ListAlbum(ctx context.Context, albumID string) ([]string, error)
	// SetAlbumOrder replaces the album's image ids with the given order.
	SetAlbumOrder(ctx context.Context, albumID string, ids []string) error
	// SetAlbumCover sets the album cover image.
	SetAlbumCover(ctx context.Context, albumID, coverID string) error
}
