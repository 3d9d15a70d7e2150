package publisherimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/encoder"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/imgur"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/mediacache"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/publisher"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/reddit"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/translate"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/config"
	apperrors "github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/errors"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Imgur     imgur.Client
	Reddit    reddit.Client
	Translate translate.Client
	Encoder   encoder.Client
	Media     *mediacache.Cache
	Logger    logger.Logger
	Config    *config.Config
}

type PublisherImpl struct {
	Imgur     imgur.Client
	Reddit    reddit.Client
	Translate translate.Client
	Encoder   encoder.Client
	Media     *mediacache.Cache
	Logger    logger.Logger
	Config    *config.Config
}

func New(opts Opts) *PublisherImpl {
	return &PublisherImpl{
		Imgur:     opts.Imgur,
		Reddit:    opts.Reddit,
		Translate: opts.Translate,
		Encoder:   opts.Encoder,
		Media:     opts.Media,
		Logger:    opts.Logger.WithComponent("Publisher"),
		Config:    opts.Config,
	}
}

var _ publisher.Client = (*PublisherImpl)(nil)

func (p *PublisherImpl) PublishGroup(ctx context.Context, group domain.MediaGroup) (*domain.SubmissionRecord, error) {
	title := p.buildTitle(group)
	strat := p.strategyFor(group)

	p.Logger.Info("Publishing group",
		"tweet_url", group.TweetURL,
		"images", len(group.MediaURLs),
		"strategy", strat.name(),
		"title", title,
	)

	handle, uploads, err := strat.publish(ctx, group, title)
	if err != nil {
		return nil, fmt.Errorf("publish strategy %s failed: %w", strat.name(), err)
	}

	record := &domain.SubmissionRecord{
		PostID:     group.TweetURL,
		Submission: handle,
		CreatedAt:  time.Now(),
	}

	// Album update and comment are side actions on an already-live
	// submission; their failures never discard the submission handle.
	if !p.Config.App.TestMode && len(uploads) > 0 && p.Config.Imgur.AlbumID != "" {
		p.updateAlbum(ctx, uploads)
	}

	comment, err := p.Reddit.Reply(ctx, handle.Fullname, p.buildComment(ctx, group))
	if err != nil {
		p.Logger.Error("Failed to attach comment",
			"submission", handle.Fullname,
			"code", apperrors.GetCode(err),
			"error", err,
		)
		p.finalize(ctx, record)
		return record, fmt.Errorf("failed to attach comment: %w", err)
	}
	record.Comment = comment

	p.finalize(ctx, record)

	if len(group.MediaURLs) > 1 {
		p.Media.Cleanup()
	}

	return record, nil
}

func (p *PublisherImpl) buildTitle(group domain.MediaGroup) string {
	return fmt.Sprintf(
		p.Config.Reddit.TitleTemplate,
		group.Date.Format("01/02/2006"),
		p.Config.Twitter.ScreenName,
	)
}

// uploadAll mirrors every image to the image host, strictly in order because
// the order becomes display order in the album and comment. A post-retry
// upload failure is fatal to the whole group.
func (p *PublisherImpl) uploadAll(ctx context.Context, group domain.MediaGroup, title string) ([]domain.UploadResult, error) {
	uploads := make([]domain.UploadResult, 0, len(group.MediaURLs))
	for idx, mediaURL := range group.MediaURLs {
		imageTitle := title
		if len(group.MediaURLs) > 1 {
			imageTitle = fmt.Sprintf("%s (Image %d)", title, idx+1)
		}
		description := fmt.Sprintf("Original Tweet: %s", group.TweetURL)

		upload, err := p.Imgur.UploadImage(ctx, mediaURL, imageTitle, description)
		if err != nil {
			return nil, fmt.Errorf("upload of image %d failed: %w", idx+1, err)
		}
		uploads = append(uploads, upload)
	}
	return uploads, nil
}

// downloadAll fetches every image into the numbered local sequence and
// returns the file paths in order.
func (p *PublisherImpl) downloadAll(ctx context.Context, group domain.MediaGroup) ([]string, error) {
	paths := make([]string, 0, len(group.MediaURLs))
	for idx, mediaURL := range group.MediaURLs {
		path := p.Media.ImagePath(idx)
		if err := p.Media.Download(ctx, mediaURL, path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
