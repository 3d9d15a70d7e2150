package publisherimpl

import (
	"context"
	"fmt"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/config"
)

// strategy is the closed set of ways a group reaches the forum. Exactly one
// strategy executes per group, chosen by image count; the configured post
// mode only picks the variant inside a count bucket.
type strategy interface {
	name() string
	publish(ctx context.Context, group domain.MediaGroup, title string) (domain.SubmissionHandle, []domain.UploadResult, error)
}

func (p *PublisherImpl) strategyFor(group domain.MediaGroup) strategy {
	switch {
	case len(group.MediaURLs) == 0:
		return linkStrategy{p}
	case len(group.MediaURLs) == 1:
		return singleImageStrategy{p}
	case p.Config.Reddit.PostMode == config.PostModeVideo:
		return videoStrategy{p}
	default:
		return galleryStrategy{p}
	}
}

// linkStrategy posts a plain link to the originating tweet. Only reachable
// for a text-only chain with no media anywhere.
type linkStrategy struct{ *PublisherImpl }

func (s linkStrategy) name() string { return "link" }

func (s linkStrategy) publish(ctx context.Context, group domain.MediaGroup, title string) (domain.SubmissionHandle, []domain.UploadResult, error) {
	handle, err := s.Reddit.SubmitLink(ctx, s.Config.SubredditName(), title, group.TweetURL, s.Config.FlairID())
	return handle, nil, err
}

// singleImageStrategy mirrors the one image to the host and links to it, or
// submits it natively when the post mode asks for an image post.
type singleImageStrategy struct{ *PublisherImpl }

func (s singleImageStrategy) name() string { return "single-image" }

func (s singleImageStrategy) publish(ctx context.Context, group domain.MediaGroup, title string) (domain.SubmissionHandle, []domain.UploadResult, error) {
	uploads, err := s.uploadAll(ctx, group, title)
	if err != nil {
		return domain.SubmissionHandle{}, nil, err
	}

	if s.Config.Reddit.PostMode == config.PostModeImage {
		paths, err := s.downloadAll(ctx, group)
		if err != nil {
			return domain.SubmissionHandle{}, nil, err
		}
		handle, err := s.Reddit.SubmitImage(ctx, s.Config.SubredditName(), title, paths[0], s.Config.FlairID())
		return handle, uploads, err
	}

	handle, err := s.Reddit.SubmitLink(ctx, s.Config.SubredditName(), title, uploads[0].URL, s.Config.FlairID())
	return handle, uploads, err
}

// galleryStrategy submits the images as one ordered gallery post.
type galleryStrategy struct{ *PublisherImpl }

func (s galleryStrategy) name() string { return "gallery" }

func (s galleryStrategy) publish(ctx context.Context, group domain.MediaGroup, title string) (domain.SubmissionHandle, []domain.UploadResult, error) {
	uploads, err := s.uploadAll(ctx, group, title)
	if err != nil {
		return domain.SubmissionHandle{}, nil, err
	}

	paths, err := s.downloadAll(ctx, group)
	if err != nil {
		return domain.SubmissionHandle{}, nil, err
	}

	handle, err := s.Reddit.SubmitGallery(ctx, s.Config.SubredditName(), title, paths, s.Config.FlairID())
	return handle, uploads, err
}

// videoStrategy joins the images into one fixed-duration clip, one image per
// time-slice, with the first image reused as the thumbnail.
type videoStrategy struct{ *PublisherImpl }

func (s videoStrategy) name() string { return "video" }

func (s videoStrategy) publish(ctx context.Context, group domain.MediaGroup, title string) (domain.SubmissionHandle, []domain.UploadResult, error) {
	uploads, err := s.uploadAll(ctx, group, title)
	if err != nil {
		return domain.SubmissionHandle{}, nil, err
	}

	paths, err := s.downloadAll(ctx, group)
	if err != nil {
		return domain.SubmissionHandle{}, nil, err
	}

	videoPath, err := s.Encoder.Encode(
		ctx,
		s.Media.ImagePattern(),
		s.Config.Encoder.PerImageSeconds,
		s.Config.Encoder.ClipSeconds,
		s.Media.VideoPath(),
	)
	if err != nil {
		return domain.SubmissionHandle{}, nil, err
	}

	title = fmt.Sprintf("%s (%d images!)", title, len(group.MediaURLs))
	handle, err := s.Reddit.SubmitVideo(ctx, s.Config.SubredditName(), title, videoPath, paths[0], s.Config.FlairID())
	return handle, uploads, err
}
