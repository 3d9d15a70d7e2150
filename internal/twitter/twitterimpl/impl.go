package twitterimpl

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	gotwitter "github.com/dghubble/go-twitter/twitter"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/twitter"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/config"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"go.uber.org/fx"
	"golang.org/x/oauth2/clientcredentials"
)

const tokenURL = "https://api.twitter.com/oauth2/token"

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TwitterImpl struct {
	client *gotwitter.Client
	logger logger.Logger
}

func New(opts Opts) *TwitterImpl {
	// Application-only auth: the bot only reads public timelines.
	oauth := &clientcredentials.Config{
		ClientID:     opts.Config.Twitter.ConsumerKey,
		ClientSecret: opts.Config.Twitter.ConsumerSecret,
		TokenURL:     tokenURL,
	}
	httpClient := oauth.Client(context.Background())

	return &TwitterImpl{
		client: gotwitter.NewClient(httpClient),
		logger: opts.Logger.WithComponent("TwitterClient"),
	}
}

var _ twitter.Client = (*TwitterImpl)(nil)

func (t *TwitterImpl) FetchRecentPosts(ctx context.Context, screenName string, count int, includeReplies, includeRetweets bool) ([]domain.RawPost, error) {
	t.logger.Info("Fetching user timeline", "screen_name", screenName, "count", count)

	tweets, _, err := t.client.Timelines.UserTimeline(&gotwitter.UserTimelineParams{
		ScreenName:      screenName,
		Count:           count,
		ExcludeReplies:  gotwitter.Bool(!includeReplies),
		IncludeRetweets: gotwitter.Bool(includeRetweets),
		TweetMode:       "extended",
	})
	if err != nil {
		if isNotAuthorized(err) {
			return nil, fmt.Errorf("@%s: %w", screenName, twitter.ErrProtectedAccount)
		}
		return nil, fmt.Errorf("failed to fetch timeline for @%s: %w", screenName, err)
	}

	posts := make([]domain.RawPost, 0, len(tweets))
	for i := range tweets {
		posts = append(posts, mapTweet(&tweets[i], screenName))
	}

	t.logger.Info("Fetched tweets", "screen_name", screenName, "count", len(posts))
	return posts, nil
}

func (t *TwitterImpl) FetchPosts(ctx context.Context, ids []string) ([]domain.RawPost, error) {
	t.logger.Info("Looking up tweets by id", "count", len(ids))

	numeric := make([]int64, 0, len(ids))
	for _, id := range ids {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tweet id %q: %w", id, err)
		}
		numeric = append(numeric, n)
	}

	tweets, _, err := t.client.Statuses.Lookup(numeric, &gotwitter.StatusLookupParams{
		IncludeEntities: gotwitter.Bool(true),
		TweetMode:       "extended",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up tweets: %w", err)
	}

	posts := make([]domain.RawPost, 0, len(tweets))
	for i := range tweets {
		screenName := ""
		if tweets[i].User != nil {
			screenName = tweets[i].User.ScreenName
		}
		posts = append(posts, mapTweet(&tweets[i], screenName))
	}
	return posts, nil
}

// isNotAuthorized detects the API error a protected timeline produces.
func isNotAuthorized(err error) bool {
	var apiErr gotwitter.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, e := range apiErr.Errors {
		// 179: not authorized to see this status, 401-equivalent for timelines.
		if e.Code == 179 {
			return true
		}
	}
	return false
}

// mapTweet converts an API tweet into the immutable RawPost the pipeline
// consumes. Media URLs come from the extended entities so multi-image tweets
// keep every attachment; the entities flag alone marks the post as
// media-bearing, which lets the selector detect a malformed record.
func mapTweet(tw *gotwitter.Tweet, screenName string) domain.RawPost {
	text := tw.FullText
	if text == "" {
		text = tw.Text
	}

	post := domain.RawPost{
		ID:          tw.IDStr,
		Text:        text,
		InReplyToID: tw.InReplyToStatusIDStr,
		Author:      screenName,
	}
	if tw.User != nil && tw.User.ScreenName != "" {
		post.Author = tw.User.ScreenName
	}

	if created, err := tw.CreatedAtTime(); err == nil {
		post.CreatedAt = created
	}

	if tw.Entities != nil && len(tw.Entities.Media) > 0 {
		post.HasMedia = true
	}
	if tw.ExtendedEntities != nil {
		for _, m := range tw.ExtendedEntities.Media {
			post.Media = append(post.Media, m.MediaURLHttps)
		}
	}
	return post
}
