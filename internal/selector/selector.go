package selector

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
)

// ErrMalformedPost marks a post the feed flagged as media-bearing that
// carries no media URLs. That is an upstream contract violation, not a
// filtering case, so the whole run fails.
var ErrMalformedPost = errors.New("malformed post record")

const highResQuery = "?format=jpg&name=4096x4096"

// Selector decides which of the fetched posts belong to "today's" item and
// consolidates a reply chain into one ordered media group.
type Selector struct {
	logger logger.Logger
}

func New(log logger.Logger) *Selector {
	return &Selector{logger: log.WithComponent("Selector")}
}

// SelectGroup filters posts (newest first, as delivered by the feed) against
// the window and merges the qualifying chain into at most one MediaGroup.
//
// A post inside the window qualifies when it has media, or when it has none
// but replies to a post already accepted in this run — an author frequently
// splits one logical "post of the day" across a reply chain, and the chain
// should become one submission instead of duplicates. Posts outside the
// window never contribute, directly or via chain merge.
func (s *Selector) SelectGroup(posts []domain.RawPost, window domain.SelectionWindow) (*domain.MediaGroup, error) {
	// Process in posting order so a reply is seen after its parent.
	chrono := make([]domain.RawPost, len(posts))
	copy(chrono, posts)
	slices.Reverse(chrono)

	var accepted []domain.MediaGroup
	acceptedIDs := make(map[string]bool)

	for _, post := range chrono {
		if !window.Contains(post.CreatedAt) {
			continue
		}

		switch {
		case post.HasMedia:
			if len(post.Media) == 0 {
				return nil, fmt.Errorf("%w: post %s is flagged as media-bearing but has no media URLs", ErrMalformedPost, post.ID)
			}
			group := domain.MediaGroup{
				TweetURL: TweetURL(post.Author, post.ID),
				Date:     post.CreatedAt,
			}
			for _, m := range post.Media {
				group.MediaURLs = append(group.MediaURLs, HighResURL(m))
			}
			if caption := Caption(post.Text); caption != "" {
				group.TextSegments = append(group.TextSegments, caption)
			}
			accepted = append(accepted, group)
			acceptedIDs[post.ID] = true

		case post.InReplyToID != "" && acceptedIDs[post.InReplyToID]:
			// Caption-only continuation of an accepted chain.
			group := domain.MediaGroup{
				TweetURL: TweetURL(post.Author, post.ID),
				Date:     post.CreatedAt,
			}
			if caption := Caption(post.Text); caption != "" {
				group.TextSegments = append(group.TextSegments, caption)
			}
			accepted = append(accepted, group)
			acceptedIDs[post.ID] = true

		default:
			s.logger.Debug("Discarding post", "id", post.ID, "has_media", post.HasMedia)
		}
	}

	if len(accepted) == 0 {
		s.logger.Info("No qualifying posts in window",
			"scanned", len(posts),
			"window_lower", window.Lower,
		)
		return nil, nil
	}

	// Merge the chain onto its first (oldest) post so media and captions stay
	// in chronological order.
	merged := accepted[0]
	for _, g := range accepted[1:] {
		merged.MediaURLs = append(merged.MediaURLs, g.MediaURLs...)
		merged.TextSegments = append(merged.TextSegments, g.TextSegments...)
	}

	s.logger.Info("Selected media group",
		"tweet_url", merged.TweetURL,
		"images", len(merged.MediaURLs),
		"captions", len(merged.TextSegments),
		"chain_length", len(accepted),
	)
	return &merged, nil
}

// HighResURL maps a media URL to its highest-resolution variant. The rewrite
// is a pure string transform and idempotent: a URL already carrying a query
// is returned unchanged.
func HighResURL(u string) string {
	if strings.Contains(u, "?") {
		return u
	}
	return u + highResQuery
}

// Caption strips the trailing auto-appended short-link token from tweet
// text. Tweet text has the shape "{caption} {url}"; with no caption the
// whole text is the url, so the absence of a space means no caption.
func Caption(text string) string {
	text = strings.TrimSpace(text)
	idx := strings.LastIndexByte(text, ' ')
	if idx < 0 {
		return ""
	}
	last := text[idx+1:]
	if strings.HasPrefix(last, "https://") || strings.HasPrefix(last, "http://") {
		return strings.TrimSpace(text[:idx])
	}
	return text
}

// TweetURL builds the canonical link to a tweet.
func TweetURL(author, id string) string {
	return fmt.Sprintf("https://twitter.com/%s/status/%s", author, id)
}
