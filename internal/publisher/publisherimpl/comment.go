package publisherimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/formatter"
)

const maxCaptionRunes = 280

// buildComment renders the provenance comment: original-tweet link,
// enumerated full-size image links, optional caption/translation pairs, the
// source account, the running album and the configured signature.
func (p *PublisherImpl) buildComment(ctx context.Context, group domain.MediaGroup) string {
	var sb strings.Builder

	switch {
	case len(group.MediaURLs) > 1:
		links := make([]string, 0, len(group.MediaURLs))
		for idx, mediaURL := range group.MediaURLs {
			links = append(links, fmt.Sprintf("[Image %d](%s)", idx+1, mediaURL)) // 1-indexed for display
		}
		sb.WriteString(fmt.Sprintf("[Original Tweet](%s) and Full-Size Images!: %s\n\n", group.TweetURL, strings.Join(links, ", ")))
	case len(group.MediaURLs) == 1:
		sb.WriteString(fmt.Sprintf("[Original Tweet](%s) and [Full-Size Image!](%s)\n\n", group.TweetURL, group.MediaURLs[0]))
	default:
		sb.WriteString(fmt.Sprintf("[Original Tweet](%s)\n\n", group.TweetURL))
	}

	if len(group.TextSegments) > 0 {
		translations := p.translations(ctx, group.TextSegments)
		for idx, segment := range group.TextSegments {
			sb.WriteString("> " + formatter.EscapeMarkdown(formatter.Truncate(segment, maxCaptionRunes)) + "\n")
			if idx < len(translations) {
				sb.WriteString(">\n> *" + formatter.EscapeMarkdown(formatter.Truncate(translations[idx], maxCaptionRunes)) + "*\n")
			}
			sb.WriteString("\n")
		}
	}

	screenName := p.Config.Twitter.ScreenName
	sb.WriteString(fmt.Sprintf("Twitter: [@%s](https://twitter.com/%s)\n\n", screenName, screenName))

	if p.Config.Imgur.AlbumID != "" {
		sb.WriteString(fmt.Sprintf("[Album of all mirrored pics!](https://imgur.com/a/%s)\n\n", p.Config.Imgur.AlbumID))
	}

	if p.Config.Reddit.Signature != "" {
		sb.WriteString(p.Config.Reddit.Signature)
	}

	return strings.TrimRight(sb.String(), "\n")
}

// translations fetches machine translations for the caption segments.
// Best-effort: on failure the comment simply omits them.
func (p *PublisherImpl) translations(ctx context.Context, segments []string) []string {
	if !p.Config.Translate.Enabled {
		return nil
	}

	translated, err := p.Translate.Translate(ctx, segments, p.Config.Translate.Source, p.Config.Translate.Target)
	if err != nil {
		p.Logger.Warn("Failed to translate captions", "error", err)
		return nil
	}
	return translated
}
