package selector

import (
	"testing"
	"time"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC)

func window() domain.SelectionWindow {
	return domain.SelectionWindow{Lower: base.Add(-24 * time.Hour)}
}

func mediaPost(id string, at time.Time, text string, media ...string) domain.RawPost {
	return domain.RawPost{
		ID:        id,
		CreatedAt: at,
		Text:      text,
		HasMedia:  true,
		Media:     media,
		Author:    "artist",
	}
}

func replyPost(id, parentID string, at time.Time, text string) domain.RawPost {
	return domain.RawPost{
		ID:          id,
		CreatedAt:   at,
		Text:        text,
		InReplyToID: parentID,
		Author:      "artist",
	}
}

func TestSelectGroupSinglePost(t *testing.T) {
	s := New(logger.NewNop())

	posts := []domain.RawPost{
		mediaPost("100", base, "daily sketch https://t.co/abc", "https://pbs.twimg.com/media/one.jpg"),
	}

	group, err := s.SelectGroup(posts, window())
	require.NoError(t, err)
	require.NotNil(t, group)

	assert.Equal(t, "https://twitter.com/artist/status/100", group.TweetURL)
	assert.Equal(t, []string{"https://pbs.twimg.com/media/one.jpg?format=jpg&name=4096x4096"}, group.MediaURLs)
	assert.Equal(t, []string{"daily sketch"}, group.TextSegments)
	assert.Equal(t, base, group.Date)
}

func TestSelectGroupEmptyInput(t *testing.T) {
	s := New(logger.NewNop())

	group, err := s.SelectGroup(nil, window())
	require.NoError(t, err)
	assert.Nil(t, group)
}

func TestSelectGroupOutsideWindow(t *testing.T) {
	s := New(logger.NewNop())

	posts := []domain.RawPost{
		mediaPost("100", base.Add(-48*time.Hour), "old https://t.co/abc", "https://pbs.twimg.com/media/old.jpg"),
	}

	group, err := s.SelectGroup(posts, window())
	require.NoError(t, err)
	assert.Nil(t, group)
}

func TestSelectGroupUpperBoundExclusive(t *testing.T) {
	s := New(logger.NewNop())
	w := domain.SelectionWindow{Lower: base.Add(-time.Hour), Upper: base}

	posts := []domain.RawPost{
		mediaPost("100", base, "at bound https://t.co/abc", "https://pbs.twimg.com/media/one.jpg"),
	}

	group, err := s.SelectGroup(posts, w)
	require.NoError(t, err)
	assert.Nil(t, group)
}

func TestSelectGroupChainMergeKeepsChronologicalOrder(t *testing.T) {
	s := New(logger.NewNop())

	// Feed order is newest first; the merged group must read oldest first.
	posts := []domain.RawPost{
		replyPost("102", "101", base.Add(2*time.Minute), "and a closeup https://t.co/c"),
		mediaPost("101", base.Add(time.Minute), "part two https://t.co/b", "https://pbs.twimg.com/media/two.jpg"),
		mediaPost("100", base, "part one https://t.co/a", "https://pbs.twimg.com/media/one.jpg"),
	}
	posts[1].InReplyToID = "100"

	group, err := s.SelectGroup(posts, window())
	require.NoError(t, err)
	require.NotNil(t, group)

	assert.Equal(t, "https://twitter.com/artist/status/100", group.TweetURL)
	assert.Equal(t, []string{
		"https://pbs.twimg.com/media/one.jpg?format=jpg&name=4096x4096",
		"https://pbs.twimg.com/media/two.jpg?format=jpg&name=4096x4096",
	}, group.MediaURLs)
	assert.Equal(t, []string{"part one", "part two", "and a closeup"}, group.TextSegments)
	assert.Equal(t, base, group.Date)
}

func TestSelectGroupReplyToUnknownParentDiscarded(t *testing.T) {
	s := New(logger.NewNop())

	posts := []domain.RawPost{
		replyPost("102", "999", base.Add(time.Minute), "reply to someone else"),
		mediaPost("100", base, "art https://t.co/a", "https://pbs.twimg.com/media/one.jpg"),
	}

	group, err := s.SelectGroup(posts, window())
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, []string{"art"}, group.TextSegments)
	assert.Len(t, group.MediaURLs, 1)
}

func TestSelectGroupReplyChainTransitive(t *testing.T) {
	s := New(logger.NewNop())

	// A caption-only reply to a caption-only reply still joins the chain.
	posts := []domain.RawPost{
		replyPost("102", "101", base.Add(2*time.Minute), "third"),
		replyPost("101", "100", base.Add(time.Minute), "second"),
		mediaPost("100", base, "first https://t.co/a", "https://pbs.twimg.com/media/one.jpg"),
	}

	group, err := s.SelectGroup(posts, window())
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, []string{"first", "second", "third"}, group.TextSegments)
}

func TestSelectGroupParentOutsideWindowBreaksChain(t *testing.T) {
	s := New(logger.NewNop())

	posts := []domain.RawPost{
		replyPost("101", "100", base, "orphaned reply"),
		mediaPost("100", base.Add(-48*time.Hour), "old https://t.co/a", "https://pbs.twimg.com/media/old.jpg"),
	}

	group, err := s.SelectGroup(posts, window())
	require.NoError(t, err)
	assert.Nil(t, group)
}

func TestSelectGroupMalformedPost(t *testing.T) {
	s := New(logger.NewNop())

	posts := []domain.RawPost{
		{ID: "100", CreatedAt: base, Text: "broken", HasMedia: true, Author: "artist"},
	}

	group, err := s.SelectGroup(posts, window())
	assert.ErrorIs(t, err, ErrMalformedPost)
	assert.Nil(t, group)
}

func TestHighResURL(t *testing.T) {
	assert.Equal(t,
		"https://pbs.twimg.com/media/x.jpg?format=jpg&name=4096x4096",
		HighResURL("https://pbs.twimg.com/media/x.jpg"),
	)

	// Idempotent: applying twice must not stack queries.
	once := HighResURL("https://pbs.twimg.com/media/x.jpg")
	assert.Equal(t, once, HighResURL(once))
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "daily sketch", Caption("daily sketch https://t.co/abc"))
	assert.Equal(t, "", Caption("https://t.co/abc"))
	assert.Equal(t, "no trailing link", Caption("no trailing link"))
	assert.Equal(t, "", Caption(""))
}
