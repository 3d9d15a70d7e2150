package publisherimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
	mock_encoder "github.com/phamtrung98/tweet-mirror-reddit-bot/internal/encoder/mocks"
	mock_imgur "github.com/phamtrung98/tweet-mirror-reddit-bot/internal/imgur/mocks"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/mediacache"
	mock_reddit "github.com/phamtrung98/tweet-mirror-reddit-bot/internal/reddit/mocks"
	mock_translate "github.com/phamtrung98/tweet-mirror-reddit-bot/internal/translate/mocks"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/config"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var groupDate = time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC)

type mocks struct {
	imgur     *mock_imgur.MockClient
	reddit    *mock_reddit.MockClient
	translate *mock_translate.MockClient
	encoder   *mock_encoder.MockClient
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.TestMode = true
	cfg.Twitter.ScreenName = "artist"
	cfg.Reddit.Subreddit = "artpics"
	cfg.Reddit.SubredditTest = "testsub"
	cfg.Reddit.FlairID = "flair-1"
	cfg.Reddit.PostMode = config.PostModeGallery
	cfg.Reddit.TitleTemplate = "New Pic-of-the-Day! (%s) from @%s"
	cfg.Imgur.AlbumID = "alb123"
	return cfg
}

func newPublisher(t *testing.T, cfg *config.Config) (*PublisherImpl, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		imgur:     mock_imgur.NewMockClient(ctrl),
		reddit:    mock_reddit.NewMockClient(ctrl),
		translate: mock_translate.NewMockClient(ctrl),
		encoder:   mock_encoder.NewMockClient(ctrl),
	}
	p := &PublisherImpl{
		Imgur:     m.imgur,
		Reddit:    m.reddit,
		Translate: m.translate,
		Encoder:   m.encoder,
		Media:     mediacache.New(t.TempDir(), logger.NewNop()),
		Logger:    logger.NewNop(),
		Config:    cfg,
	}
	return p, m
}

func expectFinalize(m mocks, subFullname, commentFullname string) {
	m.reddit.EXPECT().Distinguish(gomock.Any(), subFullname, false).Return(nil)
	m.reddit.EXPECT().Approve(gomock.Any(), subFullname).Return(nil)
	m.reddit.EXPECT().Distinguish(gomock.Any(), commentFullname, true).Return(nil)
	m.reddit.EXPECT().Approve(gomock.Any(), commentFullname).Return(nil)
}

func imageServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const wantTitle = "New Pic-of-the-Day! (02/14/2025) from @artist"

func TestPublishGroupLinkStrategy(t *testing.T) {
	p, m := newPublisher(t, testConfig())

	group := domain.MediaGroup{
		TweetURL: "https://twitter.com/artist/status/100",
		Date:     groupDate,
	}

	m.reddit.EXPECT().
		SubmitLink(gomock.Any(), "testsub", wantTitle, group.TweetURL, "").
		Return(domain.SubmissionHandle{Fullname: "t3_sub", Permalink: "/r/testsub/1"}, nil)
	m.reddit.EXPECT().
		Reply(gomock.Any(), "t3_sub", gomock.Any()).
		Return(domain.CommentHandle{Fullname: "t1_com"}, nil)
	expectFinalize(m, "t3_sub", "t1_com")

	record, err := p.PublishGroup(context.Background(), group)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, group.TweetURL, record.PostID)
	assert.Equal(t, "t3_sub", record.Submission.Fullname)
	assert.Equal(t, "t1_com", record.Comment.Fullname)
}

func TestPublishGroupSingleImageLinksToMirror(t *testing.T) {
	p, m := newPublisher(t, testConfig())

	group := domain.MediaGroup{
		TweetURL:  "https://twitter.com/artist/status/100",
		MediaURLs: []string{"https://pbs.twimg.com/media/one.jpg?format=jpg&name=4096x4096"},
		Date:      groupDate,
	}

	m.imgur.EXPECT().
		UploadImage(gomock.Any(), group.MediaURLs[0], wantTitle, "Original Tweet: "+group.TweetURL).
		Return(domain.UploadResult{ID: "im1", URL: "https://i.imgur.com/im1.jpg"}, nil)
	m.reddit.EXPECT().
		SubmitLink(gomock.Any(), "testsub", wantTitle, "https://i.imgur.com/im1.jpg", "").
		Return(domain.SubmissionHandle{Fullname: "t3_sub"}, nil)
	m.reddit.EXPECT().
		Reply(gomock.Any(), "t3_sub", gomock.Any()).
		Return(domain.CommentHandle{Fullname: "t1_com"}, nil)
	expectFinalize(m, "t3_sub", "t1_com")

	_, err := p.PublishGroup(context.Background(), group)
	require.NoError(t, err)
}

func TestPublishGroupGallery(t *testing.T) {
	srv := imageServer(t)
	p, m := newPublisher(t, testConfig())

	group := domain.MediaGroup{
		TweetURL:  "https://twitter.com/artist/status/100",
		MediaURLs: []string{srv.URL + "/a.jpg", srv.URL + "/b.jpg"},
		Date:      groupDate,
	}

	gomock.InOrder(
		m.imgur.EXPECT().
			UploadImage(gomock.Any(), group.MediaURLs[0], wantTitle+" (Image 1)", gomock.Any()).
			Return(domain.UploadResult{ID: "im1", URL: "u1"}, nil),
		m.imgur.EXPECT().
			UploadImage(gomock.Any(), group.MediaURLs[1], wantTitle+" (Image 2)", gomock.Any()).
			Return(domain.UploadResult{ID: "im2", URL: "u2"}, nil),
	)
	m.reddit.EXPECT().
		SubmitGallery(gomock.Any(), "testsub", wantTitle, gomock.Len(2), "").
		Return(domain.SubmissionHandle{Fullname: "t3_sub"}, nil)
	m.reddit.EXPECT().
		Reply(gomock.Any(), "t3_sub", gomock.Any()).
		Return(domain.CommentHandle{Fullname: "t1_com"}, nil)
	expectFinalize(m, "t3_sub", "t1_com")

	_, err := p.PublishGroup(context.Background(), group)
	require.NoError(t, err)

	// Multi-image runs clean up the downloaded files afterwards.
	leftovers, globErr := filepath.Glob(filepath.Join(p.Media.Dir(), "*.jpg"))
	require.NoError(t, globErr)
	assert.Empty(t, leftovers)
}

func TestPublishGroupVideoMode(t *testing.T) {
	srv := imageServer(t)
	cfg := testConfig()
	cfg.Reddit.PostMode = config.PostModeVideo
	cfg.Encoder.PerImageSeconds = 5
	cfg.Encoder.ClipSeconds = 10
	p, m := newPublisher(t, cfg)

	group := domain.MediaGroup{
		TweetURL:  "https://twitter.com/artist/status/100",
		MediaURLs: []string{srv.URL + "/a.jpg", srv.URL + "/b.jpg"},
		Date:      groupDate,
	}

	m.imgur.EXPECT().UploadImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.UploadResult{ID: "im1", URL: "u1"}, nil).Times(2)
	m.encoder.EXPECT().
		Encode(gomock.Any(), p.Media.ImagePattern(), 5, 10, p.Media.VideoPath()).
		Return(p.Media.VideoPath(), nil)
	m.reddit.EXPECT().
		SubmitVideo(gomock.Any(), "testsub", wantTitle+" (2 images!)", p.Media.VideoPath(), p.Media.ImagePath(0), "").
		Return(domain.SubmissionHandle{Fullname: "t3_sub"}, nil)
	m.reddit.EXPECT().
		Reply(gomock.Any(), "t3_sub", gomock.Any()).
		Return(domain.CommentHandle{Fullname: "t1_com"}, nil)
	expectFinalize(m, "t3_sub", "t1_com")

	_, err := p.PublishGroup(context.Background(), group)
	require.NoError(t, err)
}

func TestPublishGroupUpdatesAlbumInProduction(t *testing.T) {
	cfg := testConfig()
	cfg.App.TestMode = false
	p, m := newPublisher(t, cfg)

	group := domain.MediaGroup{
		TweetURL:  "https://twitter.com/artist/status/100",
		MediaURLs: []string{"https://pbs.twimg.com/media/one.jpg?format=jpg&name=4096x4096"},
		Date:      groupDate,
	}

	m.imgur.EXPECT().
		UploadImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.UploadResult{ID: "new1", URL: "https://i.imgur.com/new1.jpg"}, nil)
	m.reddit.EXPECT().
		SubmitLink(gomock.Any(), "artpics", wantTitle, "https://i.imgur.com/new1.jpg", "flair-1").
		Return(domain.SubmissionHandle{Fullname: "t3_sub"}, nil)

	gomock.InOrder(
		m.imgur.EXPECT().ListAlbum(gomock.Any(), "alb123").Return([]string{"old1", "old2"}, nil),
		m.imgur.EXPECT().SetAlbumOrder(gomock.Any(), "alb123", []string{"new1", "old1", "old2"}).Return(nil),
		m.imgur.EXPECT().SetAlbumCover(gomock.Any(), "alb123", "new1").Return(nil),
	)

	m.reddit.EXPECT().
		Reply(gomock.Any(), "t3_sub", gomock.Any()).
		Return(domain.CommentHandle{Fullname: "t1_com"}, nil)
	expectFinalize(m, "t3_sub", "t1_com")

	_, err := p.PublishGroup(context.Background(), group)
	require.NoError(t, err)
}

func TestPublishGroupCommentFailureKeepsSubmission(t *testing.T) {
	p, m := newPublisher(t, testConfig())

	group := domain.MediaGroup{
		TweetURL: "https://twitter.com/artist/status/100",
		Date:     groupDate,
	}

	m.reddit.EXPECT().
		SubmitLink(gomock.Any(), "testsub", wantTitle, group.TweetURL, "").
		Return(domain.SubmissionHandle{Fullname: "t3_sub"}, nil)
	m.reddit.EXPECT().
		Reply(gomock.Any(), "t3_sub", gomock.Any()).
		Return(domain.CommentHandle{}, fmt.Errorf("comment rejected"))

	// The submission still gets its moderation pass.
	m.reddit.EXPECT().Distinguish(gomock.Any(), "t3_sub", false).Return(nil)
	m.reddit.EXPECT().Approve(gomock.Any(), "t3_sub").Return(nil)

	record, err := p.PublishGroup(context.Background(), group)
	require.Error(t, err)
	require.NotNil(t, record, "the live submission handle must not be lost")
	assert.Equal(t, "t3_sub", record.Submission.Fullname)
}

func TestBuildComment(t *testing.T) {
	cfg := testConfig()
	cfg.Reddit.Signature = "beep boop, I am a bot"
	p, _ := newPublisher(t, cfg)

	group := domain.MediaGroup{
		TweetURL:     "https://twitter.com/artist/status/100",
		MediaURLs:    []string{"u1", "u2"},
		TextSegments: []string{"part one"},
		Date:         groupDate,
	}

	comment := p.buildComment(context.Background(), group)

	assert.Contains(t, comment, "[Original Tweet](https://twitter.com/artist/status/100)")
	assert.Contains(t, comment, "[Image 1](u1)")
	assert.Contains(t, comment, "[Image 2](u2)")
	assert.Contains(t, comment, "> part one")
	assert.Contains(t, comment, "Twitter: [@artist](https://twitter.com/artist)")
	assert.Contains(t, comment, "https://imgur.com/a/alb123")
	assert.Contains(t, comment, "beep boop, I am a bot")
}

func TestBuildCommentWithTranslation(t *testing.T) {
	cfg := testConfig()
	cfg.Translate.Enabled = true
	cfg.Translate.Source = "ja"
	cfg.Translate.Target = "en"
	p, m := newPublisher(t, cfg)

	group := domain.MediaGroup{
		TweetURL:     "https://twitter.com/artist/status/100",
		MediaURLs:    []string{"u1"},
		TextSegments: []string{"今日の絵"},
		Date:         groupDate,
	}

	m.translate.EXPECT().
		Translate(gomock.Any(), []string{"今日の絵"}, "ja", "en").
		Return([]string{"today's drawing"}, nil)

	comment := p.buildComment(context.Background(), group)
	assert.Contains(t, comment, "> 今日の絵")
	assert.Contains(t, comment, "today's drawing")
}

func TestBuildCommentTranslationFailureOmitted(t *testing.T) {
	cfg := testConfig()
	cfg.Translate.Enabled = true
	p, m := newPublisher(t, cfg)

	group := domain.MediaGroup{
		TweetURL:     "https://twitter.com/artist/status/100",
		TextSegments: []string{"caption"},
		Date:         groupDate,
	}

	m.translate.EXPECT().
		Translate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("translation service down"))

	comment := p.buildComment(context.Background(), group)
	assert.Contains(t, comment, "> caption")
}
