package pipelineimpl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/mediacache"
	mock_publisher "github.com/phamtrung98/tweet-mirror-reddit-bot/internal/publisher/mocks"
	mock_submission "github.com/phamtrung98/tweet-mirror-reddit-bot/internal/repositories/submission/mocks"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/selector"
	mock_twitter "github.com/phamtrung98/tweet-mirror-reddit-bot/internal/twitter/mocks"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/config"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeNotifier struct {
	errors []string
	infos  []string
}

func (f *fakeNotifier) NotifyError(msg string) { f.errors = append(f.errors, msg) }
func (f *fakeNotifier) NotifyInfo(msg string)  { f.infos = append(f.infos, msg) }

type mocks struct {
	twitter   *mock_twitter.MockClient
	publisher *mock_publisher.MockClient
	repo      *mock_submission.MockRepository
	notifier  *fakeNotifier
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.TestMode = true
	cfg.Twitter.ScreenName = "artist"
	cfg.Twitter.FetchCount = 200
	cfg.Window.LowerHourUTC = 5
	return cfg
}

func newPipeline(t *testing.T, cfg *config.Config) (*PipelineImpl, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		twitter:   mock_twitter.NewMockClient(ctrl),
		publisher: mock_publisher.NewMockClient(ctrl),
		repo:      mock_submission.NewMockRepository(ctrl),
		notifier:  &fakeNotifier{},
	}
	p := &PipelineImpl{
		Twitter:        m.twitter,
		Selector:       selector.New(logger.NewNop()),
		Publisher:      m.publisher,
		SubmissionRepo: m.repo,
		Telegram:       m.notifier,
		Media:          mediacache.New(t.TempDir(), logger.NewNop()),
		Logger:         logger.NewNop(),
		Config:         cfg,
	}
	return p, m
}

func freshMediaPost(id string) domain.RawPost {
	return domain.RawPost{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		Text:      "art https://t.co/x",
		HasMedia:  true,
		Media:     []string{"https://pbs.twimg.com/media/one.jpg"},
		Author:    "artist",
	}
}

func TestRunNothingToPublish(t *testing.T) {
	p, m := newPipeline(t, testConfig())

	m.twitter.EXPECT().
		FetchRecentPosts(gomock.Any(), "artist", 200, true, false).
		Return(nil, nil)

	report := p.Run(context.Background())
	assert.Equal(t, domain.RunSuccess, report.Status)
	assert.Empty(t, report.Groups)
}

func TestRunHappyPath(t *testing.T) {
	p, m := newPipeline(t, testConfig())

	post := freshMediaPost("100")
	record := &domain.SubmissionRecord{
		PostID:     "https://twitter.com/artist/status/100",
		Submission: domain.SubmissionHandle{Fullname: "t3_sub", Permalink: "/r/testsub/1"},
	}

	m.twitter.EXPECT().
		FetchRecentPosts(gomock.Any(), "artist", 200, true, false).
		Return([]domain.RawPost{post}, nil)
	m.publisher.EXPECT().
		PublishGroup(gomock.Any(), gomock.Any()).
		Return(record, nil)
	m.repo.EXPECT().
		Create(gomock.Any(), *record).
		Return(nil)

	report := p.Run(context.Background())
	require.Equal(t, domain.RunSuccess, report.Status)
	require.Len(t, report.Groups, 1)
	assert.Equal(t, record, report.Groups[0].Record)
	assert.Len(t, m.notifier.infos, 1)
}

func TestRunPublishFailureWithHandleIsPartial(t *testing.T) {
	p, m := newPipeline(t, testConfig())

	record := &domain.SubmissionRecord{
		PostID:     "https://twitter.com/artist/status/100",
		Submission: domain.SubmissionHandle{Fullname: "t3_sub"},
	}

	m.twitter.EXPECT().
		FetchRecentPosts(gomock.Any(), "artist", 200, true, false).
		Return([]domain.RawPost{freshMediaPost("100")}, nil)
	m.publisher.EXPECT().
		PublishGroup(gomock.Any(), gomock.Any()).
		Return(record, fmt.Errorf("comment rejected"))
	m.repo.EXPECT().
		Create(gomock.Any(), *record).
		Return(nil)

	report := p.Run(context.Background())
	assert.Equal(t, domain.RunPartial, report.Status)
	require.Len(t, report.Groups, 1)
	assert.Error(t, report.Groups[0].Err)
	assert.NotEmpty(t, m.notifier.errors)
}

func TestRunPublishFailureWithoutHandleIsFatal(t *testing.T) {
	p, m := newPipeline(t, testConfig())

	m.twitter.EXPECT().
		FetchRecentPosts(gomock.Any(), "artist", 200, true, false).
		Return([]domain.RawPost{freshMediaPost("100")}, nil)
	m.publisher.EXPECT().
		PublishGroup(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("upload exhausted"))

	report := p.Run(context.Background())
	assert.Equal(t, domain.RunFatal, report.Status)
	assert.Error(t, report.Err)
	assert.NotEmpty(t, m.notifier.errors)
}

func TestRunFetchFailureIsFatal(t *testing.T) {
	p, m := newPipeline(t, testConfig())

	m.twitter.EXPECT().
		FetchRecentPosts(gomock.Any(), "artist", 200, true, false).
		Return(nil, fmt.Errorf("timeline unavailable"))

	report := p.Run(context.Background())
	assert.Equal(t, domain.RunFatal, report.Status)
	assert.Error(t, report.Err)
	assert.NotEmpty(t, m.notifier.errors)
}

func TestRunCustomPostIDsBypassTimeline(t *testing.T) {
	cfg := testConfig()
	cfg.Twitter.CustomPostIDs = "100, 101"
	p, m := newPipeline(t, cfg)

	record := &domain.SubmissionRecord{PostID: "https://twitter.com/artist/status/100"}

	m.twitter.EXPECT().
		FetchPosts(gomock.Any(), []string{"100", "101"}).
		Return([]domain.RawPost{freshMediaPost("100")}, nil)
	m.publisher.EXPECT().
		PublishGroup(gomock.Any(), gomock.Any()).
		Return(record, nil)
	m.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)

	report := p.Run(context.Background())
	assert.Equal(t, domain.RunSuccess, report.Status)
}

func TestRunExplicitWindowExcludesPosts(t *testing.T) {
	cfg := testConfig()
	cfg.Window.Lower = "2025-02-13T05:00:00Z"
	cfg.Window.Upper = "2025-02-14T05:00:00Z"
	p, m := newPipeline(t, cfg)

	// A fresh post falls after the explicit upper bound.
	m.twitter.EXPECT().
		FetchRecentPosts(gomock.Any(), "artist", 200, true, false).
		Return([]domain.RawPost{freshMediaPost("100")}, nil)

	report := p.Run(context.Background())
	assert.Equal(t, domain.RunSuccess, report.Status)
	assert.Empty(t, report.Groups)
}

func TestRunBadWindowConfigIsFatal(t *testing.T) {
	cfg := testConfig()
	cfg.Window.Lower = "not-a-timestamp"
	p, m := newPipeline(t, cfg)

	m.twitter.EXPECT().
		FetchRecentPosts(gomock.Any(), "artist", 200, true, false).
		Return([]domain.RawPost{freshMediaPost("100")}, nil)

	report := p.Run(context.Background())
	assert.Equal(t, domain.RunFatal, report.Status)
	assert.Error(t, report.Err)
}
