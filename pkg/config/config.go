package config

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		SentryDSN string `env:"SENTRY_DSN"`
		TestMode  bool   `env:"TEST_MODE" env-default:"true"`
		RunOnce   bool   `env:"RUN_ONCE" env-default:"false"`
		CronSpec  string `env:"CRON_SPEC" env-default:"30 10 * * *"`
		MediaDir  string `env:"MEDIA_DIR" env-default:"/tmp/tweet-mirror"`
	}
	Twitter struct {
		ConsumerKey    string `env:"TWITTER_CONSUMER_KEY"`
		ConsumerSecret string `env:"TWITTER_CONSUMER_SECRET"`
		ScreenName     string `env:"TWITTER_SCREEN_NAME"`
		FetchCount     int    `env:"TWEET_FETCH_COUNT" env-default:"200"`
		CustomPostIDs  string `env:"CUSTOM_POST_IDS"` // comma separated, bypasses the timeline fetch
	}
	Window struct {
		LowerHourUTC int    `env:"WINDOW_LOWER_HOUR_UTC" env-default:"5"`
		Lower        string `env:"WINDOW_LOWER"` // RFC3339, overrides the daily lower bound
		Upper        string `env:"WINDOW_UPPER"` // RFC3339, empty means unbounded
	}
	Reddit struct {
		ClientID      string `env:"REDDIT_CLIENT_ID"`
		ClientSecret  string `env:"REDDIT_CLIENT_SECRET"`
		Username      string `env:"REDDIT_USERNAME"`
		UsernameTest  string `env:"REDDIT_USERNAME_TEST"`
		Password      string `env:"REDDIT_PASSWORD"`
		UserAgent     string `env:"REDDIT_USER_AGENT" env-default:"tweet-mirror-reddit-bot/1.0"`
		Subreddit     string `env:"REDDIT_SUBREDDIT"`
		SubredditTest string `env:"REDDIT_SUBREDDIT_TEST"`
		FlairID       string `env:"REDDIT_FLAIR_ID"`
		PostMode      string `env:"REDDIT_POST_MODE" env-default:"gallery"` // link, image, gallery or video
		TitleTemplate string `env:"POST_TITLE_TEMPLATE" env-default:"New Pic-of-the-Day! (%s) from @%s"`
		Signature     string `env:"COMMENT_SIGNATURE"`
	}
	Imgur struct {
		AccessToken string `env:"IMGUR_ACCESS_TOKEN"`
		AlbumID     string `env:"IMGUR_ALBUM_ID"`
		APIBase     string `env:"IMGUR_API_BASE" env-default:"https://api.imgur.com/3"`
	}
	Translate struct {
		Enabled  bool   `env:"TRANSLATE_ENABLED" env-default:"false"`
		Endpoint string `env:"TRANSLATE_ENDPOINT"`
		APIKey   string `env:"TRANSLATE_API_KEY"`
		Source   string `env:"TRANSLATE_SOURCE" env-default:"ja"`
		Target   string `env:"TRANSLATE_TARGET" env-default:"en"`
	}
	Retry struct {
		MaxAttempts     int  `env:"UPLOAD_RETRY_MAX_ATTEMPTS" env-default:"5"`
		IntervalSeconds int  `env:"UPLOAD_RETRY_INTERVAL_SECONDS" env-default:"90"`
		SleepEnabled    bool `env:"UPLOAD_RETRY_SLEEP" env-default:"true"`
	}
	Encoder struct {
		FFmpegPath      string `env:"FFMPEG_PATH"`
		PerImageSeconds int    `env:"VIDEO_SECONDS_PER_IMAGE" env-default:"5"`
		ClipSeconds     int    `env:"VIDEO_CLIP_SECONDS" env-default:"10"`
	}
	Telegram struct {
		Token   string `env:"TELEGRAM_TOKEN"`
		AdminID int64  `env:"TELEGRAM_ADMIN_ID"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
}

// Post modes recognized by REDDIT_POST_MODE.
const (
	PostModeLink    = "link"
	PostModeImage   = "image"
	PostModeGallery = "gallery"
	PostModeVideo   = "video"
)

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// SubredditName returns the production subreddit, or the sandbox one in test mode.
func (c *Config) SubredditName() string {
	if c.App.TestMode {
		return c.Reddit.SubredditTest
	}
	return c.Reddit.Subreddit
}

// RedditUsername returns the posting account, or the sandbox one in test mode.
func (c *Config) RedditUsername() string {
	if c.App.TestMode && c.Reddit.UsernameTest != "" {
		return c.Reddit.UsernameTest
	}
	return c.Reddit.Username
}

// FlairID returns the submission flair. Test submissions carry no flair.
func (c *Config) FlairID() string {
	if c.App.TestMode {
		return ""
	}
	return c.Reddit.FlairID
}

// CustomPostIDList splits CUSTOM_POST_IDS into individual ids.
func (c *Config) CustomPostIDList() []string {
	if c.Twitter.CustomPostIDs == "" {
		return nil
	}
	parts := strings.Split(c.Twitter.CustomPostIDs, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// PostgresEnabled reports whether the audit store is configured.
func (c *Config) PostgresEnabled() bool {
	return c.Postgres.Host != ""
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}
