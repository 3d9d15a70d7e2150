package redditimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/ratelimit"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/reddit"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/config"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"go.uber.org/fx"
)

const (
	authURL = "https://www.reddit.com/api/v1/access_token"
	apiBase = "https://oauth.reddit.com"
)

type Opts struct {
	fx.In

	Config  *config.Config
	Logger  logger.Logger
	Limiter ratelimit.Limiter
}

type RedditImpl struct {
	cfg     *config.Config
	http    *http.Client
	limiter ratelimit.Limiter
	logger  logger.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func New(opts Opts) *RedditImpl {
	return &RedditImpl{
		cfg:     opts.Config,
		http:    &http.Client{Timeout: 120 * time.Second},
		limiter: opts.Limiter,
		logger:  opts.Logger.WithComponent("RedditClient"),
	}
}

var _ reddit.Client = (*RedditImpl)(nil)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Error       string `json:"error"`
}

// token returns a cached OAuth token, refreshing it via the password grant
// when missing or near expiry.
func (c *RedditImpl) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", c.cfg.RedditUsername())
	form.Set("password", c.cfg.Reddit.Password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.cfg.Reddit.ClientID, c.cfg.Reddit.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.cfg.Reddit.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to authenticate with reddit: %w", err)
	}
	defer c.closeBody(resp.Body)

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tok.Error != "" || tok.AccessToken == "" {
		return "", fmt.Errorf("reddit auth rejected: %q", tok.Error)
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	c.logger.Info("Reddit auth complete", "username", c.cfg.RedditUsername())
	return c.accessToken, nil
}

// api issues an authenticated form POST (or GET when form is nil) against the
// oauth API and decodes the JSON response into out when non-nil.
func (c *RedditImpl) api(ctx context.Context, method, path string, form url.Values, out any) error {
	tok, err := c.token(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, apiBase+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("User-Agent", c.cfg.Reddit.UserAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if err := c.limiter.Wait(ctx, req.URL.Host); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer c.closeBody(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("reddit API %s returned %d: %s", path, resp.StatusCode, truncateBody(raw))
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", path, err)
		}
	}
	return nil
}

func (c *RedditImpl) closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		c.logger.Error("Error closing response body", "error", err)
	}
}

func truncateBody(raw []byte) string {
	const max = 256
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}
