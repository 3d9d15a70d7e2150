package imgurimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/imgur"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/ratelimit"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/config"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config  *config.Config
	Logger  logger.Logger
	Limiter ratelimit.Limiter
}

type ImgurImpl struct {
	base    string
	token   string
	http    *http.Client
	limiter ratelimit.Limiter
	logger  logger.Logger
	retry   retry.FixedConfig
}

func New(opts Opts) *ImgurImpl {
	return &ImgurImpl{
		base:    strings.TrimRight(opts.Config.Imgur.APIBase, "/"),
		token:   opts.Config.Imgur.AccessToken,
		http:    &http.Client{Timeout: 60 * time.Second},
		limiter: opts.Limiter,
		logger:  opts.Logger.WithComponent("ImgurClient"),
		retry: retry.FixedConfig{
			MaxAttempts: opts.Config.Retry.MaxAttempts,
			Interval:    time.Duration(opts.Config.Retry.IntervalSeconds) * time.Second,
			Sleep:       opts.Config.Retry.SleepEnabled,
		},
	}
}

var _ imgur.Client = (*ImgurImpl)(nil)

type imageData struct {
	ID   string `json:"id"`
	Link string `json:"link"`
}

type uploadResponse struct {
	Data    imageData `json:"data"`
	Success bool      `json:"success"`
	Status  int       `json:"status"`
}

type albumImagesResponse struct {
	Data    []imageData `json:"data"`
	Success bool        `json:"success"`
}

type basicResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// UploadImage uploads by URL, retrying failed responses a bounded number of
// times. On exhaustion the last response is surfaced but unusable.
func (c *ImgurImpl) UploadImage(ctx context.Context, imageURL, title, description string) (domain.UploadResult, error) {
	form := url.Values{}
	form.Set("image", imageURL)
	form.Set("title", title)
	// Dots in album descriptions trip an imgur rendering bug; entity-escape them.
	form.Set("description", strings.ReplaceAll(description, ".", "&#46;"))
	form.Set("type", "URL")

	resp, err := retry.DoValue(ctx, c.logger, "ImgurUploadImage", func() (uploadResponse, error) {
		var out uploadResponse
		if err := c.postForm(ctx, c.base+"/image", form, &out); err != nil {
			return out, err
		}
		if !out.Success {
			return out, fmt.Errorf("%w: status %d", imgur.ErrUploadFailed, out.Status)
		}
		return out, nil
	}, c.retry)
	if err != nil {
		return domain.UploadResult{}, err
	}

	c.logger.Info("Uploaded image", "id", resp.Data.ID, "link", resp.Data.Link)
	return domain.UploadResult{ID: resp.Data.ID, URL: resp.Data.Link}, nil
}

func (c *ImgurImpl) ListAlbum(ctx context.Context, albumID string) ([]string, error) {
	var out albumImagesResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/album/%s/images", c.base, albumID), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list album %s: %w", albumID, err)
	}

	ids := make([]string, 0, len(out.Data))
	for _, img := range out.Data {
		ids = append(ids, img.ID)
	}
	return ids, nil
}

func (c *ImgurImpl) SetAlbumOrder(ctx context.Context, albumID string, ids []string) error {
	form := url.Values{}
	for _, id := range ids {
		form.Add("ids[]", id)
	}

	var out basicResponse
	if err := c.postForm(ctx, fmt.Sprintf("%s/album/%s", c.base, albumID), form, &out); err != nil {
		return fmt.Errorf("failed to set album order: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("failed to set album order: status %d", out.Status)
	}
	return nil
}

func (c *ImgurImpl) SetAlbumCover(ctx context.Context, albumID, coverID string) error {
	form := url.Values{}
	form.Set("cover", coverID)

	var out basicResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/album/%s", c.base, albumID), strings.NewReader(form.Encode()), &out); err != nil {
		return fmt.Errorf("failed to set album cover: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("failed to set album cover: status %d", out.Status)
	}
	return nil
}

func (c *ImgurImpl) postForm(ctx context.Context, endpoint string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()), out)
}

func (c *ImgurImpl) do(ctx context.Context, method, endpoint string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if err := c.limiter.Wait(ctx, req.URL.Host); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error("Error closing response body", "error", cerr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unexpected response (%d): %w", resp.StatusCode, err)
	}
	return nil
}
