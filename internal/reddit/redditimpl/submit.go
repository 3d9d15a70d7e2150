package redditimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/domain"
	apperrors "github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/errors"
)

// submitResponse is the api_type=json envelope shared by submit and comment.
type submitResponse struct {
	JSON struct {
		Errors [][]any `json:"errors"`
		Data   struct {
			URL  string `json:"url"`
			Name string `json:"name"`
			ID   string `json:"id"`
			Things []struct {
				Data struct {
					Name      string `json:"name"`
					Permalink string `json:"permalink"`
				} `json:"data"`
			} `json:"things"`
		} `json:"data"`
	} `json:"json"`
}

func (r *submitResponse) err() error {
	if len(r.JSON.Errors) == 0 {
		return nil
	}
	// Errors arrive as [code, message, field] triples; keep the first code
	// machine-readable for callers.
	code := ""
	if len(r.JSON.Errors[0]) > 0 {
		code, _ = r.JSON.Errors[0][0].(string)
	}
	return &apperrors.Error{
		Code:    code,
		Message: fmt.Sprintf("reddit rejected the request: %v", r.JSON.Errors),
	}
}

func (c *RedditImpl) SubmitLink(ctx context.Context, subreddit, title, linkURL, flairID string) (domain.SubmissionHandle, error) {
	form := c.submitForm(subreddit, title, flairID)
	form.Set("kind", "link")
	form.Set("url", linkURL)

	return c.submit(ctx, "/api/submit", form, "link")
}

func (c *RedditImpl) SubmitImage(ctx context.Context, subreddit, title, imagePath, flairID string) (domain.SubmissionHandle, error) {
	lease, err := c.uploadMedia(ctx, imagePath, "image/jpeg")
	if err != nil {
		return domain.SubmissionHandle{}, err
	}

	form := c.submitForm(subreddit, title, flairID)
	form.Set("kind", "image")
	form.Set("url", lease.assetURL)

	return c.submit(ctx, "/api/submit", form, "image")
}

func (c *RedditImpl) SubmitGallery(ctx context.Context, subreddit, title string, imagePaths []string, flairID string) (domain.SubmissionHandle, error) {
	type galleryItem struct {
		MediaID     string `json:"media_id"`
		Caption     string `json:"caption"`
		OutboundURL string `json:"outbound_url"`
	}

	items := make([]galleryItem, 0, len(imagePaths))
	for _, path := range imagePaths {
		lease, err := c.uploadMedia(ctx, path, "image/jpeg")
		if err != nil {
			return domain.SubmissionHandle{}, err
		}
		items = append(items, galleryItem{MediaID: lease.assetID})
	}

	payload := map[string]any{
		"api_type":    "json",
		"sr":          subreddit,
		"title":       title,
		"items":       items,
		"sendreplies": false,
	}
	if flairID != "" {
		payload["flair_id"] = flairID
	}

	var out submitResponse
	if err := c.apiJSON(ctx, "/api/submit_gallery_post.json", payload, &out); err != nil {
		return domain.SubmissionHandle{}, fmt.Errorf("failed to submit gallery: %w", err)
	}
	if err := out.err(); err != nil {
		return domain.SubmissionHandle{}, err
	}

	handle := domain.SubmissionHandle{Fullname: out.JSON.Data.Name, Permalink: out.JSON.Data.URL}
	c.logger.Info("Reddit submission created", "kind", "gallery", "fullname", handle.Fullname, "url", handle.Permalink)
	return handle, nil
}

func (c *RedditImpl) SubmitVideo(ctx context.Context, subreddit, title, videoPath, thumbnailPath, flairID string) (domain.SubmissionHandle, error) {
	videoLease, err := c.uploadMedia(ctx, videoPath, "video/mp4")
	if err != nil {
		return domain.SubmissionHandle{}, err
	}
	thumbLease, err := c.uploadMedia(ctx, thumbnailPath, "image/jpeg")
	if err != nil {
		return domain.SubmissionHandle{}, err
	}

	form := c.submitForm(subreddit, title, flairID)
	form.Set("kind", "video")
	form.Set("url", videoLease.assetURL)
	form.Set("video_poster_url", thumbLease.assetURL)

	return c.submit(ctx, "/api/submit", form, "video")
}

func (c *RedditImpl) Reply(ctx context.Context, parentFullname, body string) (domain.CommentHandle, error) {
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("thing_id", parentFullname)
	form.Set("text", body)

	var out submitResponse
	if err := c.api(ctx, http.MethodPost, "/api/comment", form, &out); err != nil {
		return domain.CommentHandle{}, fmt.Errorf("failed to reply to %s: %w", parentFullname, err)
	}
	if err := out.err(); err != nil {
		return domain.CommentHandle{}, err
	}

	handle := domain.CommentHandle{}
	if len(out.JSON.Data.Things) > 0 {
		handle.Fullname = out.JSON.Data.Things[0].Data.Name
		handle.Permalink = out.JSON.Data.Things[0].Data.Permalink
	}
	c.logger.Info("Reddit reply created", "fullname", handle.Fullname)
	return handle, nil
}

func (c *RedditImpl) submitForm(subreddit, title, flairID string) url.Values {
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("sr", subreddit)
	form.Set("title", title)
	form.Set("sendreplies", "false")
	form.Set("resubmit", "true")
	if flairID != "" {
		form.Set("flair_id", flairID)
	}
	return form
}

func (c *RedditImpl) submit(ctx context.Context, path string, form url.Values, kind string) (domain.SubmissionHandle, error) {
	var out submitResponse
	if err := c.api(ctx, http.MethodPost, path, form, &out); err != nil {
		return domain.SubmissionHandle{}, fmt.Errorf("failed to submit %s post: %w", kind, err)
	}
	if err := out.err(); err != nil {
		return domain.SubmissionHandle{}, err
	}

	handle := domain.SubmissionHandle{Fullname: out.JSON.Data.Name, Permalink: out.JSON.Data.URL}
	c.logger.Info("Reddit submission created", "kind", kind, "fullname", handle.Fullname, "url", handle.Permalink)
	return handle, nil
}

// apiJSON posts a JSON body instead of a form; the gallery endpoint requires it.
func (c *RedditImpl) apiJSON(ctx context.Context, path string, payload any, out any) error {
	tok, err := c.token(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiBase+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("User-Agent", c.cfg.Reddit.UserAgent)
	req.Header.Set("Content-Type", "application/json")

	if err := c.limiter.Wait(ctx, req.URL.Host); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer c.closeBody(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("reddit API %s returned %d: %s", path, resp.StatusCode, truncateBody(body))
	}
	return json.Unmarshal(body, out)
}

// mediaLease is the result of the media asset upload flow.
type mediaLease struct {
	assetID  string
	assetURL string
}

type leaseResponse struct {
	Args struct {
		Action string `json:"action"`
		Fields []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"fields"`
	} `json:"args"`
	Asset struct {
		AssetID string `json:"asset_id"`
	} `json:"asset"`
}

// uploadMedia requests an upload lease for a local file and pushes the bytes
// to the storage endpoint reddit hands back.
func (c *RedditImpl) uploadMedia(ctx context.Context, path, mimetype string) (mediaLease, error) {
	form := url.Values{}
	form.Set("filepath", filepath.Base(path))
	form.Set("mimetype", mimetype)

	var lease leaseResponse
	if err := c.api(ctx, http.MethodPost, "/api/media/asset.json", form, &lease); err != nil {
		return mediaLease{}, fmt.Errorf("failed to obtain media lease: %w", err)
	}

	action := lease.Args.Action
	if strings.HasPrefix(action, "//") {
		action = "https:" + action
	}

	file, err := os.Open(path)
	if err != nil {
		return mediaLease{}, err
	}
	defer c.closeBody(file)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	var key string
	for _, f := range lease.Args.Fields {
		if f.Name == "key" {
			key = f.Value
		}
		if err := writer.WriteField(f.Name, f.Value); err != nil {
			return mediaLease{}, err
		}
	}
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return mediaLease{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return mediaLease{}, err
	}
	if err := writer.Close(); err != nil {
		return mediaLease{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, action, &buf)
	if err != nil {
		return mediaLease{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if err := c.limiter.Wait(ctx, req.URL.Host); err != nil {
		return mediaLease{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return mediaLease{}, fmt.Errorf("failed to upload media bytes: %w", err)
	}
	defer c.closeBody(resp.Body)

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return mediaLease{}, fmt.Errorf("media upload returned %d: %s", resp.StatusCode, truncateBody(raw))
	}

	c.logger.Info("Uploaded media asset", "file", filepath.Base(path), "asset_id", lease.Asset.AssetID)
	return mediaLease{
		assetID:  lease.Asset.AssetID,
		assetURL: action + "/" + key,
	}, nil
}
