package mediacache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
)

// Cache manages the local temp directory holding downloaded images and the
// encoded video. The process is the only writer; the external scheduler
// guarantees invocations never overlap.
type Cache struct {
	dir    string
	http   *http.Client
	logger logger.Logger
}

func New(dir string, log logger.Logger) *Cache {
	return &Cache{
		dir:    dir,
		http:   &http.Client{Timeout: 60 * time.Second},
		logger: log.WithComponent("MediaCache"),
	}
}

func (c *Cache) Dir() string { return c.dir }

// ImagePath returns the numbered path for the idx-th downloaded image.
func (c *Cache) ImagePath(idx int) string {
	return filepath.Join(c.dir, fmt.Sprintf("image-%03d.jpg", idx))
}

// ImagePattern is the printf pattern the encoder consumes.
func (c *Cache) ImagePattern() string {
	return filepath.Join(c.dir, "image-%03d.jpg")
}

func (c *Cache) VideoPath() string {
	return filepath.Join(c.dir, "video.mp4")
}

func (c *Cache) EnsureDir() error {
	return os.MkdirAll(c.dir, 0o755)
}

// Cleanup removes leftover media artifacts. Best effort per file: a failed
// delete is logged and the rest are still attempted.
func (c *Cache) Cleanup() {
	patterns := []string{"*.jpg", "*.mp4"}
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(c.dir, pattern))
		if err != nil {
			c.logger.Error("Bad cleanup glob", "pattern", pattern, "error", err)
			continue
		}
		for _, fp := range matches {
			if err := os.Remove(fp); err != nil {
				c.logger.Warn("Error while deleting file", "path", fp, "error", err)
				continue
			}
			c.logger.Info("Removed file", "path", fp)
		}
	}
}

// Download fetches url into the given local path.
func (c *Cache) Download(ctx context.Context, url, path string) error {
	if err := c.EnsureDir(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error("Error closing response body", "error", cerr)
		}
	}()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("download of %s returned %d", url, resp.StatusCode)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			c.logger.Error("Error closing file", "path", path, "error", cerr)
		}
	}()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	c.logger.Info("Downloaded image", "url", url, "path", path)
	return nil
}
