package translateimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/translate"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/config"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// TranslateImpl speaks the LibreTranslate-compatible JSON API.
type TranslateImpl struct {
	endpoint string
	apiKey   string
	http     *http.Client
	logger   logger.Logger
}

func New(opts Opts) *TranslateImpl {
	return &TranslateImpl{
		endpoint: opts.Config.Translate.Endpoint,
		apiKey:   opts.Config.Translate.APIKey,
		http:     &http.Client{Timeout: 30 * time.Second},
		logger:   opts.Logger.WithComponent("TranslateClient"),
	}
}

var _ translate.Client = (*TranslateImpl)(nil)

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

func (c *TranslateImpl) Translate(ctx context.Context, texts []string, source, target string) ([]string, error) {
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		translated, err := c.translateOne(ctx, text, source, target)
		if err != nil {
			return nil, err
		}
		out = append(out, translated)
	}
	return out, nil
}

func (c *TranslateImpl) translateOne(ctx context.Context, text, source, target string) (string, error) {
	raw, err := json.Marshal(translateRequest{
		Q:      text,
		Source: source,
		Target: target,
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error("Error closing response body", "error", cerr)
		}
	}()

	var body translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}
	if body.Error != "" {
		return "", fmt.Errorf("translation service rejected the request: %s", body.Error)
	}
	return body.TranslatedText, nil
}
