package redditimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *RedditImpl) Distinguish(ctx context.Context, fullname string, sticky bool) error {
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("id", fullname)
	form.Set("how", "yes")
	if sticky {
		form.Set("sticky", "true")
	}

	if err := c.api(ctx, http.MethodPost, "/api/distinguish", form, nil); err != nil {
		return fmt.Errorf("failed to distinguish %s: %w", fullname, err)
	}
	c.logger.Info("Distinguished", "fullname", fullname, "sticky", sticky)
	return nil
}

func (c *RedditImpl) Approve(ctx context.Context, fullname string) error {
	form := url.Values{}
	form.Set("id", fullname)

	if err := c.api(ctx, http.MethodPost, "/api/approve", form, nil); err != nil {
		return fmt.Errorf("failed to approve %s: %w", fullname, err)
	}
	c.logger.Info("Approved", "fullname", fullname)
	return nil
}
