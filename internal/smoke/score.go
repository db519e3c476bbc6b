package smoke

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SubmitScore posts raw as the score value and returns the reply body.
// A non-200 reply is returned as an error wrapping ErrUnexpectedStatus.
func SubmitScore(ctx context.Context, cfg *Config, raw string) (string, error) {
	if err := cfg.normalize(); err != nil {
		return "", err
	}
	return submit(ctx, NewHTTPClient(cfg.BaseURL, cfg.Timeout), raw)
}

func submit(ctx context.Context, c *HTTPClient, raw string) (string, error) {
	resp, err := c.Post(ctx, "/api/score", url.Values{"value": {raw}})
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return resp.Body, fmt.Errorf("%w: got %d: %s", ErrUnexpectedStatus, resp.StatusCode, resp.Body)
	}
	return resp.Body, nil
}
