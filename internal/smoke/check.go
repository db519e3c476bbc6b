package smoke

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/okian/fisa/internal/adapters/http/api"
	"github.com/okian/fisa/pkg/logger"
)

// property is one named assertion against a live instance.
type property struct {
	name string
	run  func(ctx context.Context, c *HTTPClient) error
}

var properties = []property{
	{"GET / redirects to the jump page", checkRedirect},
	{"GET /health returns OK", checkHealth},
	{"POST /api/score?value=5 echoes the value", checkScore},
	{"POST /api/score rejects a non-integer value", checkScoreRejected},
	{"GET /get and POST /post return distinct fixed replies", checkSamples},
	{"responses carry a request id", checkRequestID},
}

// Check runs every property against cfg.BaseURL. The report is always
// returned; the error wraps ErrCheckFailed when any property fails.
func Check(ctx context.Context, cfg *Config) (*Report, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	client := NewHTTPClient(cfg.BaseURL, cfg.Timeout)

	report := &Report{}
	for _, p := range properties {
		err := p.run(ctx, client)
		report.Checks = append(report.Checks, CheckResult{Name: p.name, Passed: err == nil, Err: err})
		if err != nil {
			cfg.Log.Warn(ctx, "check failed", logger.String("check", p.name), logger.Error(err))
			continue
		}
		cfg.Log.Debug(ctx, "check passed", logger.String("check", p.name))
	}

	if failed := report.Failed(); len(failed) > 0 {
		return report, fmt.Errorf("%w: %d of %d checks", ErrCheckFailed, len(failed), len(report.Checks))
	}
	return report, nil
}

func checkRedirect(ctx context.Context, c *HTTPClient) error {
	resp, err := c.Get(ctx, "/")
	if err != nil {
		return err
	}
	if resp.StatusCode < 300 || resp.StatusCode > 399 {
		return statusErr(resp, "3xx")
	}
	if loc := resp.Header.Get("Location"); loc != api.JumpPage {
		return fmt.Errorf("%w: Location %q, want %q", ErrUnexpectedHeaders, loc, api.JumpPage)
	}
	return nil
}

func checkHealth(ctx context.Context, c *HTTPClient) error {
	resp, err := c.Get(ctx, "/health")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return statusErr(resp, "200")
	}
	return expectBody(resp, "OK")
}

func checkScore(ctx context.Context, c *HTTPClient) error {
	resp, err := c.Post(ctx, "/api/score", url.Values{"value": {"5"}})
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return statusErr(resp, "200")
	}
	return expectBody(resp, "received:5")
}

func checkScoreRejected(ctx context.Context, c *HTTPClient) error {
	resp, err := c.Post(ctx, "/api/score", url.Values{"value": {"abc"}})
	if err != nil {
		return err
	}
	if resp.StatusCode < 400 || resp.StatusCode > 499 {
		return statusErr(resp, "4xx")
	}
	return nil
}

func checkSamples(ctx context.Context, c *HTTPClient) error {
	get, err := c.Get(ctx, "/get")
	if err != nil {
		return err
	}
	post, err := c.Post(ctx, "/post", nil)
	if err != nil {
		return err
	}
	for _, r := range []*Response{get, post} {
		if r.StatusCode != http.StatusOK {
			return statusErr(r, "200")
		}
		if r.Body == "" {
			return fmt.Errorf("%w: empty reply", ErrUnexpectedBody)
		}
	}
	if get.Body == post.Body {
		return fmt.Errorf("%w: GET /get and POST /post both returned %q", ErrUnexpectedBody, get.Body)
	}
	if err := expectBody(get, api.GetReply); err != nil {
		return err
	}
	return expectBody(post, api.PostSubmitReply)
}

func checkRequestID(ctx context.Context, c *HTTPClient) error {
	resp, err := c.Get(ctx, "/health")
	if err != nil {
		return err
	}
	if resp.Header.Get(api.HeaderRequestID) == "" {
		return fmt.Errorf("%w: missing %s", ErrUnexpectedHeaders, api.HeaderRequestID)
	}
	return nil
}

func statusErr(resp *Response, want string) error {
	return fmt.Errorf("%w: got %d, want %s", ErrUnexpectedStatus, resp.StatusCode, want)
}

func expectBody(resp *Response, want string) error {
	if resp.Body != want {
		return fmt.Errorf("%w: got %q, want %q", ErrUnexpectedBody, resp.Body, want)
	}
	return nil
}
