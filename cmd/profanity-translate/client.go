package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"syscall"
	"time"

	perr "profanity/internal/platform/errors"
	"profanity/internal/platform/logger"
)

const (
	baseURLDefault = "http://localhost:5000"
	defaultTimeout = 30 * time.Second
	defaultUA      = "profanity-translate"
	defaultWait    = 5 * time.Second
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// APIKey is sent with every translate call when the server requires one
	APIKey string

	// WaitEvery is the pause between /languages attempts while the server boots
	WaitEvery time.Duration
}

// Language is one entry of GET /languages
type Language struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Targets []string `json:"targets"`
}

type translateReq struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResp struct {
	TranslatedText string `json:"translatedText"`
}

// Client talks to a LibreTranslate compatible server
type Client struct {
	http  *http.Client
	opts  Options
	log   *logger.Logger
	sleep func(context.Context, time.Duration) error
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.WaitEvery <= 0 {
		o.WaitEvery = defaultWait
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   logger.Named("libretranslate"),
		sleep: sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Languages fetches the server's language table
func (c *Client) Languages(ctx context.Context) ([]Language, error) {
	resp, err := c.do(ctx, http.MethodGet, "/languages", nil)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(resp.Body)

	var out []Language
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, perr.Wrap(err, perr.CodeJSON, "decode languages")
	}
	return out, nil
}

// WaitLanguages polls Languages until the server accepts connections.
// Any failure other than a refused or reset connection is returned as is
func (c *Client) WaitLanguages(ctx context.Context) ([]Language, error) {
	for attempt := 1; ; attempt++ {
		langs, err := c.Languages(ctx)
		if err == nil {
			if attempt > 1 {
				c.log.Info().Int("attempts", attempt).Msg("translation server online")
			}
			return langs, nil
		}
		if !offline(err) {
			return nil, err
		}
		c.log.Warn().Int("attempt", attempt).Dur("retry_in", c.opts.WaitEvery).Msg("waiting for translation server to come online")
		if err := c.sleep(ctx, c.opts.WaitEvery); err != nil {
			return nil, err
		}
	}
}

// Translate returns q rendered from source into target.
// Transport failures and 429/5xx carry CodeUnavailable
func (c *Client) Translate(ctx context.Context, q, source, target string) (string, error) {
	body, err := json.Marshal(translateReq{
		Q:      q,
		Source: source,
		Target: target,
		Format: "text",
		APIKey: c.opts.APIKey,
	})
	if err != nil {
		return "", perr.Wrap(err, perr.CodeJSON, "encode translate request")
	}
	resp, err := c.do(ctx, http.MethodPost, "/translate", body)
	if err != nil {
		return "", err
	}
	defer drainAndClose(resp.Body)

	var out translateResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", perr.Wrap(err, perr.CodeJSON, "decode translate response")
	}
	return out.TranslatedText, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, rd)
	if err != nil {
		return nil, perr.Wrapf(err, perr.CodeUnknown, "translate new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.CodeUnavailable, "%s %s failed", method, path)
	}
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("translate http response")

	switch {
	case resp.StatusCode == http.StatusOK:
		return resp, nil
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		drainAndClose(resp.Body)
		return nil, perr.Newf(perr.CodeUnavailable, "%s %s: status %d", method, path, resp.StatusCode)
	default:
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		_ = resp.Body.Close()
		return nil, perr.Newf(perr.CodeUnknown, "%s %s: unexpected status %d body %s", method, path, resp.StatusCode, strings.TrimSpace(string(tail)))
	}
}

// offline reports connection level failures seen while the server boots
func offline(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

func drainAndClose(rc io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 64<<10))
	_ = rc.Close()
}
