package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/logger"
)

// Request describes one logical call. A nil Request is a plain GET.
type Request struct {
	Method string
	// Header is merged over the defaults and wins on conflicts.
	Header http.Header
	Body   Body
}

// Do sends the request to pathOrURL and returns the first 2xx response. The
// caller must close its body.
//
// A failed attempt is retried while the budget from PolicyFor allows it:
// transport failures for any method, 5xx statuses only for GET. Other
// statuses fail at once with a decoded *HTTPError. When the budget runs out the
// last error is returned.
func (c *Client) Do(ctx context.Context, pathOrURL string, r *Request) (*http.Response, error) {
	if r == nil {
		r = &Request{}
	}

	target, err := c.resolve(pathOrURL)
	if err != nil {
		return nil, err
	}

	method := normalizeMethod(r.Method)
	multipart := r.Body != nil && r.Body.Multipart()
	policy := c.policy(method, pathOrURL, multipart)

	log := c.logger.With(logger.RequestFields(method, target)...)
	if policy.Timeout == uploadTimeout {
		log.Debug("using extended timeout for interview submission", zap.Duration("timeout", policy.Timeout))
	}

	var lastErr error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := Backoff(attempt)
			log.Warn("retrying request",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", policy.MaxRetries),
				zap.Duration("backoff", delay),
				zap.Error(lastErr),
			)

			if err := c.wait(ctx, delay); err != nil {
				return nil, err
			}
		}

		log.Debug("make request", zap.Int("attempt", attempt), zap.Duration("timeout", policy.Timeout))

		resp, err := c.send(ctx, method, target, r, policy)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			lastErr = err
			if IsNetworkError(err) {
				continue
			}
			return nil, err
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		httpErr := DecodeError(resp)
		lastErr = httpErr

		if method == http.MethodGet && resp.StatusCode >= 500 && resp.StatusCode < 600 {
			continue
		}

		return nil, httpErr
	}

	log.Warn("request failed after retries", zap.Int("max_retries", policy.MaxRetries), zap.Error(lastErr))
	return nil, lastErr
}

// send performs one attempt bounded by the policy timeout.
func (c *Client) send(ctx context.Context, method, target string, r *Request, policy Policy) (*http.Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, policy.Timeout)

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body.Bytes())
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, target, body)
	if err != nil {
		cancel()
		return nil, err
	}

	c.setHeaders(req, r)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		cancel()
		return nil, &NetworkError{Method: method, URL: target, Err: err}
	}

	// The attempt context must outlive Do so the caller can read the body.
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

func (c *Client) setHeaders(req *http.Request, r *Request) {
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", contentType)

	switch {
	case r.Body != nil && r.Body.Multipart():
		req.Header.Set("Content-Type", r.Body.ContentType())
	default:
		req.Header.Set("Content-Type", contentType)
	}

	for key, values := range r.Header {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
}

// resolve keeps absolute URLs and joins everything else to the base URL.
func (c *Client) resolve(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("request path is required")
	}

	if u, err := url.Parse(pathOrURL); err == nil && u.IsAbs() {
		if u.Scheme != "http" && u.Scheme != "https" {
			return "", fmt.Errorf("unsupported url scheme %q", u.Scheme)
		}
		return pathOrURL, nil
	}

	return joinURL(c.BaseURL, pathOrURL), nil
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
