// Package platform is the client of the interviews backend. Every call goes
// through Client.Do, which owns the timeout and retry policy.
package platform

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/utils"
)

const (
	defaultBaseURL = "http://localhost:8080"
	userAgent      = "spigell/interview-panel"
)

// Options configures a Client. Empty fields fall back to defaults.
type Options struct {
	// BaseURL is joined with relative request paths.
	BaseURL string
	// AuthURL serves the login endpoint. Defaults to BaseURL.
	AuthURL    string
	UserAgent  string
	HTTPClient *http.Client
}

type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	BaseURL    string
	AuthURL    string
	UserAgent  string

	// wait sleeps between attempts and policy picks the per-request budget;
	// both are replaced in tests.
	wait   func(ctx context.Context, d time.Duration) error
	policy func(method, path string, multipart bool) Policy
}

func New(logger *zap.Logger, opts Options) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		// Timeouts are applied per attempt, see Do.
		httpClient = &http.Client{}
	}

	base := strings.TrimRight(utils.FirstNonEmpty(opts.BaseURL, defaultBaseURL), "/")

	return &Client{
		logger:     logger,
		HTTPClient: httpClient,
		BaseURL:    base,
		AuthURL:    strings.TrimRight(utils.FirstNonEmpty(opts.AuthURL, base), "/"),
		UserAgent:  utils.FirstNonEmpty(opts.UserAgent, userAgent),
		wait:       utils.WaitFor,
		policy:     PolicyFor,
	}
}
