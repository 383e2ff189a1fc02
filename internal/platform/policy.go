package platform

import (
	"net/http"
	"strings"
	"time"
)

const (
	readTimeout   = 10 * time.Second
	writeTimeout  = 12 * time.Second
	uploadTimeout = 120 * time.Second

	readRetries  = 2
	writeRetries = 1

	backoffStep = 400 * time.Millisecond
)

// Interview submissions carry recorded media and need the long upload timeout.
var finishPaths = []string{"/finishInterview", "/finish"}

// Policy bounds a single logical request.
type Policy struct {
	// Timeout applies to each attempt separately.
	Timeout time.Duration
	// MaxRetries is the number of attempts allowed after the first one.
	MaxRetries int
}

// PolicyFor selects timeout and retry budget from the method, the requested path
// and whether the body is a multipart payload.
func PolicyFor(method, path string, multipart bool) Policy {
	if normalizeMethod(method) == http.MethodGet {
		return Policy{Timeout: readTimeout, MaxRetries: readRetries}
	}

	timeout := writeTimeout
	if multipart && isFinishPath(path) {
		timeout = uploadTimeout
	}

	return Policy{Timeout: timeout, MaxRetries: writeRetries}
}

// Backoff returns the delay before retry number attempt (1-based). It grows linearly.
func Backoff(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return backoffStep * time.Duration(attempt)
}

func isFinishPath(path string) bool {
	for _, p := range finishPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

func normalizeMethod(method string) string {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		return http.MethodGet
	}
	return method
}
