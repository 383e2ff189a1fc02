package platform

import (
	"testing"
	"time"
)

func TestPolicyFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		method    string
		path      string
		multipart bool
		want      Policy
	}{
		{name: "get", method: "GET", path: "/api/interviews", want: Policy{Timeout: 10 * time.Second, MaxRetries: 2}},
		{name: "default method is get", method: "", path: "/api/interviews", want: Policy{Timeout: 10 * time.Second, MaxRetries: 2}},
		{name: "lower case get", method: "get", path: "/api/interviews", want: Policy{Timeout: 10 * time.Second, MaxRetries: 2}},
		{name: "post", method: "POST", path: "/api/interviews", want: Policy{Timeout: 12 * time.Second, MaxRetries: 1}},
		{name: "delete", method: "DELETE", path: "/api/interviews/1", want: Policy{Timeout: 12 * time.Second, MaxRetries: 1}},
		{name: "finish with multipart", method: "POST", path: "/api/interviews/1/finishInterview", multipart: true, want: Policy{Timeout: 120 * time.Second, MaxRetries: 1}},
		{name: "short finish path with multipart", method: "POST", path: "/api/finish", multipart: true, want: Policy{Timeout: 120 * time.Second, MaxRetries: 1}},
		{name: "finish with json", method: "POST", path: "/api/interviews/1/finishInterview", want: Policy{Timeout: 12 * time.Second, MaxRetries: 1}},
		{name: "multipart elsewhere", method: "POST", path: "/api/uploads", multipart: true, want: Policy{Timeout: 12 * time.Second, MaxRetries: 1}},
		{name: "get on finish path", method: "GET", path: "/api/interviews/1/finishInterview", multipart: true, want: Policy{Timeout: 10 * time.Second, MaxRetries: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PolicyFor(tt.method, tt.path, tt.multipart); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestBackoffIsLinear(t *testing.T) {
	want := []time.Duration{0, 400 * time.Millisecond, 800 * time.Millisecond, 1200 * time.Millisecond}
	for attempt, d := range want {
		if got := Backoff(attempt); got != d {
			t.Fatalf("attempt %d: expected %v, got %v", attempt, d, got)
		}
	}
}
