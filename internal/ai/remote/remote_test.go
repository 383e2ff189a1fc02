package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/ai"
	"github.com/spigell/interview-panel/internal/platform"
)

func TestGeneratorPostsDraft(t *testing.T) {
	var got platform.QuestionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ai/questions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"questions":[{"text":"Why Go?","points":5,"time":60},{"text":" "}]}`))
	}))
	defer srv.Close()

	client := platform.New(zap.NewNop(), platform.Options{BaseURL: srv.URL})
	gen := New(client, "/ai/questions", nil)

	questions, err := gen.Generate(context.Background(), ai.Draft{Title: " Go ", Description: "APIs"}, 0)
	require.NoError(t, err)

	assert.Equal(t, platform.QuestionRequest{Title: "Go", Description: "APIs", Count: ai.DefaultQuestionCount}, got)
	assert.Equal(t, []platform.Question{{Text: "Why Go?", Points: 5, Time: 60}}, questions)
}

func TestGeneratorRejectsInvalidDraft(t *testing.T) {
	gen := New(nil, "", nil)

	_, err := gen.Generate(context.Background(), ai.Draft{}, 3)
	assert.True(t, platform.IsValidationError(err))
}

func TestGeneratorEmptyAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	gen := New(platform.New(zap.NewNop(), platform.Options{BaseURL: srv.URL}), "", nil)

	_, err := gen.Generate(context.Background(), ai.Draft{Title: "Go", Description: "APIs"}, 2)
	assert.Error(t, err)
}

func TestGeneratorSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	gen := New(platform.New(zap.NewNop(), platform.Options{BaseURL: srv.URL}), "", nil)

	_, err := gen.Generate(context.Background(), ai.Draft{Title: "Go", Description: "APIs"}, 2)
	assert.Equal(t, http.StatusForbidden, platform.StatusCode(err))
}
