// Package remote generates interview questions through the backend AI endpoint.
package remote

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/ai"
	"github.com/spigell/interview-panel/internal/platform"
)

type questionsAPI interface {
	GenerateQuestions(ctx context.Context, endpoint string, in platform.QuestionRequest) ([]platform.Question, error)
}

type Generator struct {
	api      questionsAPI
	endpoint string
	logger   *zap.Logger
}

// New builds a generator posting to endpoint, a backend path or an absolute URL.
// An empty endpoint uses platform.DefaultQuestionsPath.
func New(api questionsAPI, endpoint string, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{api: api, endpoint: strings.TrimSpace(endpoint), logger: logger}
}

func (g *Generator) Generate(ctx context.Context, draft ai.Draft, count int) ([]platform.Question, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = ai.DefaultQuestionCount
	}

	questions, err := g.api.GenerateQuestions(ctx, g.endpoint, platform.QuestionRequest{
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Count:       count,
	})
	if err != nil {
		return nil, err
	}

	var out []platform.Question
	for _, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			continue
		}
		out = append(out, q)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("question service returned no questions")
	}

	g.logger.Debug("questions generated", zap.Int("requested", count), zap.Int("received", len(out)))

	return out, nil
}
