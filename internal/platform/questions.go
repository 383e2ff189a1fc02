package platform

import (
	"context"
	"net/http"

	"github.com/spigell/interview-panel/internal/utils"
)

// DefaultQuestionsPath is the backend endpoint generating interview questions.
const DefaultQuestionsPath = "/api/ai/generateQuestions"

type QuestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// GenerateQuestions asks the question generation endpoint for questions.
// endpoint may be a path on the backend or an absolute URL.
func (c *Client) GenerateQuestions(ctx context.Context, endpoint string, in QuestionRequest) ([]Question, error) {
	var payload any
	err := c.sendJSON(ctx, http.MethodPost, utils.FirstNonEmpty(endpoint, DefaultQuestionsPath), in, &payload)
	if err != nil {
		return nil, err
	}

	items, err := unwrapItems(payload, "questions")
	if err != nil {
		return nil, err
	}

	var questions []Question
	if err := decodeItems(items, &questions); err != nil {
		return nil, err
	}

	return questions, nil
}
