// Package gemini generates interview questions with Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/ai"
	"github.com/spigell/interview-panel/internal/platform"
	"github.com/spigell/interview-panel/internal/utils"
)

const (
	systemInstruction = "You are an experienced technical recruiter. You write clear, fair interview questions."

	defaultMaxLogLength = 200
	defaultPoints       = 10
	defaultTime         = 120
)

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

// QuestionWriter implements ai.QuestionGenerator on top of a Gemini generator.
type QuestionWriter struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewQuestionWriter(generator contentGenerator, logger *zap.Logger, maxLogLength int) *QuestionWriter {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &QuestionWriter{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (w *QuestionWriter) Generate(ctx context.Context, draft ai.Draft, count int) ([]platform.Question, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = ai.DefaultQuestionCount
	}

	prompt := buildPrompt(draft, count)

	w.logger.Debug("gemini generate questions request",
		zap.String("title", draft.Title),
		zap.Int("count", count),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, w.maxLogLen)),
	)

	raw, err := w.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	w.logger.Debug("gemini generate questions response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, w.maxLogLen)),
	)

	questions, err := parseQuestions(raw)
	if err != nil {
		return nil, err
	}

	if len(questions) > count {
		questions = questions[:count]
	}

	return questions, nil
}

func buildPrompt(draft ai.Draft, count int) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Title: {{TITLE}}\nDescription: {{DESCRIPTION}}\n\nReturn {{COUNT}} questions as a JSON array:"
	}
	prompt := strings.ReplaceAll(template, "{{TITLE}}", strings.TrimSpace(draft.Title))
	prompt = strings.ReplaceAll(prompt, "{{DESCRIPTION}}", strings.TrimSpace(draft.Description))
	prompt = strings.ReplaceAll(prompt, "{{COUNT}}", strconv.Itoa(count))
	return prompt
}

// parseQuestions accepts a JSON array of objects or strings, optionally
// wrapped in {"questions": [...]} or a code fence.
func parseQuestions(raw string) ([]platform.Question, error) {
	cleaned := extractJSON(raw)

	var data any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	if obj, ok := data.(map[string]any); ok {
		data = obj["questions"]
	}

	items, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("parse gemini response: expected a list of questions")
	}

	questions := make([]platform.Question, 0, len(items))
	for _, item := range items {
		q := platform.Question{Points: defaultPoints, Time: defaultTime}

		switch val := item.(type) {
		case string:
			q.Text = strings.TrimSpace(val)
		case map[string]any:
			q.Text = coerceString(val["text"])
			if q.Text == "" {
				q.Text = coerceString(val["question"])
			}
			if points := coerceFloat(val["points"]); !math.IsNaN(points) && points > 0 {
				q.Points = points
			}
			if seconds := coerceFloat(val["time"]); !math.IsNaN(seconds) && seconds > 0 {
				q.Time = int(seconds)
			}
		}

		if q.Text == "" {
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("gemini response has no questions")
	}

	return questions, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
