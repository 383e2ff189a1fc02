// Package ai defines how interview questions are generated and reviewed
// before an interview is created.
package ai

import (
	"context"
	"strings"

	"github.com/spigell/interview-panel/internal/platform"
)

const DefaultQuestionCount = 10

// QuestionGenerator produces count questions for an interview draft.
type QuestionGenerator interface {
	Generate(ctx context.Context, draft Draft, count int) ([]platform.Question, error)
}

// Draft is an interview that has not been created yet.
type Draft struct {
	Title       string
	Description string
	Status      string
}

func (d Draft) Validate() error {
	var fields []string
	if strings.TrimSpace(d.Title) == "" {
		fields = append(fields, "title")
	}
	if strings.TrimSpace(d.Description) == "" {
		fields = append(fields, "description")
	}
	switch d.Status {
	case "", platform.InterviewDraft, platform.InterviewActive:
	default:
		fields = append(fields, "status")
	}

	if len(fields) > 0 {
		return &platform.ValidationError{Message: "interview draft is incomplete", Fields: fields}
	}
	return nil
}

// Interview turns the draft and its approved questions into a create request.
// An empty status defaults to Borrador.
func (d Draft) Interview(questions []platform.Question) platform.NewInterview {
	status := d.Status
	if status == "" {
		status = platform.InterviewDraft
	}

	return platform.NewInterview{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Status:      status,
		Questions:   questions,
	}
}
