package gemini

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/ai"
	"github.com/spigell/interview-panel/internal/platform"
)

type stubContent struct {
	system string
	prompt string
	out    string
	err    error
}

func (s *stubContent) GenerateContent(_ context.Context, system, prompt string) (string, error) {
	s.system = system
	s.prompt = prompt
	return s.out, s.err
}

var goDraft = ai.Draft{Title: "Go developer", Description: "Backend services in Go"}

func TestQuestionWriterGenerate(t *testing.T) {
	stub := &stubContent{out: "```json\n[{\"text\":\"What is a channel?\",\"points\":15,\"time\":90},{\"question\":\"Explain defer\"}]\n```"}
	w := NewQuestionWriter(stub, zap.NewNop(), 0)

	got, err := w.Generate(context.Background(), goDraft, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []platform.Question{
		{Text: "What is a channel?", Points: 15, Time: 90},
		{Text: "Explain defer", Points: defaultPoints, Time: defaultTime},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("question %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	if !strings.Contains(stub.prompt, "Go developer") || !strings.Contains(stub.prompt, "Backend services in Go") || !strings.Contains(stub.prompt, "2 interview questions") {
		t.Fatalf("prompt is missing draft fields:\n%s", stub.prompt)
	}
	if stub.system != systemInstruction {
		t.Fatalf("unexpected system instruction %q", stub.system)
	}
}

func TestQuestionWriterTrimsToCount(t *testing.T) {
	stub := &stubContent{out: `{"questions":["a","b","c"]}`}
	w := NewQuestionWriter(stub, nil, 0)

	got, err := w.Generate(context.Background(), goDraft, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Text != "a" || got[1].Text != "b" {
		t.Fatalf("unexpected questions %+v", got)
	}
}

func TestQuestionWriterDefaultCount(t *testing.T) {
	stub := &stubContent{out: `["a"]`}
	w := NewQuestionWriter(stub, nil, 0)

	if _, err := w.Generate(context.Background(), goDraft, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stub.prompt, "10 interview questions") {
		t.Fatalf("expected default count in prompt:\n%s", stub.prompt)
	}
}

func TestQuestionWriterValidatesDraft(t *testing.T) {
	stub := &stubContent{}
	w := NewQuestionWriter(stub, nil, 0)

	_, err := w.Generate(context.Background(), ai.Draft{Title: "Go"}, 3)
	if !platform.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if stub.prompt != "" {
		t.Fatal("generator must not be called for an invalid draft")
	}
}

func TestParseQuestionsErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "sure, here are some questions"},
		{name: "object without list", raw: `{"count": 2}`},
		{name: "empty texts", raw: `[{"text":""}, "  "]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseQuestions(tc.raw); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseQuestionsCoercesStrings(t *testing.T) {
	got, err := parseQuestions(`[{"text":"a","points":"7.5","time":"45"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Points != 7.5 || got[0].Time != 45 {
		t.Fatalf("unexpected question %+v", got[0])
	}
}
