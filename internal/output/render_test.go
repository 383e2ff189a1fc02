package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spigell/interview-panel/internal/platform"
	"github.com/spigell/interview-panel/internal/recruiter"
)

func TestParticipantsTable(t *testing.T) {
	var buf bytes.Buffer
	err := Participants(&buf, []*platform.Participant{{
		ID:           "p1",
		Name:         "Ana Soto",
		Email:        "ana@acme.io",
		Status:       platform.ParticipantAssigned,
		CreatedAt:    time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC),
		InterviewIDs: []string{"i1", "i2"},
	}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Ana Soto", "ana@acme.io", "Asignado", "2024-05-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestResultsTable(t *testing.T) {
	var buf bytes.Buffer
	err := Results(&buf, []*platform.CompletedInterview{{
		ID:       "c1",
		UserName: "Bruno",
		Score:    87.5,
		Duration: 754,
	}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Bruno", "87.5", "Excelente", "12:34"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestQuestionsTableWithReview(t *testing.T) {
	var buf bytes.Buffer
	err := Questions(&buf, []platform.Question{
		{Text: "What is a goroutine?", Points: 10, Time: 90},
		{Text: "Explain interfaces", Points: 5, Time: 60},
	}, []string{"approved", "regenerate"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"What is a goroutine?", "1:30", "regenerate"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestRankingsTable(t *testing.T) {
	var buf bytes.Buffer
	rankings := recruiter.RankByTitle([]*platform.CompletedInterview{
		{ID: "1", UserName: "Ana", InterviewTitle: "Go", Score: 90},
		{ID: "2", UserName: "Bruno", InterviewTitle: "", Score: 40},
	})
	if err := Rankings(&buf, rankings); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Go (1 interview)", "Sin título (1 interview)", "#1", "Necesita mejorar"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestAnswers(t *testing.T) {
	var buf bytes.Buffer
	err := Answers(&buf, &platform.CompletedInterview{
		UserName: "Ana",
		Score:    55,
		Duration: 61,
		Answers:  []platform.Answer{{QuestionText: "Why Go?", Points: 5}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Ana: -", "Score 55 (Necesita mejorar), duration 1:01", "Why Go?"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}
