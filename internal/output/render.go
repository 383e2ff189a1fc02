package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spigell/interview-panel/internal/platform"
	"github.com/spigell/interview-panel/internal/recruiter"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

func Participants(w io.Writer, list []*platform.Participant) error {
	t := NewTable(w, "ID", "Name", "Email", "Phone", "Status", "Created", "Interviews")
	for _, p := range list {
		t.AddRow(p.ID, p.Name, p.Email, orDash(p.Phone), p.Status, formatDate(p.CreatedAt), strconv.Itoa(len(p.InterviewIDs)))
	}
	return t.Render()
}

func Stats(w io.Writer, s recruiter.Stats) error {
	t := NewTable(w, "Total", "Pending", "Assigned", "Completed")
	t.AddRow(strconv.Itoa(s.Total), strconv.Itoa(s.Pending), strconv.Itoa(s.Assigned), strconv.Itoa(s.Completed))
	return t.Render()
}

func Interviews(w io.Writer, list []*platform.Interview) error {
	t := NewTable(w, "ID", "Title", "Status", "Questions", "Created")
	for _, in := range list {
		t.AddRow(in.ID, in.Title, in.Status, strconv.Itoa(len(in.Questions)), formatDate(in.CreatedAt))
	}
	return t.Render()
}

// Questions lists questions with their 1-based position and, when statuses
// is not nil, the review status of each.
func Questions(w io.Writer, list []platform.Question, statuses []string) error {
	headers := []string{"#", "Question", "Points", "Time"}
	if statuses != nil {
		headers = append(headers, "Review")
	}

	t := NewTable(w, headers...)
	for i, q := range list {
		row := []string{strconv.Itoa(i + 1), q.Text, formatScore(q.Points), recruiter.FormatDuration(q.Time)}
		if statuses != nil && i < len(statuses) {
			row = append(row, statuses[i])
		}
		t.AddRow(row...)
	}
	return t.Render()
}

func Results(w io.Writer, list []*platform.CompletedInterview) error {
	t := NewTable(w, "ID", "Candidate", "Interview", "Date", "Score", "Level", "Duration")
	for _, ci := range list {
		t.AddRow(ci.ID, ci.UserName, orDash(ci.InterviewTitle), formatDate(ci.Date), formatScore(ci.Score),
			recruiter.ScoreLevel(ci.Score), recruiter.FormatDuration(ci.Duration))
	}
	return t.Render()
}

// Rankings prints the best and worst results of every interview title.
func Rankings(w io.Writer, rankings []recruiter.Ranking) error {
	for i, r := range rankings {
		if i > 0 {
			fmt.Fprintln(w)
		}
		noun := "interviews"
		if r.Count == 1 {
			noun = "interview"
		}
		fmt.Fprintf(w, "%s (%d %s)\n", r.Title, r.Count, noun)

		t := NewTable(w, "Rank", "Candidate", "Score", "Level")
		for pos, ci := range r.Top {
			t.AddRow(fmt.Sprintf("#%d", pos+1), ci.UserName, formatScore(ci.Score), recruiter.ScoreLevel(ci.Score))
		}
		for pos, ci := range r.Bottom {
			t.AddRow(fmt.Sprintf("-%d", len(r.Bottom)-pos), ci.UserName, formatScore(ci.Score), recruiter.ScoreLevel(ci.Score))
		}
		if err := t.Render(); err != nil {
			return err
		}
	}
	return nil
}

// Answers prints the detail of one completed interview.
func Answers(w io.Writer, ci *platform.CompletedInterview) error {
	fmt.Fprintf(w, "%s: %s\n", ci.UserName, orDash(ci.InterviewTitle))
	fmt.Fprintf(w, "Score %s (%s), duration %s\n", formatScore(ci.Score), recruiter.ScoreLevel(ci.Score), recruiter.FormatDuration(ci.Duration))

	t := NewTable(w, "Question", "Answer", "Points", "Feedback")
	for _, a := range ci.Answers {
		t.AddRow(a.QuestionText, orDash(a.ResponseText), formatScore(a.Points), orDash(a.Description))
	}
	return t.Render()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
