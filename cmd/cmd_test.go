package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/spigell/interview-panel/internal/auth"
	"github.com/spigell/interview-panel/internal/platform"
	"github.com/spigell/interview-panel/internal/recruiter"
)

func TestReadConfigDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	v := viper.New()
	setDefaults(v)
	if err := readConfig(v, ""); err != nil {
		t.Fatalf("missing config must not fail: %v", err)
	}

	cfg, err := getConfig(v)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected base url %q", cfg.API.BaseURL)
	}
	if cfg.Session.Backend != sessionFile || cfg.AI.Provider != providerRemote || cfg.AI.Questions != 10 {
		t.Fatalf("unexpected defaults %+v %+v", cfg.Session, cfg.AI)
	}
}

func TestReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.yaml")
	content := `api:
  base-url: https://api.example.com
session:
  backend: redis
  redis-url: redis://localhost:6379/1
  ttl: 12h
ai:
  provider: gemini
  gemini:
    model: gemini-2.5-pro
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	setDefaults(v)
	if err := readConfig(v, path); err != nil {
		t.Fatalf("read: %v", err)
	}

	cfg, err := getConfig(v)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.com" || cfg.Session.TTL != 12*time.Hour || cfg.AI.Gemini.Model != "gemini-2.5-pro" {
		t.Fatalf("unexpected config %+v %+v %+v", cfg.API, cfg.Session, cfg.AI.Gemini)
	}
	if cfg.AI.Questions != 10 {
		t.Fatalf("default question count lost: %d", cfg.AI.Questions)
	}
}

func TestReadConfigExplicitMissingFile(t *testing.T) {
	v := viper.New()
	if err := readConfig(v, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("an explicit config path must exist")
	}
}

func TestBuildSubmission(t *testing.T) {
	dir := t.TempDir()
	answers := filepath.Join(dir, "answers.json")
	recording := filepath.Join(dir, "q1.webm")
	if err := os.WriteFile(answers, []byte(`[{"questionText":"Why Go?","responseText":"Because"}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(recording, []byte("video"), 0o600); err != nil {
		t.Fatal(err)
	}

	body, err := buildSubmission("7", "ana@acme.io", answers, []string{recording})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	_, params, err := mime.ParseMediaType(body.ContentType())
	if err != nil {
		t.Fatalf("content type: %v", err)
	}

	reader := multipart.NewReader(bytes.NewReader(body.Bytes()), params["boundary"])
	got := map[string]string{}
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("next part: %v", err)
		}
		data, _ := io.ReadAll(part)
		key := part.FormName()
		if part.FileName() != "" {
			key += ":" + part.FileName()
		}
		got[key] = string(data)
	}

	if got["email"] != "ana@acme.io" || got["userId"] != "7" || !strings.Contains(got["answers"], "Why Go?") {
		t.Fatalf("unexpected fields %v", got)
	}
	if got["recordings:q1.webm"] != "video" {
		t.Fatalf("recording missing: %v", got)
	}
}

func TestBuildSubmissionRejectsInvalidJSON(t *testing.T) {
	answers := filepath.Join(t.TempDir(), "answers.json")
	if err := os.WriteFile(answers, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := buildSubmission("1", "a@b.com", answers, nil)
	if !platform.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBuildSubmissionMissingRecording(t *testing.T) {
	dir := t.TempDir()
	answers := filepath.Join(dir, "answers.json")
	if err := os.WriteFile(answers, []byte(`[]`), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := buildSubmission("1", "a@b.com", answers, []string{filepath.Join(dir, "gone.webm")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
}

func TestHandleDashboardAction(t *testing.T) {
	snap := &recruiter.Snapshot{
		Participants: []*platform.Participant{{ID: "p1", Name: "Ana", Status: platform.ParticipantPending}},
		Completed:    []*platform.CompletedInterview{{ID: "c1", UserName: "Bruno", InterviewTitle: "Go", Score: 70}},
		Stats:        recruiter.Stats{Total: 1, Pending: 1},
	}

	var buf bytes.Buffer
	if err := handleDashboardAction(PromptParticipants, &buf, snap); err != nil {
		t.Fatalf("participants: %v", err)
	}
	if !strings.Contains(buf.String(), "Ana") {
		t.Fatalf("participants not rendered:\n%s", buf.String())
	}

	buf.Reset()
	if err := handleDashboardAction(PromptRanking, &buf, snap); err != nil {
		t.Fatalf("ranking: %v", err)
	}
	if !strings.Contains(buf.String(), "Go (1 interview)") {
		t.Fatalf("ranking not rendered:\n%s", buf.String())
	}

	if err := handleDashboardAction(PromptQuit, &buf, snap); !errors.Is(err, errExit) {
		t.Fatalf("expected errExit, got %v", err)
	}
	if err := handleDashboardAction("bogus", &buf, snap); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestDescribeUser(t *testing.T) {
	got := describeUser(&auth.UserProfile{Email: "a@b.com", Name: "Ana", LastName: "Soto", Type: auth.Recruiter})
	if got != "Ana Soto <a@b.com> (reclutador)" {
		t.Fatalf("unexpected %q", got)
	}

	got = describeUser(&auth.UserProfile{Email: "a@b.com", Name: "a@b.com", Type: auth.Applicant})
	if got != "a@b.com <a@b.com> (postulante)" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestOpenSlotBackends(t *testing.T) {
	viper.Set("ephemeral", false)
	t.Cleanup(func() { viper.Set("ephemeral", false) })

	app := &application{config: &Config{Session: &SessionConfig{Backend: sessionFile, File: filepath.Join(t.TempDir(), "session.json")}}}
	slot, err := app.openSlot(context.Background())
	if err != nil || slot == nil {
		t.Fatalf("file slot: %v", err)
	}

	app.config.Session.Backend = "etcd"
	if _, err := app.openSlot(context.Background()); err == nil {
		t.Fatal("expected error for unknown backend")
	}

	viper.Set("ephemeral", true)
	slot, err = app.openSlot(context.Background())
	if err != nil || slot == nil {
		t.Fatalf("memory slot: %v", err)
	}
}
