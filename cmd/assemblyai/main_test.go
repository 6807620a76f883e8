package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/assemblyai-go/assemblyai"
	"github.com/kbukum/assemblyai-go/assemblyai/testutil"
	"github.com/kbukum/assemblyai-go/httpclient"
)

const testAPIKey = "cli-test-key"

// execute runs the CLI against srv. A nil srv runs without key or base URL.
func execute(t *testing.T, srv *testutil.Server, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ASSEMBLYAI_API_KEY", "")
	t.Setenv("ASSEMBLYAI_OBSERVABILITY_ENABLED", "")

	missing := filepath.Join(t.TempDir(), "missing")
	args = append(args, "--config", missing+".yml", "--env-file", missing+".env")
	if srv != nil {
		args = append(args, "--api-key", testAPIKey, "--base-url", srv.BaseURL())
	}

	a := &app{}
	t.Cleanup(func() { _ = a.close() })

	root := a.rootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	return v
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, nil, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "assemblyai-go dev") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestMissingAPIKey(t *testing.T) {
	_, err := execute(t, nil, "transcript", "get", "abc")
	if err == nil || !strings.Contains(err.Error(), "api_key is required") {
		t.Errorf("expected missing api key error, got %v", err)
	}
}

func TestTranscriptGet(t *testing.T) {
	srv := testutil.NewServer(t, testAPIKey)
	srv.AddTranscript(map[string]any{"id": "abc", "status": "completed", "text": "Hello there."})

	out, err := execute(t, srv, "transcript", "get", "abc")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	got := decode[assemblyai.Transcript](t, out)
	if got.ID != "abc" || got.Text != "Hello there." || !got.IsCompleted() {
		t.Errorf("unexpected transcript %+v", got)
	}
}

func TestTranscriptGetWithSentences(t *testing.T) {
	srv := testutil.NewServer(t, testAPIKey)
	srv.AddTranscript(map[string]any{"id": "abc", "status": "completed"})
	srv.SetSentences("abc", []map[string]any{
		{"start": 0, "end": 900, "text": "Hello there.", "confidence": 0.93},
	})

	out, err := execute(t, srv, "transcript", "get", "abc", "--sentences")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	got := decode[struct {
		Transcript assemblyai.Transcript   `json:"transcript"`
		Sentences  []assemblyai.UtteredWord `json:"sentences"`
	}](t, out)
	if got.Transcript.ID != "abc" {
		t.Errorf("expected transcript abc, got %q", got.Transcript.ID)
	}
	if len(got.Sentences) != 1 || got.Sentences[0].End != 900 {
		t.Errorf("unexpected sentences %+v", got.Sentences)
	}
	if srv.RequestCount() != 2 {
		t.Errorf("expected 2 requests, got %d", srv.RequestCount())
	}
}

func TestTranscriptGetNotFound(t *testing.T) {
	srv := testutil.NewServer(t, testAPIKey)

	_, err := execute(t, srv, "transcript", "get", "nope")
	if !httpclient.IsHTTPStatus(err) || httpclient.StatusCode(err) != 404 {
		t.Errorf("expected 404 status error, got %v", err)
	}
}

func TestTranscriptParagraphs(t *testing.T) {
	srv := testutil.NewServer(t, testAPIKey)
	srv.AddTranscript(map[string]any{"id": "abc", "status": "completed"})

	out, err := execute(t, srv, "transcript", "paragraphs", "abc")
	if err != nil {
		t.Fatalf("paragraphs failed: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("expected empty list, got %q", out)
	}
}

func TestTranscriptList(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"first page by default", []string{"--limit", "1"}, 1},
		{"all pages", []string{"--limit", "1", "--all"}, 3},
		{"status filter", []string{"--status", "error", "--all"}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := testutil.NewServer(t, testAPIKey)
			srv.AddTranscript(map[string]any{"id": "a", "status": "completed"})
			srv.AddTranscript(map[string]any{"id": "b", "status": "error"})
			srv.AddTranscript(map[string]any{"id": "c", "status": "queued"})

			out, err := execute(t, srv, append([]string{"transcript", "list"}, tc.args...)...)
			if err != nil {
				t.Fatalf("list failed: %v", err)
			}
			got := decode[[]assemblyai.Transcript](t, out)
			if len(got) != tc.want {
				t.Errorf("expected %d transcripts, got %d: %s", tc.want, len(got), out)
			}
		})
	}
}

func TestTranscriptListInvalidInput(t *testing.T) {
	srv := testutil.NewServer(t, testAPIKey)

	for _, args := range [][]string{
		{"--created-on", "18/10/2026"},
		{"--status", "finished"},
		{"--limit", "0"},
	} {
		_, err := execute(t, srv, append([]string{"transcript", "list"}, args...)...)
		if !assemblyai.IsValidation(err) {
			t.Errorf("%v: expected validation error, got %v", args, err)
		}
	}
	if srv.RequestCount() != 0 {
		t.Errorf("expected no requests, got %d", srv.RequestCount())
	}
}

func TestTranscriptCreate(t *testing.T) {
	srv := testutil.NewServer(t, testAPIKey)

	out, err := execute(t, srv, "transcript", "create",
		"--audio-url", "https://cdn.example.com/episode.mp3",
		"--speaker-labels",
		"--language-code", "en_us",
		"--word-boost", "kubernetes,zerolog",
	)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	got := decode[assemblyai.Transcript](t, out)
	if got.ID != "t-1" || got.Status != assemblyai.StatusQueued {
		t.Errorf("unexpected transcript %+v", got)
	}

	req, _ := srv.LastRequest()
	sent := decode[map[string]any](t, string(req.Body))
	if sent["speaker_labels"] != true || sent["language_code"] != "en_us" {
		t.Errorf("unexpected body %s", req.Body)
	}
	if _, ok := sent["punctuate"]; ok {
		t.Errorf("unset flags should not be sent: %s", req.Body)
	}
	if boost, _ := sent["word_boost"].([]any); len(boost) != 2 {
		t.Errorf("expected 2 boosted words, got %v", sent["word_boost"])
	}
}

func TestTranscriptCreateRequiresAudioURL(t *testing.T) {
	srv := testutil.NewServer(t, testAPIKey)

	if _, err := execute(t, srv, "transcript", "create"); err == nil {
		t.Error("expected error without --audio-url")
	}
	if srv.RequestCount() != 0 {
		t.Errorf("expected no requests, got %d", srv.RequestCount())
	}
}

func TestTranscriptDelete(t *testing.T) {
	srv := testutil.NewServer(t, testAPIKey)
	srv.AddTranscript(map[string]any{"id": "abc", "status": "completed"})

	out, err := execute(t, srv, "transcript", "delete", "abc")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if strings.TrimSpace(out) != "deleted abc" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestUploadAndTranscribe(t *testing.T) {
	srv := testutil.NewServer(t, testAPIKey)
	path := writeTemp(t, "clip.wav", bytes.Repeat([]byte{1}, 10))

	out, err := execute(t, srv, "upload", path, "--transcribe")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	got := decode[assemblyai.Transcript](t, out)
	if !strings.HasSuffix(got.AudioURL, "/upload/10") {
		t.Errorf("expected transcript from uploaded file, got audio_url %q", got.AudioURL)
	}

	reqs := srv.Requests()
	if len(reqs) != 2 || reqs[0].Path != "upload" || reqs[1].Path != "transcript" {
		t.Fatalf("unexpected requests %+v", reqs)
	}
	if len(reqs[0].TransferEncoding) == 0 || reqs[0].TransferEncoding[0] != "chunked" {
		t.Errorf("expected chunked upload, got %v", reqs[0].TransferEncoding)
	}
}

func TestUploadMissingFile(t *testing.T) {
	srv := testutil.NewServer(t, testAPIKey)

	if _, err := execute(t, srv, "upload", filepath.Join(t.TempDir(), "absent.wav")); err == nil {
		t.Error("expected error for missing file")
	}
	if srv.RequestCount() != 0 {
		t.Errorf("expected no requests, got %d", srv.RequestCount())
	}
}

func TestStream(t *testing.T) {
	srv := testutil.NewServer(t, testAPIKey)
	path := writeTemp(t, "clip.pcm", []byte{0, 1, 2, 3})

	out, err := execute(t, srv, "stream", path)
	if err != nil {
		t.Fatalf("stream failed: %v", err)
	}
	got := decode[assemblyai.StreamPayload](t, out)
	if got.Text != "Hello world." || len(got.Words) != 2 {
		t.Errorf("unexpected payload %+v", got)
	}

	req, _ := srv.LastRequest()
	sent := decode[map[string]any](t, string(req.Body))
	if sent["audio_data"] != "AAECAw==" {
		t.Errorf("expected base64 audio, got %v", sent["audio_data"])
	}
}

func TestTranscriptCreateRedactPII(t *testing.T) {
	srv := testutil.NewServer(t, testAPIKey)

	_, err := execute(t, srv, "transcript", "create",
		"--audio-url", "https://cdn.example.com/call.mp3",
		"--redact-pii",
		"--redact-pii-policies", "person_name,phone_number",
	)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	req, _ := srv.LastRequest()
	sent := decode[map[string]any](t, string(req.Body))
	if sent["redact_pii"] != true {
		t.Errorf("expected redact_pii true, got %s", req.Body)
	}
	if policies, _ := sent["redact_pii_policies"].([]any); len(policies) != 2 || policies[0] != "person_name" {
		t.Errorf("unexpected policies %v", sent["redact_pii_policies"])
	}
}

func TestTranscriptCreateUnknownPIIPolicy(t *testing.T) {
	srv := testutil.NewServer(t, testAPIKey)

	_, err := execute(t, srv, "transcript", "create",
		"--audio-url", "https://cdn.example.com/call.mp3",
		"--redact-pii-policies", "shoe_size",
	)
	if !assemblyai.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if srv.RequestCount() != 0 {
		t.Errorf("expected no requests, got %d", srv.RequestCount())
	}
}
