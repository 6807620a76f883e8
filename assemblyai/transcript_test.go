package assemblyai

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"testing"

	"github.com/kbukum/assemblyai-go/assemblyai/testutil"
	"github.com/kbukum/assemblyai-go/errors"
	"github.com/kbukum/assemblyai-go/util"
)

func TestTranscript_Create(t *testing.T) {
	c, srv := newTestClient(t)

	in := Transcript{
		ID:     "ignored",
		Status: StatusCompleted,
		Text:   "result text is never sent",
		TranscriptConfig: TranscriptConfig{
			AudioURL:          "https://cdn.example.com/meeting.mp3",
			Punctuate:         util.Ptr(true),
			SpeakerLabels:     util.Ptr(false),
			BoostParam:        util.Ptr(BoostHigh),
			WordBoost:         []string{"kubernetes"},
			RedactPIIPolicies: []EntityType{EntityPersonName, EntityPhoneNumber},
			LanguageCode:      util.Ptr(LanguageEnglishAmerican),
			CustomSpelling:    []CustomSpelling{{From: []string{"k8s"}, To: "Kubernetes"}},
		},
	}

	got, err := c.Transcript.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ID != "t-1" || got.Status != StatusQueued {
		t.Errorf("unexpected transcript %+v", got)
	}
	if got.AudioURL != in.AudioURL {
		t.Errorf("expected audio url to round trip, got %q", got.AudioURL)
	}

	req, _ := srv.LastRequest()
	if req.Method != http.MethodPost || req.Path != "transcript" {
		t.Errorf("unexpected request %s %s", req.Method, req.Path)
	}
	if ct := req.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected json content type, got %q", ct)
	}

	var sent map[string]any
	if err := json.Unmarshal(req.Body, &sent); err != nil {
		t.Fatalf("invalid body %s: %v", req.Body, err)
	}
	for _, k := range []string{"id", "status", "text", "webhook_url", "format_text", "redact_pii_sub"} {
		if _, ok := sent[k]; ok {
			t.Errorf("field %q should not be sent: %s", k, req.Body)
		}
	}
	if sent["punctuate"] != true || sent["speaker_labels"] != false {
		t.Errorf("expected set flags to be sent, got %s", req.Body)
	}
	if sent["boost_param"] != "high" || sent["language_code"] != "en_us" {
		t.Errorf("expected enum wire values, got %s", req.Body)
	}
}

func TestTranscript_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  TranscriptConfig
		code errors.ErrorCode
	}{
		{"empty audio url", TranscriptConfig{}, errors.ErrCodeMissingField},
		{"blank audio url", TranscriptConfig{AudioURL: "   "}, errors.ErrCodeMissingField},
		{"not a url", TranscriptConfig{AudioURL: "meeting.mp3"}, errors.ErrCodeInvalidInput},
		{"bad webhook", TranscriptConfig{AudioURL: "https://x.test/a.mp3", WebhookURL: util.Ptr("nope")}, errors.ErrCodeInvalidInput},
		{"unknown boost", TranscriptConfig{AudioURL: "https://x.test/a.mp3", BoostParam: util.Ptr(BoostType("max"))}, errors.ErrCodeInvalidInput},
		{"unknown policy", TranscriptConfig{AudioURL: "https://x.test/a.mp3", RedactPIIPolicies: []EntityType{"ssn"}}, errors.ErrCodeInvalidInput},
		{"negative start", TranscriptConfig{AudioURL: "https://x.test/a.mp3", AudioStartFrom: util.Ptr(int64(-1))}, errors.ErrCodeInvalidInput},
		{"empty spelling", TranscriptConfig{AudioURL: "https://x.test/a.mp3", CustomSpelling: []CustomSpelling{{To: "x"}}}, errors.ErrCodeInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, srv := newTestClient(t)

			_, err := c.Transcript.Create(context.Background(), Transcript{TranscriptConfig: tc.cfg})
			if !IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !errors.HasCode(err, tc.code) {
				t.Errorf("expected code %s, got %v", tc.code, err)
			}
			if n := srv.RequestCount(); n != 0 {
				t.Errorf("expected no network calls, got %d", n)
			}
		})
	}
}

func TestTranscript_Get(t *testing.T) {
	c, srv := newTestClient(t)
	srv.AddTranscript(map[string]any{
		"id":             "abc",
		"status":         "completed",
		"audio_url":      "https://x.test/a.mp3",
		"text":           "Hello world.",
		"confidence":     0.93,
		"audio_duration": 12.5,
		"words": []map[string]any{
			{"start": 0, "end": 500, "text": "Hello", "confidence": 0.99, "speaker": "A"},
		},
		"chapters": []map[string]any{
			{"start": 0, "end": 1000, "summary": "s", "gist": "g", "headline": "h"},
		},
		"entities": []map[string]any{
			{"entity_type": "person_name", "text": "Ada", "start": 0, "end": 300},
		},
		"sentiment_analysis_results": []map[string]any{
			{"text": "Hello world.", "start": 0, "end": 1000, "sentiment": "POSITIVE", "confidence": 0.8},
		},
		"content_safety_labels": map[string]any{"status": "success", "results": []any{}},
		"iab_categories_result": map[string]any{"status": "unavailable"},
		"redact_pii_sub":        nil,
	})

	got, err := c.Transcript.Get(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.IsCompleted() || got.IsFailed() {
		t.Errorf("expected completed transcript, got status %q", got.Status)
	}
	if got.Text != "Hello world." || util.Deref(got.Confidence) != 0.93 {
		t.Errorf("unexpected result fields %+v", got)
	}
	if len(got.Words) != 1 || util.Deref(got.Words[0].Speaker) != "A" {
		t.Errorf("unexpected words %+v", got.Words)
	}
	if len(got.Entities) != 1 || got.Entities[0].EntityType != EntityPersonName {
		t.Errorf("unexpected entities %+v", got.Entities)
	}
	if got.SentimentAnalysisResults[0].Sentiment != SentimentPositive {
		t.Errorf("unexpected sentiment %+v", got.SentimentAnalysisResults)
	}
	if got.ContentSafetyLabels == nil || got.ContentSafetyLabels.Status != ResultSuccess {
		t.Errorf("unexpected content safety %+v", got.ContentSafetyLabels)
	}
	if got.IABCategoriesResult == nil || got.IABCategoriesResult.Status != ResultUnavailable {
		t.Errorf("unexpected iab result %+v", got.IABCategoriesResult)
	}
	if got.RedactPIISub != nil {
		t.Errorf("null enum should stay nil, got %v", *got.RedactPIISub)
	}

	req, _ := srv.LastRequest()
	if req.Method != http.MethodGet || req.Path != "transcript/abc" {
		t.Errorf("unexpected request %s %s", req.Method, req.Path)
	}
}

func TestTranscript_Get_Idempotent(t *testing.T) {
	c, srv := newTestClient(t)
	srv.AddTranscript(map[string]any{"id": "abc", "status": "processing", "audio_url": "https://x.test/a.mp3"})

	first, err := c.Transcript.Get(context.Background(), "abc")
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Transcript.Get(context.Background(), "abc")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
	if first.IsCompleted() || first.Text != "" || first.Words != nil {
		t.Errorf("processing transcript should carry no results, got %+v", first)
	}
}

func TestTranscript_Get_Errors(t *testing.T) {
	c, srv := newTestClient(t)
	srv.AddTranscript(map[string]any{"id": "weird", "status": "archived"})

	_, err := c.Transcript.Get(context.Background(), "")
	if !IsValidation(err) {
		t.Errorf("expected validation error for empty id, got %v", err)
	}

	_, err = c.Transcript.Get(context.Background(), "missing")
	if !IsHTTPStatus(err) {
		t.Errorf("expected HTTP status error, got %v", err)
	}

	got, err := c.Transcript.Get(context.Background(), "weird")
	if !IsDeserialization(err) {
		t.Errorf("expected deserialization error for unknown status, got %v", err)
	}
	if got != nil {
		t.Error("expected no partial result")
	}
}

func TestTranscript_Get_MalformedBody(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Handle(http.MethodGet, "transcript/bad", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "bad", "status": `))
	})

	_, err := c.Transcript.Get(context.Background(), "bad")
	if !IsDeserialization(err) {
		t.Fatalf("expected deserialization error, got %v", err)
	}
}

func TestTranscript_Sentences(t *testing.T) {
	c, srv := newTestClient(t)
	srv.AddTranscript(map[string]any{"id": "abc", "status": "completed"})
	srv.SetSentences("abc", []map[string]any{
		{"start": 0, "end": 900, "text": "First.", "confidence": 0.9},
		{"start": 1000, "end": 1800, "text": "Second.", "confidence": 0.8, "speaker": "B"},
	})

	got, err := c.Transcript.Sentences(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Sentences() error = %v", err)
	}
	if len(got) != 2 || got[1].Text != "Second." || util.Deref(got[1].Speaker) != "B" {
		t.Errorf("unexpected sentences %+v", got)
	}

	req, _ := srv.LastRequest()
	if req.Path != "transcript/abc/sentences" {
		t.Errorf("unexpected path %q", req.Path)
	}
}

func TestTranscript_Paragraphs(t *testing.T) {
	c, srv := newTestClient(t)
	srv.AddTranscript(map[string]any{"id": "abc", "status": "completed"})
	srv.SetParagraphs("abc", []map[string]any{
		{
			"start": 0, "end": 1800, "text": "First. Second.", "confidence": 0.85,
			"words": []map[string]any{
				{"start": 0, "end": 900, "text": "First.", "confidence": 0.9},
			},
		},
	})

	got, err := c.Transcript.Paragraphs(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Paragraphs() error = %v", err)
	}
	if len(got) != 1 || len(got[0].Words) != 1 {
		t.Errorf("unexpected paragraphs %+v", got)
	}
}

func TestTranscript_SentencesAndParagraphs_Absent(t *testing.T) {
	c, srv := newTestClient(t)
	srv.AddTranscript(map[string]any{"id": "abc", "status": "completed"})

	sentences, err := c.Transcript.Sentences(context.Background(), "abc")
	if err != nil {
		t.Fatal(err)
	}
	if sentences == nil || len(sentences) != 0 {
		t.Errorf("expected empty non-nil sentences, got %#v", sentences)
	}

	paragraphs, err := c.Transcript.Paragraphs(context.Background(), "abc")
	if err != nil {
		t.Fatal(err)
	}
	if paragraphs == nil || len(paragraphs) != 0 {
		t.Errorf("expected empty non-nil paragraphs, got %#v", paragraphs)
	}
}

func TestTranscript_Delete(t *testing.T) {
	c, srv := newTestClient(t)
	srv.AddTranscript(map[string]any{"id": "abc", "status": "completed"})

	if err := c.Transcript.Delete(context.Background(), "abc"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	req, _ := srv.LastRequest()
	if req.Method != http.MethodDelete || req.Path != "transcript/abc" {
		t.Errorf("unexpected request %s %s", req.Method, req.Path)
	}

	err := c.Transcript.Delete(context.Background(), "abc")
	if !IsHTTPStatus(err) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
	if err := c.Transcript.Delete(context.Background(), ""); !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestTranscript_PathEscaping(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Handle(http.MethodGet, "transcript/a b", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(w, http.StatusOK, map[string]any{"id": "a b"})
	})

	got, err := c.Transcript.Get(context.Background(), "a b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "a b" {
		t.Errorf("unexpected id %q", got.ID)
	}
}
