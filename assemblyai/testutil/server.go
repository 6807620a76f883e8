// Package testutil provides an in-process fake of the AssemblyAI v2 API for
// tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// APIPrefix is the versioned path the fake API is served under.
const APIPrefix = "/v2/"

// RecordedRequest is a request the fake API received.
type RecordedRequest struct {
	Method           string
	Path             string
	Query            url.Values
	Header           http.Header
	Body             []byte
	TransferEncoding []string
}

// Server is a fake AssemblyAI API backed by httptest.Server.
//
// Transcripts are stored as raw JSON objects in insertion order. Individual
// routes can be replaced with Handle to script edge cases.
type Server struct {
	ts     *httptest.Server
	apiKey string

	mu          sync.Mutex
	transcripts []map[string]any
	sentences   map[string][]map[string]any
	paragraphs  map[string][]map[string]any
	overrides   map[string]http.HandlerFunc
	requests    []RecordedRequest
	nextID      int
}

// NewServer starts a fake API that accepts apiKey. It is closed when the test
// finishes.
func NewServer(t testing.TB, apiKey string) *Server {
	t.Helper()
	s := &Server{
		apiKey:     apiKey,
		sentences:  make(map[string][]map[string]any),
		paragraphs: make(map[string][]map[string]any),
		overrides:  make(map[string]http.HandlerFunc),
	}
	s.ts = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// BaseURL returns the API root, including APIPrefix and a trailing slash.
func (s *Server) BaseURL() string {
	return s.ts.URL + APIPrefix
}

// URL returns the absolute URL of path under BaseURL.
func (s *Server) URL(path string) string {
	return s.BaseURL() + strings.TrimLeft(path, "/")
}

// Client returns an *http.Client configured for the server.
func (s *Server) Client() *http.Client {
	return s.ts.Client()
}

// Close shuts the server down.
func (s *Server) Close() {
	s.ts.Close()
}

// Handle replaces the route for method and path (relative to BaseURL, without
// query), e.g. Handle("GET", "transcript", h).
func (s *Server) Handle(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" "+strings.TrimLeft(path, "/")] = h
}

// AddTranscript stores a transcript object. It must carry an "id".
func (s *Server) AddTranscript(obj map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts = append(s.transcripts, obj)
}

// SetSentences stores the sentences served for a transcript.
func (s *Server) SetSentences(id string, sentences []map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sentences[id] = sentences
}

// SetParagraphs stores the paragraphs served for a transcript.
func (s *Server) SetParagraphs(id string, paragraphs []map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paragraphs[id] = paragraphs
}

// Requests returns every request received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestCount returns how many requests were received.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// LastRequest returns the most recent request, or false if none arrived.
func (s *Server) LastRequest() (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, APIPrefix)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:           r.Method,
		Path:             path,
		Query:            r.URL.Query(),
		Header:           r.Header.Clone(),
		Body:             body,
		TransferEncoding: r.TransferEncoding,
	})
	override := s.overrides[r.Method+" "+path]
	s.mu.Unlock()

	if r.Header.Get("Authorization") != s.apiKey {
		WriteJSON(w, http.StatusUnauthorized, map[string]any{"error": "Authentication error, API token missing/invalid"})
		return
	}
	if override != nil {
		override(w, r)
		return
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case r.Method == http.MethodPost && path == "transcript":
		s.createTranscript(w, body)
	case r.Method == http.MethodGet && path == "transcript":
		s.listTranscripts(w, r)
	case parts[0] == "transcript" && len(parts) == 2 && r.Method == http.MethodGet:
		s.getTranscript(w, parts[1])
	case parts[0] == "transcript" && len(parts) == 2 && r.Method == http.MethodDelete:
		s.deleteTranscript(w, parts[1])
	case parts[0] == "transcript" && len(parts) == 3 && parts[2] == "sentences":
		s.serveChildren(w, parts[1], "sentences", s.sentences)
	case parts[0] == "transcript" && len(parts) == 3 && parts[2] == "paragraphs":
		s.serveChildren(w, parts[1], "paragraphs", s.paragraphs)
	case r.Method == http.MethodPost && path == "upload":
		WriteJSON(w, http.StatusOK, map[string]any{
			"upload_url": fmt.Sprintf("https://cdn.assemblyai.test/upload/%d", len(body)),
		})
	case r.Method == http.MethodPost && path == "stream":
		s.stream(w, body)
	default:
		WriteJSON(w, http.StatusNotFound, map[string]any{"error": "Not found"})
	}
}

func (s *Server) createTranscript(w http.ResponseWriter, body []byte) {
	var req map[string]any
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON"})
		return
	}
	if u, _ := req["audio_url"].(string); u == "" {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"error": "audio_url is required"})
		return
	}

	s.mu.Lock()
	s.nextID++
	req["id"] = fmt.Sprintf("t-%d", s.nextID)
	req["status"] = "queued"
	s.transcripts = append(s.transcripts, req)
	s.mu.Unlock()

	WriteJSON(w, http.StatusOK, req)
}

func (s *Server) listTranscripts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 10
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	s.mu.Lock()
	all := make([]map[string]any, 0, len(s.transcripts))
	for _, t := range s.transcripts {
		if status := q.Get("status"); status != "" && t["status"] != status {
			continue
		}
		all = append(all, t)
	}
	s.mu.Unlock()

	start := 0
	if after := q.Get("after_id"); after != "" {
		for i, t := range all {
			if t["id"] == after {
				start = i + 1
				break
			}
		}
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	page := all[start:end]

	current := s.URL("transcript")
	if r.URL.RawQuery != "" {
		current += "?" + r.URL.RawQuery
	}
	details := map[string]any{
		"limit":        limit,
		"result_count": len(page),
		"current_url":  current,
		"prev_url":     nil,
		"next_url":     nil,
	}
	if end < len(all) && len(page) > 0 {
		next := url.Values{}
		next.Set("limit", strconv.Itoa(limit))
		next.Set("after_id", fmt.Sprint(page[len(page)-1]["id"]))
		details["next_url"] = s.URL("transcript") + "?" + next.Encode()
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"transcripts":  page,
		"page_details": details,
	})
}

func (s *Server) getTranscript(w http.ResponseWriter, id string) {
	if t := s.find(id); t != nil {
		WriteJSON(w, http.StatusOK, t)
		return
	}
	WriteJSON(w, http.StatusNotFound, map[string]any{"error": "transcript not found"})
}

func (s *Server) deleteTranscript(w http.ResponseWriter, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.transcripts {
		if t["id"] == id {
			s.transcripts = append(s.transcripts[:i], s.transcripts[i+1:]...)
			WriteJSON(w, http.StatusOK, map[string]any{"id": id, "status": "completed", "text": "Deleted by user."})
			return
		}
	}
	WriteJSON(w, http.StatusNotFound, map[string]any{"error": "transcript not found"})
}

func (s *Server) serveChildren(w http.ResponseWriter, id, key string, src map[string][]map[string]any) {
	if s.find(id) == nil {
		WriteJSON(w, http.StatusNotFound, map[string]any{"error": "transcript not found"})
		return
	}
	s.mu.Lock()
	items, ok := src[id]
	s.mu.Unlock()

	resp := map[string]any{"id": id}
	if ok {
		resp[key] = items
	}
	WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) stream(w http.ResponseWriter, body []byte) {
	var req struct {
		AudioData string `json:"audio_data"`
		Punctuate bool   `json:"punctuate"`
	}
	if err := json.Unmarshal(body, &req); err != nil || req.AudioData == "" {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"error": "audio_data is required"})
		return
	}
	text := "hello world"
	if req.Punctuate {
		text = "Hello world."
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":     "completed",
		"text":       text,
		"confidence": 0.97,
		"created":    "2024-01-15T10:30:00.000000",
		"words": []map[string]any{
			{"start": 0, "end": 400, "text": "hello", "confidence": 0.98},
			{"start": 420, "end": 900, "text": "world", "confidence": 0.96},
		},
	})
}

func (s *Server) find(id string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.transcripts {
		if t["id"] == id {
			return t
		}
	}
	return nil
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
