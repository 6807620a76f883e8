package assemblyai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/kbukum/assemblyai-go/errors"
	"github.com/kbukum/assemblyai-go/logger"
	"github.com/kbukum/assemblyai-go/validation"
)

const transcriptPath = "transcript"

// TranscriptEndpoint groups the operations on transcripts.
type TranscriptEndpoint struct {
	client *Client
}

// Create submits audio for transcription. Only the TranscriptConfig part of t
// is sent; result fields are ignored.
func (e *TranscriptEndpoint) Create(ctx context.Context, t Transcript) (*Transcript, error) {
	if strings.TrimSpace(t.AudioURL) == "" {
		return nil, errors.MissingField("audio_url")
	}
	if err := validation.Validate(t.TranscriptConfig); err != nil {
		return nil, err
	}

	created, err := call[Transcript](ctx, e.client, transcriptPath, http.MethodPost, WithBody(t.TranscriptConfig))
	if err != nil {
		return nil, fmt.Errorf("create transcript: %w", err)
	}

	e.client.log.Debug("transcript created", logger.Fields("id", created.ID, "status", created.Status.String()))
	return &created, nil
}

// Get fetches a transcript by ID.
func (e *TranscriptEndpoint) Get(ctx context.Context, id string) (*Transcript, error) {
	path, err := transcriptIDPath(id)
	if err != nil {
		return nil, err
	}

	t, err := call[Transcript](ctx, e.client, path, http.MethodGet)
	if err != nil {
		return nil, fmt.Errorf("get transcript %s: %w", id, err)
	}
	return &t, nil
}

// Sentences returns the transcript split into sentences.
func (e *TranscriptEndpoint) Sentences(ctx context.Context, id string) ([]UtteredWord, error) {
	path, err := transcriptIDPath(id)
	if err != nil {
		return nil, err
	}

	resp, err := call[sentencesResponse](ctx, e.client, path+"/sentences", http.MethodGet)
	if err != nil {
		return nil, fmt.Errorf("get sentences %s: %w", id, err)
	}
	if resp.Sentences == nil {
		return []UtteredWord{}, nil
	}
	return resp.Sentences, nil
}

// Paragraphs returns the transcript split into paragraphs.
func (e *TranscriptEndpoint) Paragraphs(ctx context.Context, id string) ([]Utterance, error) {
	path, err := transcriptIDPath(id)
	if err != nil {
		return nil, err
	}

	resp, err := call[paragraphsResponse](ctx, e.client, path+"/paragraphs", http.MethodGet)
	if err != nil {
		return nil, fmt.Errorf("get paragraphs %s: %w", id, err)
	}
	if resp.Paragraphs == nil {
		return []Utterance{}, nil
	}
	return resp.Paragraphs, nil
}

// Delete removes a transcript.
func (e *TranscriptEndpoint) Delete(ctx context.Context, id string) error {
	path, err := transcriptIDPath(id)
	if err != nil {
		return err
	}

	if _, err := e.client.Request(ctx, path, http.MethodDelete); err != nil {
		return fmt.Errorf("delete transcript %s: %w", id, err)
	}
	e.client.log.Debug("transcript deleted", logger.Fields("id", id))
	return nil
}

func transcriptIDPath(id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", errors.MissingField("transcript_id")
	}
	return transcriptPath + "/" + url.PathEscape(id), nil
}
