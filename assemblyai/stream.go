package assemblyai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/kbukum/assemblyai-go/errors"
	"github.com/kbukum/assemblyai-go/validation"
)

const streamPath = "stream"

// StreamEndpoint sends short base64-encoded audio clips for immediate
// transcription.
type StreamEndpoint struct {
	client *Client
}

// StreamOptions toggles text post-processing for StreamRaw.
type StreamOptions struct {
	FormatText bool
	Punctuate  bool
}

type streamRequest struct {
	AudioData  string `json:"audio_data" validate:"required,base64"`
	FormatText bool   `json:"format_text"`
	Punctuate  bool   `json:"punctuate"`
}

// StreamRaw sends one base64-encoded audio clip and returns its transcription.
func (e *StreamEndpoint) StreamRaw(ctx context.Context, audioBase64 string, opts StreamOptions) (*StreamPayload, error) {
	if strings.TrimSpace(audioBase64) == "" {
		return nil, errors.MissingField("audio_data")
	}
	req := streamRequest{
		AudioData:  audioBase64,
		FormatText: opts.FormatText,
		Punctuate:  opts.Punctuate,
	}
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	payload, err := call[StreamPayload](ctx, e.client, streamPath, http.MethodPost, WithBody(req))
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}
	return &payload, nil
}
