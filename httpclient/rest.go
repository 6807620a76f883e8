package httpclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kbukum/assemblyai-go/errors"
)

// TypedResponse wraps a response with a decoded body of type T.
type TypedResponse[T any] struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Data is the decoded response body.
	Data T
}

// Send executes req and decodes the JSON response into type T.
// On any failure no partially decoded value is returned.
func Send[T any](a *Adapter, ctx context.Context, req Request) (*TypedResponse[T], error) {
	resp, err := a.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var data T
	if err := Decode(resp.Body, &data); err != nil {
		return nil, err
	}

	return &TypedResponse[T]{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Data:       data,
	}, nil
}

// Decode unmarshals a JSON response body into out. An empty body leaves out
// at its zero value. Failures are reported as DESERIALIZATION_ERROR.
func Decode(body []byte, out any) error {
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Deserialization(fmt.Sprintf("%T", out), err)
	}
	return nil
}
