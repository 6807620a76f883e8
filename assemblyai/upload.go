package assemblyai

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/kbukum/assemblyai-go/errors"
	"github.com/kbukum/assemblyai-go/logger"
)

const uploadPath = "upload"

// UploadEndpoint uploads local audio so it can be transcribed.
type UploadEndpoint struct {
	client *Client
}

// UploadBytes streams content to the upload endpoint using chunked transfer
// encoding. The returned UploadURL can be used as a transcript's AudioURL.
func (e *UploadEndpoint) UploadBytes(ctx context.Context, content io.Reader) (*Upload, error) {
	if content == nil {
		return nil, errors.MissingField("content")
	}

	up, err := call[Upload](ctx, e.client, uploadPath, http.MethodPost, WithData(content))
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	return &up, nil
}

// UploadFile uploads the file at path without loading it into memory.
// The file is read in chunks of the client's chunk size.
func (e *UploadEndpoint) UploadFile(ctx context.Context, path string) (*Upload, error) {
	if path == "" {
		return nil, errors.MissingField("path")
	}

	chunks, err := OpenChunks(path, e.client.chunkSize)
	if err != nil {
		return nil, err
	}
	defer func() { _ = chunks.Close() }()

	e.client.log.Debug("uploading file", logger.Fields("file", path, "chunk_size", e.client.chunkSize))
	return e.UploadBytes(ctx, chunks)
}
