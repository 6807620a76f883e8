package assemblyai

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/kbukum/assemblyai-go/provider"
)

// DefaultChunkSize is the read size used when uploading files.
const DefaultChunkSize = 5 * 1024 * 1024

// ChunkReader yields a file as fixed-size chunks. The last chunk may be
// shorter. It is finite, single pass and cannot be restarted. The file is
// closed once the last chunk has been read, on the first read failure, or
// on Close, whichever comes first.
//
// ChunkReader also implements io.ReadCloser so it can be streamed as a
// request body.
type ChunkReader struct {
	f       *os.File
	size    int
	pending []byte
	eof     bool
	err     error
}

var (
	_ provider.Iterator[[]byte] = (*ChunkReader)(nil)
	_ io.ReadCloser             = (*ChunkReader)(nil)
)

// OpenChunks opens path for chunked reading. A size of 0 or less selects
// DefaultChunkSize.
func OpenChunks(path string, size int) (*ChunkReader, error) {
	if size <= 0 {
		size = DefaultChunkSize
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &ChunkReader{f: f, size: size}, nil
}

// Next returns the next chunk, or (nil, false, nil) once the file is exhausted.
func (r *ChunkReader) Next(ctx context.Context) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		_ = r.Close()
		return nil, false, err
	}
	return r.next()
}

func (r *ChunkReader) next() ([]byte, bool, error) {
	if r.err != nil {
		return nil, false, r.err
	}
	if r.eof {
		return nil, false, nil
	}

	buf := make([]byte, r.size)
	n, err := io.ReadFull(r.f, buf)
	switch {
	case err == nil:
		return buf[:n], true, nil
	case stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF):
		r.eof = true
		_ = r.Close()
		if n == 0 {
			return nil, false, nil
		}
		return buf[:n], true, nil
	default:
		r.err = fmt.Errorf("read chunk: %w", err)
		_ = r.Close()
		return nil, false, r.err
	}
}

// Read implements io.Reader on top of the chunk sequence.
func (r *ChunkReader) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		chunk, ok, err := r.next()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, io.EOF
		}
		r.pending = chunk
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// Close releases the file handle. It is safe to call more than once.
func (r *ChunkReader) Close() error {
	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	if !r.eof && r.err == nil {
		r.eof = true
	}
	return err
}
