package httpclient

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/assemblyai-go/errors"
	"github.com/kbukum/assemblyai-go/logger"
	"github.com/kbukum/assemblyai-go/observability"
)

// HeaderRequestID carries the per-request correlation ID.
const HeaderRequestID = "X-Request-Id"

// Adapter is a configurable HTTP adapter with built-in auth, JSON body
// cleaning, chunked uploads, tracing and metrics.
type Adapter struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
	metrics    *observability.Metrics
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *Adapter) {
		if hc != nil {
			a.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(l *logger.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMetrics records request metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(a *Adapter) {
		a.metrics = m
	}
}

// New creates a new HTTP adapter with the given configuration.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Adapter{
		httpClient: &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   cfg.Timeout,
		},
		config: cfg,
	}

	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = logger.WithComponent(cfg.Name)
	}

	return a, nil
}

// Do executes an HTTP request and returns the complete response.
// Non-2xx responses yield a nil *Response and an *Error carrying status and body.
func (a *Adapter) Do(ctx context.Context, req Request) (*Response, error) {
	if req.Body != nil && req.Data != nil {
		if c, ok := req.Data.(io.Closer); ok {
			_ = c.Close()
		}
		return nil, errors.Validation("request accepts a JSON body or a data stream, not both")
	}

	requestID := uuid.NewString()
	ctx, span := observability.StartSpan(ctx, observability.SpanHTTPRequest,
		trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrHTTPMethod, req.Method)
	observability.SetSpanAttribute(ctx, observability.AttrURLPath, routePath(req.Path))
	observability.SetSpanAttribute(ctx, observability.AttrRequestID, requestID)

	if a.metrics != nil {
		a.metrics.RecordRequestStart(ctx)
	}
	start := time.Now()

	resp, err := a.executeRequest(ctx, req, requestID)
	elapsed := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	} else {
		status = StatusCode(err)
	}
	if status > 0 {
		observability.SetSpanAttribute(ctx, observability.AttrHTTPStatusCode, status)
	}
	if a.metrics != nil {
		a.metrics.RecordRequestEnd(ctx, req.Method, routePath(req.Path), status, elapsed)
	}

	fields := logger.MergeWithDuration(logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldMethod, req.Method,
		logger.FieldPath, routePath(req.Path),
		logger.FieldStatusCode, status,
	), elapsed)

	if err != nil {
		observability.SetSpanError(ctx, err)
		span.SetStatus(codes.Error, err.Error())
		if a.metrics != nil {
			a.metrics.RecordError(ctx, errorCode(err), req.Method)
		}
		a.log.WithError(err).Debug("request failed", fields)
		return nil, err
	}

	a.log.Debug("request completed", fields)
	return resp, nil
}

// PathFromURL converts an absolute URL under the configured base URL back to a
// relative path by removing the base URL as a literal prefix. Any query string
// in fullURL is kept.
func (a *Adapter) PathFromURL(fullURL string) (string, error) {
	if a.config.BaseURL == "" || !strings.HasPrefix(fullURL, a.config.BaseURL) {
		return "", errors.InvalidURL(fullURL, a.config.BaseURL)
	}
	return strings.TrimPrefix(fullURL, a.config.BaseURL), nil
}

// Close releases idle connections held by the adapter.
func (a *Adapter) Close(_ context.Context) error {
	a.httpClient.CloseIdleConnections()
	return nil
}

// executeRequest builds and sends the HTTP request.
func (a *Adapter) executeRequest(ctx context.Context, req Request, requestID string) (*Response, error) {
	httpReq, err := a.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set(HeaderRequestID, requestID)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil || isTimeout(err) {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		return nil, classErr
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
		RequestID:  requestID,
	}, nil
}

// buildRequest constructs an *http.Request from the adapter config and request.
func (a *Adapter) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	url := req.Path
	if a.config.BaseURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		url = strings.TrimRight(a.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.Data != nil:
		body = req.Data
		contentType = "application/octet-stream"
	case req.Body != nil:
		data, err := CleanJSON(req.Body)
		if err != nil {
			return nil, errors.Validation(fmt.Sprintf("encode body: %v", err)).WithCause(err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, errors.Validation(fmt.Sprintf("create request: %v", err)).WithCause(err)
	}

	if req.Data != nil {
		// Length is unknown up front; stream the reader in chunks.
		httpReq.ContentLength = -1
		httpReq.TransferEncoding = []string{"chunked"}
		httpReq.GetBody = nil
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	if a.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", a.config.UserAgent)
	}

	for k, v := range a.config.Headers {
		httpReq.Header.Set(k, v)
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	// Applied last so no caller header can replace it.
	a.config.Auth.apply(httpReq)

	return httpReq, nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}

// routePath strips any query string so paths stay low-cardinality in
// spans, metrics and logs.
func routePath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}

func errorCode(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code.String()
	}
	if appErr, ok := errors.AsAppError(err); ok {
		return string(appErr.Code)
	}
	return "unknown"
}

func isTimeout(err error) bool {
	var ne net.Error
	return stderrors.As(err, &ne) && ne.Timeout()
}
