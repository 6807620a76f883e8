package assemblyai

import (
	"context"
	"io"
	"net/http"

	"github.com/kbukum/assemblyai-go/httpclient"
	"github.com/kbukum/assemblyai-go/logger"
	"github.com/kbukum/assemblyai-go/observability"
	"github.com/kbukum/assemblyai-go/version"
)

// Client talks to the AssemblyAI v2 API. It owns the underlying transport;
// the endpoint groups only refer back to it. A Client is safe for
// concurrent use.
type Client struct {
	adapter   *httpclient.Adapter
	config    Config
	log       *logger.Logger
	chunkSize int

	Transcript *TranscriptEndpoint
	Upload     *UploadEndpoint
	Stream     *StreamEndpoint
}

type clientOptions struct {
	log        *logger.Logger
	metrics    *observability.Metrics
	httpClient *http.Client
	chunkSize  int
}

// Option configures a Client.
type Option func(*clientOptions)

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *clientOptions) { o.log = l }
}

// WithMetrics records request metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *clientOptions) { o.metrics = m }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithChunkSize overrides the file upload chunk size.
func WithChunkSize(n int) Option {
	return func(o *clientOptions) { o.chunkSize = n }
}

// New creates a Client from cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.chunkSize > 0 {
		cfg.ChunkSize = o.chunkSize
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := o.log
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	log = log.WithComponent("assemblyai")

	adapterOpts := []httpclient.Option{
		httpclient.WithLogger(log),
		httpclient.WithHTTPClient(o.httpClient),
	}
	if o.metrics != nil {
		adapterOpts = append(adapterOpts, httpclient.WithMetrics(o.metrics))
	}

	adapter, err := httpclient.New(httpclient.Config{
		Name:      "assemblyai",
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		Auth:      httpclient.APIKeyAuthHeader(cfg.APIKey, "authorization"),
		UserAgent: version.UserAgent(),
	}, adapterOpts...)
	if err != nil {
		return nil, err
	}

	c := &Client{
		adapter:   adapter,
		config:    cfg,
		log:       log,
		chunkSize: cfg.ChunkSize,
	}
	c.Transcript = &TranscriptEndpoint{client: c}
	c.Upload = &UploadEndpoint{client: c}
	c.Stream = &StreamEndpoint{client: c}
	return c, nil
}

// NewFromAPIKey creates a Client against the default base URL.
func NewFromAPIKey(apiKey string, opts ...Option) (*Client, error) {
	return New(Config{APIKey: apiKey}, opts...)
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Close releases idle connections.
func (c *Client) Close(ctx context.Context) error {
	return c.adapter.Close(ctx)
}

// RequestOption configures a single call to Request.
type RequestOption func(*httpclient.Request)

// WithQuery sets URL query parameters.
func WithQuery(q map[string]string) RequestOption {
	return func(r *httpclient.Request) {
		if r.Query == nil {
			r.Query = make(map[string]string, len(q))
		}
		for k, v := range q {
			r.Query[k] = v
		}
	}
}

// WithBody sets a JSON body. Null-valued keys are removed before sending.
func WithBody(body any) RequestOption {
	return func(r *httpclient.Request) { r.Body = body }
}

// WithData streams data as the raw request body.
func WithData(data io.Reader) RequestOption {
	return func(r *httpclient.Request) { r.Data = data }
}

// WithHeaders adds request headers. The authorization header cannot be
// replaced this way.
func WithHeaders(h map[string]string) RequestOption {
	return func(r *httpclient.Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string, len(h))
		}
		for k, v := range h {
			r.Headers[k] = v
		}
	}
}

// Request sends an authenticated request to path, relative to the base URL.
// A non-2xx status yields an *httpclient.Error and no response.
func (c *Client) Request(ctx context.Context, path, method string, opts ...RequestOption) (*httpclient.Response, error) {
	return c.adapter.Do(ctx, newRequest(path, method, opts))
}

// PathFromFullURL turns an absolute URL returned by the API into a path
// relative to the base URL. URLs outside the base URL fail with INVALID_URL.
func (c *Client) PathFromFullURL(fullURL string) (string, error) {
	return c.adapter.PathFromURL(fullURL)
}

// call sends a request and decodes the JSON response into T.
func call[T any](ctx context.Context, c *Client, path, method string, opts ...RequestOption) (T, error) {
	var zero T
	resp, err := httpclient.Send[T](c.adapter, ctx, newRequest(path, method, opts))
	if err != nil {
		return zero, err
	}
	return resp.Data, nil
}

func newRequest(path, method string, opts []RequestOption) httpclient.Request {
	req := httpclient.Request{Method: method, Path: path}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}
