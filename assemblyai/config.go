package assemblyai

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the versioned API root every path is resolved against.
	DefaultBaseURL = "https://api.assemblyai.com/v2/"

	defaultTimeout = 30 * time.Second
)

// Config configures a Client.
type Config struct {
	// APIKey is sent verbatim in the authorization header.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Timeout bounds each HTTP request. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// ChunkSize is the read size for file uploads. Defaults to DefaultChunkSize.
	ChunkSize int `yaml:"chunk_size" mapstructure:"chunk_size"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("assemblyai.api_key is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("assemblyai.base_url must be an absolute URL (got: %q)", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("assemblyai.timeout must be positive")
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("assemblyai.chunk_size must be positive")
	}
	return nil
}
