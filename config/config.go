package config

import (
	"fmt"

	"github.com/kbukum/assemblyai-go/assemblyai"
	"github.com/kbukum/assemblyai-go/logger"
	"github.com/kbukum/assemblyai-go/observability"
	"github.com/kbukum/assemblyai-go/util"
	"github.com/kbukum/assemblyai-go/version"
)

// ServiceName is the config file stem, top-level key and env prefix.
const ServiceName = "assemblyai"

// Config is the complete configuration of the CLI. The client settings are
// squashed so api_key and base_url sit directly under the assemblyai key.
//
//	assemblyai:
//	  api_key: ...
//	  timeout: 45s
//	  logging:
//	    level: debug
//	  observability:
//	    enabled: true
type Config struct {
	assemblyai.Config `yaml:",inline" mapstructure:",squash"`
	Logging           logger.Config        `yaml:"logging" mapstructure:"logging"`
	Observability     observability.Config `yaml:"observability" mapstructure:"observability"`
}

type document struct {
	AssemblyAI Config `yaml:"assemblyai" mapstructure:"assemblyai"`
}

// Load resolves and reads the configuration, then applies defaults.
// It does not validate; commands that need an API key call Validate.
func Load(opts ...LoaderOption) (*Config, error) {
	var doc document
	if err := LoadConfig(ServiceName, &doc, opts...); err != nil {
		return nil, err
	}
	cfg := doc.AssemblyAI
	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills in zero values of every section.
func (c *Config) ApplyDefaults() {
	c.APIKey = util.SanitizeEnvValue(c.APIKey)
	c.BaseURL = util.SanitizeEnvValue(c.BaseURL)
	c.Config.ApplyDefaults()
	c.Logging.ApplyDefaults()

	c.Observability.ServiceVersion = util.Coalesce(c.Observability.ServiceVersion, version.Version)
	c.Observability.ApplyDefaults()
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("assemblyai.%w", err)
	}
	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("assemblyai.%w", err)
	}
	return nil
}
