// Package config loads client and CLI configuration.
//
// Values come from an assemblyai.yml file, a .env file and the process
// environment, in increasing order of precedence. Environment variables are
// matched by prefix and mapped onto nested keys, so ASSEMBLYAI_API_KEY sets
// assemblyai.api_key and ASSEMBLYAI_LOGGING_LEVEL sets assemblyai.logging.level.
//
//	cfg, err := config.Load(config.WithEnvFile(".env"))
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
