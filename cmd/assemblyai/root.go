package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/assemblyai-go/assemblyai"
	"github.com/kbukum/assemblyai-go/config"
	"github.com/kbukum/assemblyai-go/logger"
	"github.com/kbukum/assemblyai-go/observability"
)

const shutdownTimeout = 5 * time.Second

// app carries the global flags and the resources built from them.
type app struct {
	configFile string
	envFile    string
	apiKey     string
	baseURL    string
	verbose    bool

	cfg      *config.Config
	client   *assemblyai.Client
	shutdown observability.ShutdownFunc
}

// run executes the CLI with args and releases everything it opened.
func run(ctx context.Context, args []string) error {
	a := &app{}
	root := a.rootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if hint := errorHint(err); hint != "" {
		fmt.Fprintln(root.ErrOrStderr(), "hint:", hint)
	}
	if cerr := a.close(); cerr != nil {
		logger.Warn("cleanup failed", logger.ErrorFields("close", cerr))
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "assemblyai",
		Short: "Work with AssemblyAI transcripts from the command line",
		Long: `assemblyai creates, fetches, lists and deletes transcripts, uploads local
audio files and sends short base64 clips to the synchronous stream endpoint.

Configuration is read from assemblyai.yml, .env and ASSEMBLYAI_* environment
variables; flags take precedence.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: search for assemblyai.yml)")
	flags.StringVar(&a.envFile, "env-file", "", ".env file (default: search for .env)")
	flags.StringVar(&a.apiKey, "api-key", "", "API key (overrides ASSEMBLYAI_API_KEY)")
	flags.StringVar(&a.baseURL, "base-url", "", "API base URL (overrides ASSEMBLYAI_BASE_URL)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.transcriptCmd(),
		a.uploadCmd(),
		a.streamCmd(),
		versionCmd(),
	)
	return root
}

// setup loads configuration and starts logging and telemetry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var opts []config.LoaderOption
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	if a.envFile != "" {
		opts = append(opts, config.WithEnvFile(a.envFile))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	if a.apiKey != "" {
		cfg.APIKey = a.apiKey
	}
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	cfg.ApplyDefaults()

	if err := cfg.Logging.Validate(); err != nil {
		return err
	}
	logger.Init(cfg.Logging)

	shutdown, err := observability.Init(cmd.Context(), cfg.Observability)
	if err != nil {
		return fmt.Errorf("observability: %w", err)
	}

	a.cfg = cfg
	a.shutdown = shutdown
	return nil
}

// apiClient builds the client on first use, so commands that never call the
// API do not need a key.
func (a *app) apiClient() (*assemblyai.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []assemblyai.Option{assemblyai.WithLogger(logger.WithComponent("assemblyai"))}
	if a.cfg.Observability.Enabled {
		metrics, err := observability.NewMetrics(observability.Meter("assemblyai-cli"))
		if err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
		opts = append(opts, assemblyai.WithMetrics(metrics))
	}

	client, err := assemblyai.New(a.cfg.Config, opts...)
	if err != nil {
		return nil, err
	}
	a.client = client
	return client, nil
}

func (a *app) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if a.client != nil {
		errs = append(errs, a.client.Close(ctx))
	}
	if a.shutdown != nil {
		errs = append(errs, a.shutdown(ctx))
	}
	return errors.Join(errs...)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
