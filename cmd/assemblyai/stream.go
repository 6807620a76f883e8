package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/assemblyai-go/assemblyai"
)

func (a *app) streamCmd() *cobra.Command {
	var opts assemblyai.StreamOptions

	cmd := &cobra.Command{
		Use:   "stream <file>",
		Short: "Transcribe a short raw audio clip synchronously",
		Long: `Stream reads a short clip of raw 16-bit PCM audio, sends it base64 encoded to
the stream endpoint and prints the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}

			audio, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read audio: %w", err)
			}

			payload, err := client.Stream.StreamRaw(cmd.Context(), base64.StdEncoding.EncodeToString(audio), opts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), payload)
		},
	}
	cmd.Flags().BoolVar(&opts.FormatText, "format-text", true, "format text (casing, numbers)")
	cmd.Flags().BoolVar(&opts.Punctuate, "punctuate", true, "add punctuation")
	return cmd
}
