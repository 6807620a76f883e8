package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/assemblyai-go/assemblyai"
)

func (a *app) uploadCmd() *cobra.Command {
	var transcribe bool

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a local audio file",
		Long: `Upload streams a local audio file to the API in fixed-size chunks and prints
the upload_url it can be transcribed from. With --transcribe a transcript is
created from the uploaded file right away.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}

			upload, err := client.Upload.UploadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !transcribe {
				return printJSON(cmd.OutOrStdout(), upload)
			}

			t := assemblyai.Transcript{}
			t.AudioURL = upload.UploadURL
			created, err := client.Transcript.Create(cmd.Context(), t)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), created)
		},
	}
	cmd.Flags().BoolVar(&transcribe, "transcribe", false, "create a transcript from the uploaded file")
	return cmd
}
