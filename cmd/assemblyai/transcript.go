package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/assemblyai-go/assemblyai"
	"github.com/kbukum/assemblyai-go/errors"
	"github.com/kbukum/assemblyai-go/util"
)

func (a *app) transcriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transcript",
		Aliases: []string{"transcripts", "t"},
		Short:   "Create, fetch, list and delete transcripts",
	}
	cmd.AddCommand(
		a.transcriptCreateCmd(),
		a.transcriptGetCmd(),
		a.transcriptSentencesCmd(),
		a.transcriptParagraphsCmd(),
		a.transcriptListCmd(),
		a.transcriptDeleteCmd(),
	)
	return cmd
}

func (a *app) transcriptCreateCmd() *cobra.Command {
	var (
		audioURL     string
		languageCode string
		boostParam   string
		webhookURL   string
		wordBoost    []string
		piiPolicies  []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit audio for transcription",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}

			t := assemblyai.Transcript{}
			t.AudioURL = audioURL
			t.WordBoost = wordBoost
			t.Punctuate = changedBool(cmd, "punctuate")
			t.FormatText = changedBool(cmd, "format-text")
			t.DualChannel = changedBool(cmd, "dual-channel")
			t.SpeakerLabels = changedBool(cmd, "speaker-labels")
			t.AutoChapters = changedBool(cmd, "auto-chapters")
			t.EntityDetection = changedBool(cmd, "entity-detection")
			t.SentimentAnalysis = changedBool(cmd, "sentiment-analysis")
			t.AutoHighlights = changedBool(cmd, "auto-highlights")
			t.FilterProfanity = changedBool(cmd, "filter-profanity")
			t.RedactPII = changedBool(cmd, "redact-pii")
			for _, p := range piiPolicies {
				t.RedactPIIPolicies = append(t.RedactPIIPolicies, assemblyai.EntityType(p))
			}
			if languageCode != "" {
				t.LanguageCode = util.Ptr(assemblyai.LanguageCode(languageCode))
			}
			if boostParam != "" {
				t.BoostParam = util.Ptr(assemblyai.BoostType(boostParam))
			}
			t.WebhookURL = util.NilIfZero(webhookURL)

			created, err := client.Transcript.Create(cmd.Context(), t)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), created)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&audioURL, "audio-url", "", "publicly reachable audio URL")
	flags.StringVar(&languageCode, "language-code", "", "language code, e.g. en_us")
	flags.StringVar(&boostParam, "boost-param", "", "word boost weight: low, default or high")
	flags.StringVar(&webhookURL, "webhook-url", "", "URL notified when the transcript completes")
	flags.StringSliceVar(&wordBoost, "word-boost", nil, "words to boost (comma separated)")
	flags.Bool("punctuate", true, "add punctuation")
	flags.Bool("format-text", true, "format text (casing, numbers)")
	flags.Bool("dual-channel", false, "transcribe each channel separately")
	flags.Bool("speaker-labels", false, "detect speakers")
	flags.Bool("auto-chapters", false, "summarize chapters")
	flags.Bool("entity-detection", false, "detect entities")
	flags.Bool("sentiment-analysis", false, "analyze sentiment per sentence")
	flags.Bool("auto-highlights", false, "extract key phrases")
	flags.Bool("filter-profanity", false, "mask profanity")
	flags.Bool("redact-pii", false, "redact personally identifiable information")
	flags.StringSliceVar(&piiPolicies, "redact-pii-policies", nil,
		"entity types to redact, any of: "+strings.Join(entityTypeNames(), ", "))
	_ = cmd.MarkFlagRequired("audio-url")
	return cmd
}

func (a *app) transcriptGetCmd() *cobra.Command {
	var withSentences bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}

			t, err := client.Transcript.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !withSentences {
				return printJSON(cmd.OutOrStdout(), t)
			}

			sentences, err := client.Transcript.Sentences(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), struct {
				Transcript *assemblyai.Transcript   `json:"transcript"`
				Sentences  []assemblyai.UtteredWord `json:"sentences"`
			}{t, sentences})
		},
	}
	cmd.Flags().BoolVar(&withSentences, "sentences", false, "also fetch the sentence split")
	return cmd
}

func (a *app) transcriptSentencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sentences <id>",
		Short: "Fetch a transcript split into sentences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}
			sentences, err := client.Transcript.Sentences(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), sentences)
		},
	}
}

func (a *app) transcriptParagraphsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paragraphs <id>",
		Short: "Fetch a transcript split into paragraphs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}
			paragraphs, err := client.Transcript.Paragraphs(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), paragraphs)
		},
	}
}

func (a *app) transcriptListCmd() *cobra.Command {
	var (
		all       bool
		limit     int
		status    string
		createdOn string
		beforeID  string
		afterID   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transcripts (first page unless --all)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}

			params := assemblyai.ListParams{
				BeforeID:      util.NilIfZero(beforeID),
				AfterID:       util.NilIfZero(afterID),
				ThrottledOnly: changedBool(cmd, "throttled-only"),
				FirstPageOnly: util.Ptr(!all),
			}
			if cmd.Flags().Changed("limit") {
				params.Limit = util.Ptr(limit)
			}
			if status != "" {
				params.Status = util.Ptr(assemblyai.TranscriptStatus(status))
			}
			if createdOn != "" {
				day, err := time.Parse("2006-01-02", createdOn)
				if err != nil {
					return errors.InvalidFormat("created_on", "YYYY-MM-DD")
				}
				params.CreatedOn = &day
			}

			transcripts, err := client.Transcript.All(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), transcripts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&all, "all", false, "follow next_url through every page")
	flags.IntVar(&limit, "limit", 0, "page size (1-200)")
	flags.StringVar(&status, "status", "", "queued, processing, completed or error")
	flags.StringVar(&createdOn, "created-on", "", "creation date, YYYY-MM-DD")
	flags.StringVar(&beforeID, "before-id", "", "only transcripts created before this id")
	flags.StringVar(&afterID, "after-id", "", "only transcripts created after this id")
	flags.Bool("throttled-only", false, "only throttled transcripts")
	return cmd
}

func (a *app) transcriptDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}
			if err := client.Transcript.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return err
		},
	}
}

func entityTypeNames() []string {
	types := assemblyai.EntityTypes()
	names := make([]string, len(types))
	for i, e := range types {
		names[i] = e.String()
	}
	return names
}

// changedBool returns the flag value only when it was set explicitly.
func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}
