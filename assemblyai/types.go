package assemblyai

import "encoding/json"

// TranscriptConfig holds the fields a caller sets when creating a transcript.
// Nil fields are left to the server's defaults and never sent.
type TranscriptConfig struct {
	AudioURL string `json:"audio_url" validate:"required,url"`

	Punctuate         *bool `json:"punctuate"`
	FormatText        *bool `json:"format_text"`
	DualChannel       *bool `json:"dual_channel"`
	SpeakerLabels     *bool `json:"speaker_labels"`
	ContentSafety     *bool `json:"content_safety"`
	IABCategories     *bool `json:"iab_categories"`
	Disfluencies      *bool `json:"disfluencies"`
	SentimentAnalysis *bool `json:"sentiment_analysis"`
	AutoChapters      *bool `json:"auto_chapters"`
	EntityDetection   *bool `json:"entity_detection"`
	AutoHighlights    *bool `json:"auto_highlights"`
	FilterProfanity   *bool `json:"filter_profanity"`
	RedactPII         *bool `json:"redact_pii"`
	RedactPIIAudio    *bool `json:"redact_pii_audio"`

	WordBoost         []string         `json:"word_boost,omitempty" validate:"omitempty,dive,required"`
	BoostParam        *BoostType       `json:"boost_param" validate:"omitempty,enum"`
	RedactPIISub      *RedactPiiSub    `json:"redact_pii_sub" validate:"omitempty,enum"`
	RedactPIIPolicies []EntityType     `json:"redact_pii_policies,omitempty" validate:"omitempty,dive,enum"`
	LanguageCode      *LanguageCode    `json:"language_code" validate:"omitempty,enum"`
	WebhookURL        *string          `json:"webhook_url" validate:"omitempty,url"`
	AudioStartFrom    *int64           `json:"audio_start_from" validate:"omitempty,min=0"`
	AudioEndAt        *int64           `json:"audio_end_at" validate:"omitempty,min=0"`
	CustomSpelling    []CustomSpelling `json:"custom_spelling,omitempty" validate:"omitempty,dive"`
}

// Transcript is one transcription job. Result fields stay empty until
// Status is StatusCompleted.
type Transcript struct {
	ID     string           `json:"id"`
	Status TranscriptStatus `json:"status,omitempty"`

	TranscriptConfig

	Text              string   `json:"text,omitempty"`
	Confidence        *float64 `json:"confidence,omitempty"`
	AudioDuration     *float64 `json:"audio_duration,omitempty"`
	WebhookStatusCode *int     `json:"webhook_status_code,omitempty"`
	Error             string   `json:"error,omitempty"`

	Words                    []UtteredWord             `json:"words,omitempty"`
	Utterances               []Utterance               `json:"utterances,omitempty"`
	Chapters                 []Chapter                 `json:"chapters,omitempty"`
	Entities                 []DetectedEntity          `json:"entities,omitempty"`
	SentimentAnalysisResults []SentimentAnalysisResult `json:"sentiment_analysis_results,omitempty"`
	ContentSafetyLabels      *ContentSafetyLabels      `json:"content_safety_labels,omitempty"`
	IABCategoriesResult      *IABCategoriesResult      `json:"iab_categories_result,omitempty"`
	AutoHighlightsResult     *AutoHighlightsResult     `json:"auto_highlights_result,omitempty"`
}

// IsCompleted reports whether the transcript finished processing successfully.
func (t *Transcript) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsFailed reports whether the transcript ended in error.
func (t *Transcript) IsFailed() bool {
	return t.Status == StatusError
}

// Upload is the result of uploading raw audio.
type Upload struct {
	UploadURL string `json:"upload_url"`
}

// UtteredWord is a word or sentence with its timing in milliseconds.
type UtteredWord struct {
	Start      int64   `json:"start"`
	End        int64   `json:"end"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Speaker    *string `json:"speaker,omitempty"`
}

// Utterance is an uninterrupted stretch of speech by one speaker.
type Utterance struct {
	Start      int64         `json:"start"`
	End        int64         `json:"end"`
	Text       string        `json:"text"`
	Confidence float64       `json:"confidence"`
	Speaker    *string       `json:"speaker,omitempty"`
	Words      []UtteredWord `json:"words"`
}

// Chapter is an auto-generated summary of one section of the audio.
type Chapter struct {
	Start    int64  `json:"start"`
	End      int64  `json:"end"`
	Summary  string `json:"summary"`
	Gist     string `json:"gist"`
	Headline string `json:"headline"`
}

// DetectedEntity is an entity found by entity detection, with ms offsets.
type DetectedEntity struct {
	EntityType EntityType `json:"entity_type"`
	Text       string     `json:"text"`
	Start      int64      `json:"start"`
	End        int64      `json:"end"`
}

// SentimentAnalysisResult is the sentiment of one sentence.
type SentimentAnalysisResult struct {
	Text       string    `json:"text"`
	Start      int64     `json:"start"`
	End        int64     `json:"end"`
	Sentiment  Sentiment `json:"sentiment"`
	Confidence float64   `json:"confidence"`
	Speaker    *string   `json:"speaker,omitempty"`
}

// CustomSpelling replaces every spelling in From with To.
type CustomSpelling struct {
	From []string `json:"from" validate:"required,min=1"`
	To   string   `json:"to" validate:"required"`
}

// Model result statuses.
const (
	ResultSuccess     = "success"
	ResultUnavailable = "unavailable"
)

// ContentSafetyLabels is the content moderation result. Results and Summary
// are kept raw.
type ContentSafetyLabels struct {
	Status  string          `json:"status"`
	Results json.RawMessage `json:"results,omitempty"`
	Summary json.RawMessage `json:"summary,omitempty"`
}

// IABCategoriesResult is the topic detection result.
type IABCategoriesResult struct {
	Status  string          `json:"status"`
	Results json.RawMessage `json:"results,omitempty"`
	Summary json.RawMessage `json:"summary,omitempty"`
}

// AutoHighlightsResult is the key phrase detection result.
type AutoHighlightsResult struct {
	Status  string          `json:"status"`
	Results json.RawMessage `json:"results,omitempty"`
}

// PageDetails is the cursor embedded in a list response.
type PageDetails struct {
	Limit       int     `json:"limit"`
	ResultCount int     `json:"result_count"`
	CurrentURL  *string `json:"current_url"`
	PrevURL     *string `json:"prev_url"`
	NextURL     *string `json:"next_url"`
}

// TranscriptList is one page of the list-transcripts response.
type TranscriptList struct {
	Transcripts []Transcript `json:"transcripts"`
	PageDetails PageDetails  `json:"page_details"`
}

// StreamPayload is the response to a raw streaming call.
type StreamPayload struct {
	Status     string        `json:"status"`
	Text       string        `json:"text"`
	Words      []UtteredWord `json:"words"`
	Confidence float64       `json:"confidence"`
	Created    string        `json:"created"`
}

type sentencesResponse struct {
	Sentences []UtteredWord `json:"sentences"`
}

type paragraphsResponse struct {
	Paragraphs []Utterance `json:"paragraphs"`
}
