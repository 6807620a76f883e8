// Package assemblyai is a client for the AssemblyAI v2 transcription API.
//
// A Client owns the HTTP transport and exposes three endpoint groups:
// Transcript (create, get, sentences, paragraphs, delete, list), Upload (raw
// bytes or a file read in chunks) and Stream (one-shot base64 audio).
//
//	client, err := assemblyai.New(assemblyai.Config{APIKey: key})
//	t, err := client.Transcript.Create(ctx, assemblyai.Transcript{
//	    TranscriptConfig: assemblyai.TranscriptConfig{AudioURL: url},
//	})
//
// # Listing transcripts
//
// TranscriptEndpoint.All returns only the first page unless
// ListParams.FirstPageOnly is explicitly set to false:
//
//	firstPage, err := client.Transcript.All(ctx, assemblyai.ListParams{})
//	everything, err := client.Transcript.All(ctx, assemblyai.ListParams{
//	    FirstPageOnly: util.Ptr(false),
//	})
//
// # Errors
//
// Argument problems are reported before any request is sent (IsValidation).
// Non-2xx responses are *httpclient.Error (IsHTTPStatus), network failures
// are IsTransport, cursor URLs outside the base URL are IsInvalidURL and
// undecodable bodies, including unknown enum values, are IsDeserialization.
package assemblyai
