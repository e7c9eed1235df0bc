package stt

import "context"

// TranscriptionRequest holds the audio to transcribe. Filename is only
// a hint for the upstream model's container detection; empty means the
// adapter applies its webm default.
type TranscriptionRequest struct {
	Audio    []byte
	Filename string
}

// TranscriptionResult holds the transcription text.
type TranscriptionResult struct {
	Text string `json:"text"`
}

// Provider is the interface for speech-to-text backends.
type Provider interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (*TranscriptionResult, error)
	Name() string
}
