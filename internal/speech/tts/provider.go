package tts

import "context"

// SynthesisRequest holds the text to speak.
type SynthesisRequest struct {
	Text string
}

// SynthesisResult holds the fully drained audio and its content type.
// Audio is complete before the result exists, so the caller can promise
// an exact Content-Length to the client.
type SynthesisResult struct {
	Audio       []byte
	ContentType string
}

// Provider is the interface for text-to-speech backends.
type Provider interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error)
	Name() string
}
