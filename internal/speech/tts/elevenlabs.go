package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gafur55/interactive-ai-backend/internal/apierr"
)

// Provider-specific constants. The relay exposes no voice or model
// selection; these are part of the upstream contract, not the API.
const (
	voiceID = "JBFqnCBsd6RMkjVDRZzb"
	modelID = "eleven_multilingual_v2"

	// bodyPreviewLimit caps how much of an upstream error body is
	// relayed to the client.
	bodyPreviewLimit = 2048
)

// ElevenLabsConfig holds configuration for the ElevenLabs backend.
type ElevenLabsConfig struct {
	APIKey  string
	BaseURL string        // default: "https://api.elevenlabs.io"
	Timeout time.Duration // default: 60s
}

// ElevenLabsTTS synthesizes speech through the ElevenLabs HTTP API.
type ElevenLabsTTS struct {
	cfg        ElevenLabsConfig
	httpClient *http.Client
}

// NewElevenLabsTTS creates an ElevenLabsTTS with defaults applied.
func NewElevenLabsTTS(cfg ElevenLabsConfig) *ElevenLabsTTS {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.elevenlabs.io"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &ElevenLabsTTS{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (e *ElevenLabsTTS) Name() string { return "elevenlabs" }

// Synthesize requests MPEG audio and drains the full response before
// returning. Failures come back as typed errors: timeouts map to 504,
// anything else upstream-related to 502.
func (e *ElevenLabsTTS) Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error) {
	payload, err := json.Marshal(map[string]string{
		"text":     req.Text,
		"model_id": modelID,
	})
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("marshal request: %w", err))
	}

	url := e.cfg.BaseURL + "/v1/text-to-speech/" + voiceID
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return nil, apierr.Internal(err)
	}
	httpReq.Header.Set("xi-api-key", e.cfg.APIKey)
	httpReq.Header.Set("Accept", "audio/mpeg")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, apierr.Timeout("TTS timed out")
		}
		return nil, apierr.Provider("TTS network error", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, apierr.Timeout("TTS timed out")
		}
		return nil, apierr.Provider("TTS network error", err)
	}

	ct := resp.Header.Get("Content-Type")
	if resp.StatusCode != http.StatusOK {
		return nil, apierr.Provider("TTS provider error", nil).
			WithDetail("status", resp.StatusCode).
			WithDetail("content_type", ct).
			WithDetail("body", bodyPreview(ct, body))
	}

	if len(body) == 0 {
		return nil, apierr.Provider("empty audio from TTS provider", nil)
	}

	return &SynthesisResult{
		Audio:       body,
		ContentType: "audio/mpeg",
	}, nil
}

// bodyPreview relays up to bodyPreviewLimit bytes of a textual error
// body, or a byte-count placeholder for opaque content types.
func bodyPreview(contentType string, body []byte) string {
	if strings.Contains(contentType, "json") || strings.Contains(contentType, "text") {
		if len(body) > bodyPreviewLimit {
			body = body[:bodyPreviewLimit]
		}
		return string(body)
	}
	return fmt.Sprintf("<%s %d bytes>", contentType, len(body))
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
