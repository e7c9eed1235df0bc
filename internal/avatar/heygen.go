package avatar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HeyGenConfig holds configuration for the HeyGen backend.
type HeyGenConfig struct {
	APIKey  string
	BaseURL string // default: "https://api.heygen.com"
}

// HeyGen talks to the HeyGen video-generation API. Generation uses the
// v2 surface, status the v1 one; both authenticate with an X-Api-Key
// header.
type HeyGen struct {
	cfg        HeyGenConfig
	httpClient *http.Client
	// Asset URLs are pre-signed and can be slow for large renders, so
	// the download client carries no overall timeout.
	downloadClient *http.Client
}

// NewHeyGen creates a HeyGen client with defaults applied.
func NewHeyGen(cfg HeyGenConfig) *HeyGen {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.heygen.com"
	}
	return &HeyGen{
		cfg:            cfg,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		downloadClient: &http.Client{},
	}
}

func (h *HeyGen) Name() string { return "heygen" }

// Generate forwards the client payload unmodified and returns the
// upstream response body verbatim.
func (h *HeyGen) Generate(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", h.cfg.BaseURL+"/v2/video/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", h.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	return h.do(req, "generate")
}

// Status fetches the raw status JSON for an opaque video identifier.
func (h *HeyGen) Status(ctx context.Context, videoID string) (json.RawMessage, error) {
	statusURL := h.cfg.BaseURL + "/v1/video_status.get?video_id=" + url.QueryEscape(videoID)
	req, err := http.NewRequestWithContext(ctx, "GET", statusURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", h.cfg.APIKey)

	return h.do(req, "status")
}

// ParseStatus reads the nested data.status and data.video_url fields.
func (h *HeyGen) ParseStatus(raw json.RawMessage) (*StatusInfo, error) {
	var resp struct {
		Data struct {
			Status   string `json:"status"`
			VideoURL string `json:"video_url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("parse status response: %w", err)
	}
	return &StatusInfo{
		Status:   resp.Data.Status,
		VideoURL: resp.Data.VideoURL,
	}, nil
}

// Download streams the asset into dest. The video URL is pre-signed,
// so no credential is attached.
func (h *HeyGen) Download(ctx context.Context, videoURL string, dest io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, "GET", videoURL, nil)
	if err != nil {
		return err
	}

	resp, err := h.downloadClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("fetch video failed (status %d)", resp.StatusCode)
	}

	if _, err := io.Copy(dest, resp.Body); err != nil {
		return fmt.Errorf("write video: %w", err)
	}
	return nil
}

func (h *HeyGen) do(req *http.Request, op string) (json.RawMessage, error) {
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("heygen %s request: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("heygen %s read response: %w", op, err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("heygen %s failed (status %d): %s", op, resp.StatusCode, string(body))
	}
	return body, nil
}
