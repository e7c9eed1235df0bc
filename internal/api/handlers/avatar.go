package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/gafur55/interactive-ai-backend/internal/apierr"
	"github.com/gafur55/interactive-ai-backend/internal/avatar"
)

type AvatarHandler struct {
	provider avatar.Provider
	apiKey   string
	// downloadDir receives fetched videos; empty means the process
	// working directory.
	downloadDir string
}

func NewAvatarHandler(provider avatar.Provider, apiKey, downloadDir string) *AvatarHandler {
	return &AvatarHandler{provider: provider, apiKey: apiKey, downloadDir: downloadDir}
}

// Generate relays a provider-schema JSON payload and returns the
// upstream response verbatim, job identifier field included.
func (h *AvatarHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if h.apiKey == "" {
		respondError(w, apierr.Configuration("HEYGEN_API_KEY missing"))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(body) {
		respondError(w, apierr.Validation("invalid JSON body"))
		return
	}

	raw, err := h.provider.Generate(r.Context(), body)
	if err != nil {
		respondError(w, apierr.Provider("avatar generation failed", err))
		return
	}

	writeRawJSON(w, raw)
}

// Status relays the provider's status JSON for an opaque job id.
func (h *AvatarHandler) Status(w http.ResponseWriter, r *http.Request) {
	if h.apiKey == "" {
		respondError(w, apierr.Configuration("HEYGEN_API_KEY missing"))
		return
	}

	videoID := chi.URLParam(r, "video_id")

	raw, err := h.provider.Status(r.Context(), videoID)
	if err != nil {
		respondError(w, apierr.Provider("avatar status failed", err))
		return
	}

	writeRawJSON(w, raw)
}

// Download checks the job's status and, once completed, persists the
// asset next to the process. A job that is still rendering yields a
// plain informational message, not an error: the client is expected
// to poll again.
func (h *AvatarHandler) Download(w http.ResponseWriter, r *http.Request) {
	if h.apiKey == "" {
		respondError(w, apierr.Configuration("HEYGEN_API_KEY missing"))
		return
	}

	videoID := chi.URLParam(r, "video_id")

	raw, err := h.provider.Status(r.Context(), videoID)
	if err != nil {
		respondError(w, apierr.Provider("video download failed", err).WithStatus(http.StatusInternalServerError))
		return
	}

	info, err := h.provider.ParseStatus(raw)
	if err != nil {
		respondError(w, apierr.Provider("video download failed", err).WithStatus(http.StatusInternalServerError))
		return
	}

	if info.Status != avatar.StatusCompleted {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Video not ready yet, status: %s", info.Status),
		})
		return
	}

	// Completed but no URL means the provider contract changed; a soft
	// application-level error keeps that visible without masking it as
	// a transport fault.
	if info.VideoURL == "" {
		writeJSON(w, http.StatusOK, map[string]string{
			"error": fmt.Sprintf("no video_url in %s response", h.provider.Name()),
		})
		return
	}

	path, err := h.saveVideo(r, info.VideoURL, videoID)
	if err != nil {
		respondError(w, apierr.Provider("video download failed", err).WithStatus(http.StatusInternalServerError))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Video downloaded",
		"file":    path,
	})
}

func (h *AvatarHandler) saveVideo(r *http.Request, videoURL, videoID string) (string, error) {
	dir := h.downloadDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}

	// The job id is opaque and reused unmodified; one filename per id.
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.mp4", h.provider.Name(), videoID))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := h.provider.Download(r.Context(), videoURL, f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

func writeRawJSON(w http.ResponseWriter, raw json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}
