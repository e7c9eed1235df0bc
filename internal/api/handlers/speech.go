package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gafur55/interactive-ai-backend/internal/apierr"
	"github.com/gafur55/interactive-ai-backend/internal/speech/stt"
	"github.com/gafur55/interactive-ai-backend/internal/speech/tts"
)

type SpeechHandler struct {
	stt       stt.Provider
	tts       tts.Provider
	openaiKey string
	elevenKey string
}

func NewSpeechHandler(sttProvider stt.Provider, ttsProvider tts.Provider, openaiKey, elevenKey string) *SpeechHandler {
	return &SpeechHandler{
		stt:       sttProvider,
		tts:       ttsProvider,
		openaiKey: openaiKey,
		elevenKey: elevenKey,
	}
}

// Transcribe accepts a multipart audio upload and returns its text.
// Validation and the credential check both run before any upstream
// call.
func (h *SpeechHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, apierr.Validation("audio file required"))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		respondError(w, apierr.Internal(err))
		return
	}
	if len(audio) == 0 {
		respondError(w, apierr.Validation("Empty audio file"))
		return
	}

	if h.openaiKey == "" {
		respondError(w, apierr.Configuration("OPENAI_API_KEY is missing"))
		return
	}

	result, err := h.stt.Transcribe(r.Context(), stt.TranscriptionRequest{
		Audio:    audio,
		Filename: header.Filename,
	})
	if err != nil {
		respondError(w, apierr.Provider("transcription failed", err).WithStatus(http.StatusInternalServerError))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Synthesize converts form-encoded text to MPEG audio and relays the
// full body with an exact Content-Length.
func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	text := r.PostFormValue("text")
	if strings.TrimSpace(text) == "" {
		respondError(w, apierr.Validation("Missing 'text'"))
		return
	}

	if h.elevenKey == "" {
		respondError(w, apierr.Configuration("ELEVEN_API_KEY is missing"))
		return
	}

	result, err := h.tts.Synthesize(r.Context(), tts.SynthesisRequest{Text: text})
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", `inline; filename="speech.mp3"`)
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Accept-Ranges", "bytes")
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Audio)))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Audio)
}
