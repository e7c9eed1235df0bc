package handlers

import (
	"net/http"

	"github.com/gafur55/interactive-ai-backend/internal/apierr"
	"github.com/gafur55/interactive-ai-backend/internal/llm"
)

type ChatHandler struct {
	provider llm.Provider
	apiKey   string
}

func NewChatHandler(provider llm.Provider, apiKey string) *ChatHandler {
	return &ChatHandler{provider: provider, apiKey: apiKey}
}

// Complete runs one conversation-free completion for a form-encoded
// prompt.
func (h *ChatHandler) Complete(w http.ResponseWriter, r *http.Request) {
	prompt := r.PostFormValue("prompt")
	if prompt == "" {
		respondError(w, apierr.Validation("prompt required"))
		return
	}

	if h.apiKey == "" {
		respondError(w, apierr.Configuration("OPENAI_API_KEY is missing"))
		return
	}

	reply, err := h.provider.Complete(r.Context(), prompt)
	if err != nil {
		respondError(w, apierr.Provider("chat failed", err).WithStatus(http.StatusInternalServerError))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
