package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gafur55/interactive-ai-backend/internal/apierr"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError is the single exit point for failures. Every error is
// classified (unclassified ones become internal 500s) and rendered as
// a JSON object; nothing propagates past the handler unformatted.
func respondError(w http.ResponseWriter, err error) {
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		ae = apierr.Internal(err)
	}

	status := ae.HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "kind", ae.Kind, "error", ae.Error())
	} else {
		slog.Warn("request rejected", "kind", ae.Kind, "error", ae.Error())
	}

	body := map[string]interface{}{"error": ae.Error()}
	for k, v := range ae.Details {
		body[k] = v
	}
	writeJSON(w, status, body)
}
