package apierr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", Validation("empty audio file"), http.StatusBadRequest},
		{"configuration", Configuration("key missing"), http.StatusInternalServerError},
		{"provider default", Provider("upstream broke", nil), http.StatusBadGateway},
		{"provider override", Provider("upstream broke", nil).WithStatus(http.StatusInternalServerError), http.StatusInternalServerError},
		{"timeout", Timeout("upstream slow"), http.StatusGatewayTimeout},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "empty audio file", Validation("empty audio file").Error())

	wrapped := Provider("tts network error", errors.New("connection refused"))
	assert.Equal(t, "tts network error: connection refused", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Provider("tts network error", cause)
	assert.True(t, errors.Is(err, cause))
}

func TestWithDetail(t *testing.T) {
	err := Provider("TTS provider error", nil).
		WithDetail("status", 401).
		WithDetail("content_type", "application/json")

	assert.Equal(t, 401, err.Details["status"])
	assert.Equal(t, "application/json", err.Details["content_type"])
}
