package avatar

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassesPayloadVerbatim(t *testing.T) {
	payload := json.RawMessage(`{"video_inputs":[{"character":{"avatar_id":"anna"}}],"dimension":{"width":1280}}`)
	upstream := `{"error":null,"data":{"video_id":"vid-123"}}`

	var gotBody []byte
	var gotKey, gotCT string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/video/generate", r.URL.Path)
		gotKey = r.Header.Get("X-Api-Key")
		gotCT = r.Header.Get("Content-Type")
		var err error
		gotBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstream))
	}))
	defer srv.Close()

	h := NewHeyGen(HeyGenConfig{APIKey: "hg-test", BaseURL: srv.URL})

	raw, err := h.Generate(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, []byte(payload), gotBody)
	assert.Equal(t, "hg-test", gotKey)
	assert.Equal(t, "application/json", gotCT)
	assert.JSONEq(t, upstream, string(raw))
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid avatar_id"}}`))
	}))
	defer srv.Close()

	h := NewHeyGen(HeyGenConfig{APIKey: "hg-test", BaseURL: srv.URL})

	_, err := h.Generate(context.Background(), json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "invalid avatar_id")
}

func TestStatusPassesIDOpaque(t *testing.T) {
	var gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/video_status.get", r.URL.Path)
		require.Equal(t, "hg-test", r.Header.Get("X-Api-Key"))
		gotQuery = r.URL.Query().Get("video_id")

		w.Write([]byte(`{"error":null,"data":{"status":"processing"}}`))
	}))
	defer srv.Close()

	h := NewHeyGen(HeyGenConfig{APIKey: "hg-test", BaseURL: srv.URL})

	raw, err := h.Status(context.Background(), "vid-123")
	require.NoError(t, err)

	assert.Equal(t, "vid-123", gotQuery)
	assert.JSONEq(t, `{"error":null,"data":{"status":"processing"}}`, string(raw))
}

func TestParseStatus(t *testing.T) {
	h := NewHeyGen(HeyGenConfig{APIKey: "hg-test"})

	tests := []struct {
		name    string
		raw     string
		status  string
		url     string
		wantErr bool
	}{
		{
			name:   "completed with url",
			raw:    `{"error":null,"data":{"status":"completed","video_url":"https://cdn.example.com/v.mp4"}}`,
			status: "completed",
			url:    "https://cdn.example.com/v.mp4",
		},
		{
			name:   "processing without url",
			raw:    `{"data":{"status":"processing"}}`,
			status: "processing",
		},
		{
			name:    "not json",
			raw:     `<html>bad gateway</html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := h.ParseStatus(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, info.Status)
			assert.Equal(t, tt.url, info.VideoURL)
		})
	}
}

func TestDownload(t *testing.T) {
	content := []byte("mp4-bytes-here")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Pre-signed asset URL carries no credential.
		assert.Empty(t, r.Header.Get("X-Api-Key"))
		w.Write(content)
	}))
	defer srv.Close()

	h := NewHeyGen(HeyGenConfig{APIKey: "hg-test"})

	var buf bytes.Buffer
	err := h.Download(context.Background(), srv.URL, &buf)
	require.NoError(t, err)
	assert.Equal(t, content, buf.Bytes())
}

func TestDownloadUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	h := NewHeyGen(HeyGenConfig{APIKey: "hg-test"})

	var buf bytes.Buffer
	err := h.Download(context.Background(), srv.URL, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
