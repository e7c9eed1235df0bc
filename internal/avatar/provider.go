// Package avatar wraps the talking-avatar video provider: submit a
// generation job, poll its status, and fetch the finished asset. The
// generation payload and status responses are relayed as raw JSON so
// the upstream schema never needs to be mirrored here.
package avatar

import (
	"context"
	"encoding/json"
	"io"
)

// StatusCompleted is the terminal status after which the asset can be
// downloaded. Other status values ("pending", "processing", "failed")
// are relayed verbatim; the client owns the polling loop.
const StatusCompleted = "completed"

// StatusInfo is the subset of a status response the download flow
// needs. VideoURL is empty until the job completes.
type StatusInfo struct {
	Status   string
	VideoURL string
}

// Provider is the interface for talking-avatar video backends.
type Provider interface {
	// Name is used as the filename prefix for downloaded assets.
	Name() string

	// Generate submits a job and returns the upstream JSON verbatim,
	// including the provider-defined job identifier field.
	Generate(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)

	// Status returns the upstream status JSON verbatim for an opaque
	// job identifier.
	Status(ctx context.Context, videoID string) (json.RawMessage, error)

	// ParseStatus extracts the fields the download flow needs from a
	// raw status response.
	ParseStatus(raw json.RawMessage) (*StatusInfo, error)

	// Download streams the finished asset at videoURL into dest.
	Download(ctx context.Context, videoURL string, dest io.Writer) error
}
