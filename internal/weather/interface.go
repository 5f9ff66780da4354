package weather

import (
	"context"

	"travel-assistant/internal/model"
)

// Provider turns a place name and weather mode into a Snapshot.
// Fetch never returns an error: failures are reported in Snapshot.Err or Snapshot.Message.
type Provider interface {
	Fetch(ctx context.Context, place string, mode model.Mode, when string) Snapshot
}
