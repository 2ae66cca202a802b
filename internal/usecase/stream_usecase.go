package usecase

import (
	"context"

	"alertstream/internal/realtime"
)

// StreamUsecase serves live alert streams.
type StreamUsecase interface {
	// Serve holds a push connection for the user open until ctx ends or the connection fails.
	Serve(ctx context.Context, userID string, sink realtime.Sink) error
	// Stats summarizes the open connections.
	Stats(ctx context.Context) realtime.Stats
}
