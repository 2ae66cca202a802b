package impl

import (
	"context"
	"strings"

	domainerrors "alertstream/internal/domain/errors"
	"alertstream/internal/realtime"
	"alertstream/internal/usecase"
)

// ConnectionManager opens and tracks push connections.
type ConnectionManager interface {
	Serve(ctx context.Context, userID string, sink realtime.Sink) error
	Stats() realtime.Stats
}

type streamService struct {
	manager ConnectionManager
}

// NewStreamService creates the stream use case on top of a connection manager.
func NewStreamService(manager ConnectionManager) usecase.StreamUsecase {
	return &streamService{manager: manager}
}

func (srv *streamService) Serve(ctx context.Context, userID string, sink realtime.Sink) error {
	if strings.TrimSpace(userID) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("userId is required")
	}

	return srv.manager.Serve(ctx, userID, sink)
}

func (srv *streamService) Stats(_ context.Context) realtime.Stats {
	return srv.manager.Stats()
}
