package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"alertstream/config"
	"alertstream/internal/delivery/api/response"
	deliverycontext "alertstream/internal/delivery/context"
	"alertstream/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Config   *config.Config
	StreamUC usecase.StreamUsecase
	Logger   *slog.Logger
}

// StreamHandler serves the live alert push streams
type StreamHandler struct {
	streamUC     usecase.StreamUsecase
	logger       *slog.Logger
	writeTimeout time.Duration
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	var writeTimeout time.Duration
	if params.Config != nil && params.Config.Realtime != nil {
		writeTimeout = params.Config.Realtime.WriteTimeout
	}

	return &StreamHandler{
		streamUC:     params.StreamUC,
		logger:       params.Logger,
		writeTimeout: writeTimeout,
	}
}

// Events handles GET /api/alerts/events/:userId and holds the stream open until the
// client goes away or the server shuts down.
func (h *StreamHandler) Events(c echo.Context) error {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "userId is required")
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set(echo.HeaderConnection, "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	c.Response().WriteHeader(http.StatusOK)

	sink := newStreamSink(c.Response(), h.writeTimeout)
	defer sink.release()

	if err := h.streamUC.Serve(c.Request().Context(), userID, sink); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Push stream could not be opened", slog.Any("error", err))
	}

	return nil
}

// CloseEvents handles GET /api/alerts/events/close. Clients close streams by
// disconnecting; the endpoint only acknowledges.
func (h *StreamHandler) CloseEvents(c echo.Context) error {
	return response.Text(c, http.StatusOK, "SSE connection closed")
}

// Stats handles GET /api/alerts/stream/stats
func (h *StreamHandler) Stats(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.streamUC.Stats(c.Request().Context()))
}
