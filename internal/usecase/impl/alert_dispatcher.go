// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "alertstream/internal/delivery/context"
	"alertstream/internal/domain/entity"
	"alertstream/internal/domain/service"
	"alertstream/internal/realtime"

	"go.uber.org/fx"
)

// Deliverer pushes an alert to the live connections a target selects.
type Deliverer interface {
	DeliverTo(ctx context.Context, target realtime.Target, alert *entity.Alert) int
}

// alertDispatcher pushes persisted alerts to live connections and announces them to
// downstream consumers.
type alertDispatcher struct {
	deliverer Deliverer
	publisher service.EventPublisher
	logger    *slog.Logger
}

// AlertDispatcherParams holds dependencies for the alert dispatcher, injected by Fx.
type AlertDispatcherParams struct {
	fx.In

	Deliverer Deliverer
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAlertDispatcher creates the dispatcher shared by manual alerts and the scheduler.
func NewAlertDispatcher(params AlertDispatcherParams) realtime.Dispatcher {
	return &alertDispatcher{
		deliverer: params.Deliverer,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// Dispatch never fails: live delivery problems stay inside the engine and a publish
// failure is only logged.
func (d *alertDispatcher) Dispatch(ctx context.Context, target realtime.Target, alert *entity.Alert) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	delivered := d.deliverer.DeliverTo(ctx, target, alert)
	logger.Debug("Alert pushed to live connections",
		slog.String("alert_id", alert.ID.String()),
		slog.Int("delivered", delivered),
	)

	if err := d.publisher.PublishAlertEvent(ctx, newAlertEvent(ctx, alert)); err != nil {
		logger.Warn("Failed to publish alert event",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
	}
}

func newAlertEvent(ctx context.Context, alert *entity.Alert) *service.AlertEvent {
	userIDs := alert.Recipients.UserIDs
	if userIDs == nil {
		userIDs = []string{}
	}

	return &service.AlertEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.AlertEventType,
		AlertID:   alert.ID.String(),
		Kind:      string(alert.Kind),
		Message:   alert.Message,
		Broadcast: alert.Recipients.Broadcast,
		UserIDs:   userIDs,
		CreatedAt: alert.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
