package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "alertstream/internal/delivery/context"
	"alertstream/internal/domain/entity"
	"alertstream/internal/domain/service"
	mockService "alertstream/internal/mocks/service"
	"alertstream/internal/realtime"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countingDeliverer struct {
	targets []realtime.Target
}

func (d *countingDeliverer) DeliverTo(_ context.Context, target realtime.Target, _ *entity.Alert) int {
	d.targets = append(d.targets, target)

	return 1
}

func TestAlertDispatcher_DeliversThenPublishes(t *testing.T) {
	deliverer := &countingDeliverer{}
	publisher := mockService.NewMockEventPublisher(t)
	dispatcher := NewAlertDispatcher(AlertDispatcherParams{
		Deliverer: deliverer,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	alert := &entity.Alert{
		ID:         uuid.New(),
		Message:    "Server maintenance at 5 PM",
		Kind:       entity.AlertKindManual,
		Recipients: entity.UserRecipients("alice", "bob"),
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	publisher.EXPECT().
		PublishAlertEvent(ctx, &service.AlertEvent{
			RequestID: "req-123",
			Type:      service.AlertEventType,
			AlertID:   alert.ID.String(),
			Kind:      "manual",
			Message:   "Server maintenance at 5 PM",
			UserIDs:   []string{"alice", "bob"},
			CreatedAt: "2024-05-01T12:00:00Z",
		}).
		Return(nil)

	target := realtime.TargetFor(alert)
	dispatcher.Dispatch(ctx, target, alert)

	require.Len(t, deliverer.targets, 1)
	assert.Equal(t, target, deliverer.targets[0])
}

func TestAlertDispatcher_PublishFailureIsSwallowed(t *testing.T) {
	deliverer := &countingDeliverer{}
	publisher := mockService.NewMockEventPublisher(t)
	dispatcher := NewAlertDispatcher(AlertDispatcherParams{
		Deliverer: deliverer,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	alert := &entity.Alert{ID: uuid.New(), Message: "broadcast", Recipients: entity.BroadcastRecipients()}
	publisher.EXPECT().
		PublishAlertEvent(mock.Anything, mock.MatchedBy(func(event *service.AlertEvent) bool {
			return event.Broadcast && event.UserIDs != nil && len(event.UserIDs) == 0
		})).
		Return(errors.New("topic not found"))

	assert.NotPanics(t, func() {
		dispatcher.Dispatch(context.Background(), realtime.ToAllConnected(), alert)
	})
	assert.Len(t, deliverer.targets, 1)
}
