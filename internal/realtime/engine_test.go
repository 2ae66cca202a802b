package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"alertstream/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAlerts(t *testing.T, sink *recordingSink) []entity.Alert {
	t.Helper()

	var alerts []entity.Alert
	for _, data := range sink.dataFrames() {
		var alert entity.Alert
		if err := json.Unmarshal([]byte(data), &alert); err != nil {
			continue
		}
		if alert.ID == uuid.Nil {
			continue // handshake
		}
		alerts = append(alerts, alert)
	}

	return alerts
}

func TestEncodeEvent(t *testing.T) {
	t.Parallel()

	frame, err := EncodeEvent(map[string]string{"message": "line one\nline two"})

	require.NoError(t, err)
	assert.Equal(t, "data: {\"message\":\"line one\\nline two\"}\n\n", string(frame))
}

func TestEngine_DeliverToEveryConnectionOfRecipient(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	_, aliceTab1 := h.open(t, "alice")
	_, aliceTab2 := h.open(t, "alice")
	_, bobTab := h.open(t, "bob")

	alert := newAlert("Server maintenance at 5 PM", entity.UserRecipients("alice"))
	delivered := h.engine.Deliver(context.Background(), alert)

	assert.Equal(t, 2, delivered)
	for _, sink := range []*recordingSink{aliceTab1, aliceTab2} {
		received := decodeAlerts(t, sink)
		require.Len(t, received, 1)
		assert.Equal(t, alert.ID, received[0].ID)
		assert.Equal(t, "Server maintenance at 5 PM", received[0].Message)
		assert.Equal(t, []string{"alice"}, received[0].Recipients.UserIDs)
	}
	assert.Empty(t, decodeAlerts(t, bobTab))
}

func TestEngine_BroadcastReachesEveryConnection(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	sinks := make([]*recordingSink, 0, 3)
	for _, userID := range []string{"alice", "bob", "carol"} {
		_, sink := h.open(t, userID)
		sinks = append(sinks, sink)
	}

	delivered := h.engine.Deliver(context.Background(), newAlert("hello everyone", entity.BroadcastRecipients()))

	assert.Equal(t, 3, delivered)
	for _, sink := range sinks {
		assert.Len(t, decodeAlerts(t, sink), 1)
	}
}

func TestEngine_FrameIsSingleDataEvent(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	_, sink := h.open(t, "alice")
	alert := newAlert("multi\nline", entity.UserRecipients("alice"))

	h.engine.Deliver(context.Background(), alert)

	frames := sink.frames()
	require.Len(t, frames, 2)
	payload, err := json.Marshal(alert)
	require.NoError(t, err)
	assert.Equal(t, "data: "+string(payload), frames[1])
}

func TestEngine_FailedConnectionIsRemovedOthersStillReceive(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	broken, brokenSink := h.open(t, "alice")
	_, healthySink := h.open(t, "alice")
	brokenSink.breakWith(errors.New("write: broken pipe"))

	delivered := h.engine.Deliver(context.Background(), newAlert("still delivered", entity.UserRecipients("alice")))

	assert.Equal(t, 1, delivered)
	assert.Len(t, decodeAlerts(t, healthySink), 1)
	require.Eventually(t, func() bool {
		return len(h.registry.ConnectionsFor("alice")) == 1
	}, waitFor, tickGap)
	assert.Equal(t, CloseReasonWriteFailed, broken.Reason())

	delivered = h.engine.Deliver(context.Background(), newAlert("second", entity.UserRecipients("alice")))
	assert.Equal(t, 1, delivered)
	assert.Len(t, decodeAlerts(t, healthySink), 2)
}

func TestEngine_StalledConnectionDoesNotHoldDeliveryUp(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	engine := NewEngine(h.registry, newDiscardLogger(), 4, 50*time.Millisecond)
	stalled := h.openWith(t, "bob", newStallingSink(t))
	_, healthy := h.open(t, "alice")

	started := time.Now()
	delivered := engine.Deliver(context.Background(), newAlert("first", entity.BroadcastRecipients()))

	assert.Equal(t, 1, delivered)
	assert.Less(t, time.Since(started), waitFor)
	assert.Len(t, decodeAlerts(t, healthy), 1)
	assert.Equal(t, CloseReasonWriteFailed, stalled.Reason())
	require.Eventually(t, func() bool {
		return len(h.registry.ConnectionsFor("bob")) == 0
	}, waitFor, tickGap)

	delivered = engine.Deliver(context.Background(), newAlert("second", entity.BroadcastRecipients()))
	assert.Equal(t, 1, delivered)
	assert.Len(t, decodeAlerts(t, healthy), 2)
}

func TestEngine_DeliveryEndsWithContext(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	stalled := h.openWith(t, "bob", newStallingSink(t))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	delivered := h.engine.Deliver(ctx, newAlert("never written", entity.UserRecipients("bob")))

	assert.Zero(t, delivered)
	assert.Equal(t, CloseReasonWriteFailed, stalled.Reason())
}

func TestEngine_NoConnectionsIsNotAnError(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	assert.Zero(t, h.engine.Deliver(context.Background(), newAlert("nobody home", entity.UserRecipients("ghost"))))
	assert.Zero(t, h.engine.Deliver(context.Background(), newAlert("nobody at all", entity.BroadcastRecipients())))
}

func TestEngine_AllKnownUsersSkipsUnknownConnections(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	_, known := h.open(t, "alice")
	_, unknown := h.open(t, "dave")

	delivered := h.engine.DeliverTo(context.Background(),
		ToAllKnownUsers([]string{"alice", "carol"}),
		newAlert("automatic", entity.UserRecipients("alice", "carol")),
	)

	assert.Equal(t, 1, delivered)
	assert.Len(t, decodeAlerts(t, known), 1)
	assert.Empty(t, decodeAlerts(t, unknown))
}

func TestTargetFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "all_connected", TargetFor(newAlert("a", entity.BroadcastRecipients())).String())
	assert.Equal(t, "explicit_set(2)", TargetFor(newAlert("b", entity.UserRecipients("alice", "bob"))).String())
}
