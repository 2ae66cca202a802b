package realtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"alertstream/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handshakeData = `{"type":"connected","message":"SSE Connection established"}`

func TestManager_OpenWritesHandshakeBeforeRegistering(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	conn, sink := h.open(t, "alice")

	assert.Equal(t, StateOpen, conn.State())
	assert.Equal(t, []string{"data: " + handshakeData}, sink.frames())
	assert.Equal(t, []*Connection{conn}, h.registry.ConnectionsFor("alice"))
	assert.Equal(t, 1, sink.flushes)
}

func TestManager_OpenFailsWhenHandshakeCannotBeWritten(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	sink := &recordingSink{}
	sink.breakWith(errors.New("broken pipe"))

	conn, err := h.manager.Open("alice", sink)

	require.Error(t, err)
	assert.Nil(t, conn)
	assert.Empty(t, h.registry.AllConnections())
}

func TestManager_HeartbeatEveryInterval(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	conn, sink := h.open(t, "alice")
	opened := conn.LastHeartbeat()

	h.clock.Add(10 * time.Second)
	require.Eventually(t, func() bool {
		return len(sink.frames()) == 2
	}, waitFor, tickGap)

	h.clock.Add(10 * time.Second)
	require.Eventually(t, func() bool {
		return len(sink.frames()) == 3
	}, waitFor, tickGap)

	frames := sink.frames()
	assert.Equal(t, ": heartbeat", frames[1])
	assert.Equal(t, ": heartbeat", frames[2])
	assert.Equal(t, opened.Add(20*time.Second), conn.LastHeartbeat())
	assert.Equal(t, StateOpen, conn.State())
}

func TestManager_HeartbeatFailureClosesConnection(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	conn, sink := h.open(t, "alice")
	sink.breakWith(errors.New("connection reset"))

	h.clock.Add(10 * time.Second)

	select {
	case <-conn.Done():
	case <-time.After(waitFor):
		t.Fatal("connection was not closed after heartbeat failure")
	}
	assert.Equal(t, CloseReasonHeartbeatFailed, conn.Reason())
	require.Eventually(t, func() bool {
		return len(h.registry.ConnectionsFor("alice")) == 0
	}, waitFor, tickGap)
}

func TestManager_NoHeartbeatAfterClose(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	conn, sink := h.open(t, "alice")

	conn.Close(CloseReasonClientGone)
	conn.Close(CloseReasonClientGone)
	h.clock.Add(10 * time.Second)

	assert.Never(t, func() bool {
		return len(sink.frames()) > 1
	}, 50*time.Millisecond, tickGap)
	assert.Empty(t, h.registry.AllConnections())
	assert.Equal(t, CloseReasonClientGone, conn.Reason())
}

func TestManager_ServeUntilClientDisconnects(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	sink := &recordingSink{}
	ctx, cancel := context.WithCancel(context.Background())

	served := make(chan error, 1)
	go func() {
		served <- h.manager.Serve(ctx, "alice", sink)
	}()

	require.Eventually(t, func() bool {
		return len(h.registry.ConnectionsFor("alice")) == 1
	}, waitFor, tickGap)

	cancel()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("Serve did not return after the context ended")
	}
	assert.Empty(t, h.registry.ConnectionsFor("alice"))
}

func TestManager_ServeReturnsWhenConnectionFails(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	sink := &recordingSink{}

	served := make(chan error, 1)
	go func() {
		served <- h.manager.Serve(context.Background(), "alice", sink)
	}()

	require.Eventually(t, func() bool {
		return len(h.registry.ConnectionsFor("alice")) == 1
	}, waitFor, tickGap)

	sink.breakWith(errors.New("client went away"))
	h.engine.Deliver(context.Background(), newAlert("hello", entity.UserRecipients("alice")))

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("Serve did not return after the connection failed")
	}
	assert.Empty(t, h.registry.AllConnections())
}

func TestManager_Stats(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.open(t, "bob")
	h.open(t, "alice")
	h.open(t, "alice")

	stats := h.manager.Stats()

	assert.Equal(t, 2, stats.ConnectedUsers)
	assert.Equal(t, 3, stats.OpenConnections)
	assert.Equal(t, []string{"alice", "bob"}, stats.Users)
}

func TestManager_ShutdownClosesEveryConnection(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	first, _ := h.open(t, "alice")
	second, _ := h.open(t, "bob")

	h.manager.Shutdown()

	assert.Equal(t, StateClosed, first.State())
	assert.Equal(t, StateClosed, second.State())
	assert.Equal(t, CloseReasonShutdown, first.Reason())

	_, err := h.manager.Open("carol", &recordingSink{})
	require.ErrorIs(t, err, ErrRegistryClosed)
}

func TestManager_ShutdownRacingOpenLeavesNoConnectionOpen(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	var (
		mu     sync.Mutex
		opened []*Connection
		wg     sync.WaitGroup
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, err := h.manager.Open(fmt.Sprintf("user-%d", i), &recordingSink{})
			if err != nil {
				assert.ErrorIs(t, err, ErrRegistryClosed)

				return
			}
			mu.Lock()
			opened = append(opened, conn)
			mu.Unlock()
		}()
	}
	h.manager.Shutdown()
	wg.Wait()

	for _, conn := range opened {
		assert.Equal(t, StateClosed, conn.State(), "connection %s", conn.UserID())
	}
}
