package realtime

import (
	"sync"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBareConnection(userID string) *Connection {
	return newConnection(userID, &recordingSink{}, clock.NewMock(), nil)
}

func TestRegistry_RegisterAndUnregister(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	defer registry.Close()

	first := newBareConnection("alice")
	second := newBareConnection("alice")

	require.True(t, registry.Register(first))
	require.True(t, registry.Register(second))
	require.True(t, registry.Register(first), "registering twice keeps the connection")

	users, conns := registry.Count()
	assert.Equal(t, 1, users)
	assert.Equal(t, 2, conns)
	assert.ElementsMatch(t, []*Connection{first, second}, registry.ConnectionsFor("alice"))

	registry.Unregister(first)
	registry.Unregister(first)
	assert.Equal(t, []*Connection{second}, registry.ConnectionsFor("alice"))

	registry.Unregister(second)
	assert.Empty(t, registry.ConnectionsFor("alice"))
	assert.Empty(t, registry.AllUsers(), "a user without connections is removed")
}

func TestRegistry_UnregisterUnknownIsNoop(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	defer registry.Close()

	registry.Unregister(newBareConnection("ghost"))

	users, conns := registry.Count()
	assert.Zero(t, users)
	assert.Zero(t, conns)
}

func TestRegistry_RejectsClosedConnection(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	defer registry.Close()

	conn := newBareConnection("alice")
	conn.Close(CloseReasonClientGone)

	assert.False(t, registry.Register(conn))
	assert.Empty(t, registry.AllConnections())
}

func TestRegistry_AllUsersSorted(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	defer registry.Close()

	for _, userID := range []string{"carol", "alice", "bob", "alice"} {
		registry.Register(newBareConnection(userID))
	}

	assert.Equal(t, []string{"alice", "bob", "carol"}, registry.AllUsers())
	assert.Len(t, registry.AllConnections(), 4)
}

func TestRegistry_ConcurrentMutations(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	defer registry.Close()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			userID := []string{"alice", "bob", "carol"}[i%3]
			conn := newBareConnection(userID)
			registry.Register(conn)
			_ = registry.ConnectionsFor(userID)
			registry.Unregister(conn)
		}()
	}
	wg.Wait()

	users, conns := registry.Count()
	assert.Zero(t, users)
	assert.Zero(t, conns)
}

func TestRegistry_OperationsAfterClose(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	alice := newBareConnection("alice")
	registry.Register(alice)
	assert.Equal(t, []*Connection{alice}, registry.Close())
	registry.Close()

	assert.False(t, registry.Register(newBareConnection("bob")))
	assert.Empty(t, registry.AllUsers())
	assert.Empty(t, registry.ConnectionsFor("alice"))
}
