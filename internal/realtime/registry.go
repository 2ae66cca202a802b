package realtime

import (
	"slices"
	"sync"
)

type connectionSet map[*Connection]struct{}

type registryOp func(entries map[string]connectionSet)

// Registry maps user ids to their open connections. A single goroutine owns the map;
// every read and write is a closure executed on that goroutine, so callers never
// observe a partially applied change.
type Registry struct {
	ops       chan registryOp
	quit      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once

	// remaining holds the connections registered when the goroutine stopped.
	remaining []*Connection
}

// NewRegistry starts the registry goroutine. Call Close to stop it.
func NewRegistry() *Registry {
	r := &Registry{
		ops:     make(chan registryOp),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go r.run()

	return r
}

func (r *Registry) run() {
	defer close(r.stopped)

	entries := make(map[string]connectionSet)
	for {
		select {
		case op := <-r.ops:
			op(entries)
		case <-r.quit:
			for _, set := range entries {
				for conn := range set {
					r.remaining = append(r.remaining, conn)
				}
			}

			return
		}
	}
}

// do runs op on the registry goroutine and waits for it. It reports false once the
// registry is closed.
func (r *Registry) do(op registryOp) bool {
	done := make(chan struct{})
	wrapped := func(entries map[string]connectionSet) {
		defer close(done)
		op(entries)
	}

	select {
	case r.ops <- wrapped:
	case <-r.stopped:
		return false
	}
	<-done

	return true
}

// Register adds conn under its user id. Registering the same connection twice is a
// no-op and a connection that already closed is never added. It reports whether the
// connection is present in the registry afterwards.
func (r *Registry) Register(conn *Connection) bool {
	var registered bool
	r.do(func(entries map[string]connectionSet) {
		if conn.State() == StateClosed {
			return
		}
		set, ok := entries[conn.UserID()]
		if !ok {
			set = make(connectionSet)
			entries[conn.UserID()] = set
		}
		set[conn] = struct{}{}
		registered = true
	})

	return registered
}

// Unregister removes conn. Removing an absent connection is a no-op. A user whose
// last connection is removed disappears from the registry.
func (r *Registry) Unregister(conn *Connection) {
	r.do(func(entries map[string]connectionSet) {
		set, ok := entries[conn.UserID()]
		if !ok {
			return
		}
		delete(set, conn)
		if len(set) == 0 {
			delete(entries, conn.UserID())
		}
	})
}

// ConnectionsFor returns a snapshot of the open connections of one user.
func (r *Registry) ConnectionsFor(userID string) []*Connection {
	return r.connectionsForUsers([]string{userID})
}

func (r *Registry) connectionsForUsers(userIDs []string) []*Connection {
	var conns []*Connection
	r.do(func(entries map[string]connectionSet) {
		seen := make(map[string]struct{}, len(userIDs))
		for _, userID := range userIDs {
			if _, dup := seen[userID]; dup {
				continue
			}
			seen[userID] = struct{}{}
			for conn := range entries[userID] {
				conns = append(conns, conn)
			}
		}
	})

	return conns
}

// AllConnections returns a snapshot of every registered connection.
func (r *Registry) AllConnections() []*Connection {
	var conns []*Connection
	r.do(func(entries map[string]connectionSet) {
		for _, set := range entries {
			for conn := range set {
				conns = append(conns, conn)
			}
		}
	})

	return conns
}

// AllUsers returns the sorted ids of users with at least one open connection.
func (r *Registry) AllUsers() []string {
	var users []string
	r.do(func(entries map[string]connectionSet) {
		users = make([]string, 0, len(entries))
		for userID := range entries {
			users = append(users, userID)
		}
	})
	slices.Sort(users)

	return users
}

// Count returns the number of connected users and open connections.
func (r *Registry) Count() (users, connections int) {
	r.do(func(entries map[string]connectionSet) {
		users = len(entries)
		for _, set := range entries {
			connections += len(set)
		}
	})

	return users, connections
}

// Close stops the registry goroutine and returns the connections that were still
// registered. No connection can be registered after Close; later operations return
// empty results.
func (r *Registry) Close() []*Connection {
	r.closeOnce.Do(func() {
		close(r.quit)
	})
	<-r.stopped

	return r.remaining
}
