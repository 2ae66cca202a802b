package realtime

import (
	"sync"
	"sync/atomic"
	"time"

	"alertstream/internal/errors"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// ErrConnectionClosed is returned when writing to a connection that already reached Closed.
var ErrConnectionClosed = errors.New("connection closed")

// Sink is the writable side of a push connection. *echo.Response satisfies it.
type Sink interface {
	Write(p []byte) (int, error)
	Flush()
}

// State is the lifecycle state of a connection.
type State int32

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

// CloseReason records which event moved a connection to Closed.
type CloseReason string

const (
	CloseReasonClientGone      CloseReason = "client_disconnected"
	CloseReasonWriteFailed     CloseReason = "write_failed"
	CloseReasonHeartbeatFailed CloseReason = "heartbeat_failed"
	CloseReasonShutdown        CloseReason = "shutdown"
)

// Connection is one live push channel owned by a single user.
type Connection struct {
	id       uuid.UUID
	userID   string
	openedAt time.Time
	clock    clock.Clock

	state atomic.Int32

	// mu serializes writes so frames from delivery and heartbeat never interleave.
	mu            sync.Mutex
	sink          Sink
	lastHeartbeat time.Time

	done      chan struct{}
	closeOnce sync.Once
	reason    CloseReason
	onClose   func(*Connection, CloseReason)
}

func newConnection(userID string, sink Sink, clk clock.Clock, onClose func(*Connection, CloseReason)) *Connection {
	now := clk.Now()

	return &Connection{
		id:            uuid.New(),
		userID:        userID,
		openedAt:      now,
		clock:         clk,
		sink:          sink,
		lastHeartbeat: now,
		done:          make(chan struct{}),
		onClose:       onClose,
	}
}

// ID returns the connection's unique identifier.
func (c *Connection) ID() uuid.UUID {
	return c.id
}

// UserID returns the user the connection was opened for.
func (c *Connection) UserID() string {
	return c.userID
}

// OpenedAt returns when the connection was accepted.
func (c *Connection) OpenedAt() time.Time {
	return c.openedAt
}

// State returns the current lifecycle state.
func (c *Connection) State() State {
	return State(c.state.Load())
}

// LastHeartbeat returns the time of the last successful keepalive write.
func (c *Connection) LastHeartbeat() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastHeartbeat
}

// Done is closed once the connection reaches Closed.
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// Reason returns why the connection closed. Only meaningful after Done is closed.
func (c *Connection) Reason() CloseReason {
	<-c.done

	return c.reason
}

// Send writes one frame. A failed write closes the connection asynchronously so the
// caller never blocks on registry cleanup.
func (c *Connection) Send(frame []byte) error {
	err := c.write(frame)
	if err != nil && !errors.Is(err, ErrConnectionClosed) {
		go c.Close(CloseReasonWriteFailed)
	}

	return err
}

// Close moves the connection to Closed. It is safe to call repeatedly and concurrently;
// only the first call runs the close hook.
func (c *Connection) Close(reason CloseReason) {
	c.state.Store(int32(StateClosed))
	c.closeOnce.Do(func() {
		c.reason = reason
		close(c.done)
		if c.onClose != nil {
			c.onClose(c, reason)
		}
	})
}

func (c *Connection) open() bool {
	return c.state.CompareAndSwap(int32(StateConnecting), int32(StateOpen))
}

func (c *Connection) heartbeat() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.writeLocked(heartbeatFrame); err != nil {
		return err
	}
	c.lastHeartbeat = c.clock.Now()

	return nil
}

func (c *Connection) write(frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.writeLocked(frame)
}

func (c *Connection) writeLocked(frame []byte) error {
	if c.State() == StateClosed {
		return ErrConnectionClosed
	}

	if _, err := c.sink.Write(frame); err != nil {
		c.state.Store(int32(StateClosed))

		return errors.Wrap(err, "failed to write frame")
	}
	c.sink.Flush()

	return nil
}

// waitIdle blocks until no write is in progress. Once the connection is Closed no
// new write reaches the sink, so after this returns the sink may be released.
func (c *Connection) waitIdle() {
	c.mu.Lock()
	defer c.mu.Unlock()
}
