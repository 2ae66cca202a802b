package realtime

import (
	"context"
	"log/slog"
	"time"

	"alertstream/internal/errors"

	"github.com/benbjohnson/clock"
)

const defaultHeartbeatInterval = 10 * time.Second

// ErrRegistryClosed is returned when a connection is opened after shutdown.
var ErrRegistryClosed = errors.New("connection registry is closed")

// Stats summarizes the live connections.
type Stats struct {
	ConnectedUsers  int      `json:"connectedUsers"`
	OpenConnections int      `json:"openConnections"`
	Users           []string `json:"users"`
}

// Manager drives push connections through their lifecycle.
type Manager struct {
	registry  *Registry
	clock     clock.Clock
	heartbeat time.Duration
	logger    *slog.Logger
}

// NewManager creates a lifecycle manager. A non-positive heartbeat falls back to ten seconds.
func NewManager(registry *Registry, clk clock.Clock, heartbeat time.Duration, logger *slog.Logger) *Manager {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeatInterval
	}

	return &Manager{
		registry:  registry,
		clock:     clk,
		heartbeat: heartbeat,
		logger:    logger,
	}
}

// Open writes the handshake to sink, registers the connection and arms its heartbeat.
// If the handshake cannot be written the connection is never registered.
func (m *Manager) Open(userID string, sink Sink) (*Connection, error) {
	conn := newConnection(userID, sink, m.clock, m.onClose)

	if err := conn.write(handshakeFrame()); err != nil {
		conn.Close(CloseReasonWriteFailed)

		return nil, errors.Wrap(err, "failed to write handshake")
	}

	// The ticker exists before the connection is visible so a clock advanced right
	// after registration always reaches it.
	ticker := m.clock.Ticker(m.heartbeat)

	if !conn.open() || !m.registry.Register(conn) {
		ticker.Stop()
		conn.Close(CloseReasonShutdown)

		return nil, errors.WithStack(ErrRegistryClosed)
	}

	go m.keepAlive(conn, ticker)

	m.logger.Info("Push connection opened",
		slog.String("user_id", userID),
		slog.String("connection_id", conn.ID().String()),
	)

	return conn, nil
}

// Serve opens a connection and holds it until ctx ends or the connection closes.
// When Serve returns no write to sink is in progress and none will follow.
func (m *Manager) Serve(ctx context.Context, userID string, sink Sink) error {
	conn, err := m.Open(userID, sink)
	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		conn.Close(CloseReasonClientGone)
	case <-conn.Done():
	}
	conn.waitIdle()

	return nil
}

// Stats reports the current connection counts.
func (m *Manager) Stats() Stats {
	users, connections := m.registry.Count()

	return Stats{
		ConnectedUsers:  users,
		OpenConnections: connections,
		Users:           m.registry.AllUsers(),
	}
}

// Shutdown stops the registry, then closes every connection it still held. A
// connection opened concurrently is either among them or refused.
func (m *Manager) Shutdown() {
	conns := m.registry.Close()
	for _, conn := range conns {
		conn.Close(CloseReasonShutdown)
	}

	m.logger.Info("Push connections shut down", slog.Int("closed", len(conns)))
}

func (m *Manager) keepAlive(conn *Connection, ticker *clock.Ticker) {
	defer ticker.Stop()

	for {
		select {
		case <-conn.Done():
			return
		case <-ticker.C:
			if conn.State() == StateClosed {
				conn.Close(CloseReasonWriteFailed)

				return
			}
			if err := conn.heartbeat(); err != nil {
				m.logger.Debug("Heartbeat failed",
					slog.String("user_id", conn.UserID()),
					slog.String("connection_id", conn.ID().String()),
					slog.Any("error", err),
				)
				conn.Close(CloseReasonHeartbeatFailed)

				return
			}
		}
	}
}

func (m *Manager) onClose(conn *Connection, reason CloseReason) {
	m.registry.Unregister(conn)

	m.logger.Info("Push connection closed",
		slog.String("user_id", conn.UserID()),
		slog.String("connection_id", conn.ID().String()),
		slog.String("reason", string(reason)),
		slog.Duration("lifetime", m.clock.Since(conn.OpenedAt())),
	)
}
