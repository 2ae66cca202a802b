package realtime

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"alertstream/internal/domain/entity"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = time.Second
	tickGap = 5 * time.Millisecond
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingSink is an in-memory Sink that can be switched to fail.
type recordingSink struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	fail    error
	flushes int
}

func (s *recordingSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail != nil {
		return 0, s.fail
	}

	return s.buf.Write(p)
}

func (s *recordingSink) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flushes++
}

func (s *recordingSink) breakWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fail = err
}

func (s *recordingSink) frames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := strings.Split(s.buf.String(), "\n\n")

	return raw[:len(raw)-1]
}

func (s *recordingSink) dataFrames() []string {
	var out []string
	for _, frame := range s.frames() {
		if strings.HasPrefix(frame, "data: ") {
			out = append(out, strings.TrimPrefix(frame, "data: "))
		}
	}

	return out
}

// stallingSink accepts the handshake and then blocks every write until released,
// like a client that stopped reading.
type stallingSink struct {
	writes  atomic.Int32
	release chan struct{}
}

func newStallingSink(t *testing.T) *stallingSink {
	t.Helper()

	sink := &stallingSink{release: make(chan struct{})}
	t.Cleanup(func() { close(sink.release) })

	return sink
}

func (s *stallingSink) Write(p []byte) (int, error) {
	if s.writes.Add(1) == 1 {
		return len(p), nil
	}
	<-s.release

	return 0, io.ErrClosedPipe
}

func (s *stallingSink) Flush() {}

type harness struct {
	clock    *clock.Mock
	registry *Registry
	manager  *Manager
	engine   *Engine
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	clk := clock.NewMock()
	registry := NewRegistry()
	logger := newDiscardLogger()
	h := &harness{
		clock:    clk,
		registry: registry,
		manager:  NewManager(registry, clk, 10*time.Second, logger),
		engine:   NewEngine(registry, logger, 4, time.Second),
	}
	t.Cleanup(h.manager.Shutdown)

	return h
}

func (h *harness) open(t *testing.T, userID string) (*Connection, *recordingSink) {
	t.Helper()

	sink := &recordingSink{}

	return h.openWith(t, userID, sink), sink
}

func (h *harness) openWith(t *testing.T, userID string, sink Sink) *Connection {
	t.Helper()

	conn, err := h.manager.Open(userID, sink)
	require.NoError(t, err)

	return conn
}

func newAlert(message string, recipients entity.Recipients) *entity.Alert {
	return &entity.Alert{
		ID:         uuid.New(),
		Message:    message,
		Kind:       entity.AlertKindManual,
		Recipients: recipients,
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

// recordingDispatcher captures dispatched alerts instead of pushing them.
type recordingDispatcher struct {
	mu      sync.Mutex
	targets []Target
	alerts  []*entity.Alert
}

func (d *recordingDispatcher) Dispatch(_ context.Context, target Target, alert *entity.Alert) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.targets = append(d.targets, target)
	d.alerts = append(d.alerts, alert)
}

func (d *recordingDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.alerts)
}
