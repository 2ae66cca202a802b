package realtime

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"alertstream/internal/domain/entity"

	"golang.org/x/sync/errgroup"
)

const (
	defaultFanoutWorkers = 32
	defaultWriteTimeout  = 10 * time.Second
)

const (
	writePending int32 = iota
	writeRunning
	writeFinished
	writeAbandoned
)

// Dispatcher pushes an alert to a target.
type Dispatcher interface {
	Dispatch(ctx context.Context, target Target, alert *entity.Alert)
}

// Engine pushes alerts to the connections selected by a Target.
type Engine struct {
	registry     *Registry
	logger       *slog.Logger
	workers      int
	writeTimeout time.Duration
}

// NewEngine creates a delivery engine bounded to workers concurrent writes. One
// delivery waits at most writeTimeout for its writes.
func NewEngine(registry *Registry, logger *slog.Logger, workers int, writeTimeout time.Duration) *Engine {
	if workers <= 0 {
		workers = defaultFanoutWorkers
	}
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}

	return &Engine{
		registry:     registry,
		logger:       logger,
		workers:      workers,
		writeTimeout: writeTimeout,
	}
}

// Deliver pushes the alert to the connections its recipients select.
func (e *Engine) Deliver(ctx context.Context, alert *entity.Alert) int {
	return e.DeliverTo(ctx, TargetFor(alert), alert)
}

// Dispatch implements Dispatcher.
func (e *Engine) Dispatch(ctx context.Context, target Target, alert *entity.Alert) {
	e.DeliverTo(ctx, target, alert)
}

// DeliverTo encodes the alert once and writes it to every connection the target
// resolves to. A failing connection is closed and skipped; it never aborts delivery
// to the others. DeliverTo waits for the writes until ctx ends or the write timeout
// passes; connections still writing at that point are closed, and those not yet
// reached are skipped. It returns the number of successful writes.
func (e *Engine) DeliverTo(ctx context.Context, target Target, alert *entity.Alert) int {
	conns := target.resolve(e.registry)
	if len(conns) == 0 {
		e.logger.DebugContext(ctx, "No live connections for alert",
			slog.String("alert_id", alert.ID.String()),
			slog.String("target", target.String()),
		)

		return 0
	}

	frame, err := EncodeEvent(alert)
	if err != nil {
		e.logger.ErrorContext(ctx, "Failed to encode alert",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)

		return 0
	}

	ctx, cancel := context.WithTimeout(ctx, e.writeTimeout)
	defer cancel()

	var delivered atomic.Int64
	states := make([]atomic.Int32, len(conns))
	finished := make(chan struct{})
	go func() {
		defer close(finished)

		var group errgroup.Group
		group.SetLimit(e.workers)
		for i, conn := range conns {
			group.Go(func() error {
				if !states[i].CompareAndSwap(writePending, writeRunning) {
					return nil
				}
				err := conn.Send(frame)
				if !states[i].CompareAndSwap(writeRunning, writeFinished) {
					return nil
				}
				if err != nil {
					e.logger.WarnContext(ctx, "Dropping connection after failed write",
						slog.String("alert_id", alert.ID.String()),
						slog.String("user_id", conn.UserID()),
						slog.String("connection_id", conn.ID().String()),
						slog.Any("error", err),
					)

					return nil
				}
				delivered.Add(1)

				return nil
			})
		}
		_ = group.Wait()
	}()

	select {
	case <-finished:
	case <-ctx.Done():
		select {
		case <-finished:
		default:
			e.abandon(ctx, alert, conns, states)
		}
	}

	e.logger.DebugContext(ctx, "Alert delivered",
		slog.String("alert_id", alert.ID.String()),
		slog.String("target", target.String()),
		slog.Int("connections", len(conns)),
		slog.Int64("delivered", delivered.Load()),
	)

	return int(delivered.Load())
}

// abandon closes the connections whose writes are still in flight and marks the
// remaining ones as skipped.
func (e *Engine) abandon(ctx context.Context, alert *entity.Alert, conns []*Connection, states []atomic.Int32) {
	var stalled, skipped int
	for i, conn := range conns {
		if states[i].CompareAndSwap(writePending, writeAbandoned) {
			skipped++

			continue
		}
		if states[i].CompareAndSwap(writeRunning, writeAbandoned) {
			stalled++
			conn.Close(CloseReasonWriteFailed)
		}
	}

	e.logger.WarnContext(ctx, "Alert delivery cut short by stalled connections",
		slog.String("alert_id", alert.ID.String()),
		slog.Int("stalled", stalled),
		slog.Int("skipped", skipped),
		slog.Any("error", context.Cause(ctx)),
	)
}
