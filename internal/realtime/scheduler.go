package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"alertstream/internal/domain/entity"
	"alertstream/internal/domain/repository"
	"alertstream/internal/errors"
	"alertstream/internal/util"

	"github.com/benbjohnson/clock"
)

const defaultTickTimeout = 30 * time.Second

// ErrInvalidInterval is returned when the recurring interval is not positive.
var ErrInvalidInterval = errors.New("interval must be a positive duration")

// SchedulerParams holds the collaborators of a Scheduler.
type SchedulerParams struct {
	Users       repository.UserLister
	Alerts      repository.AlertCreator
	Dispatcher  Dispatcher
	Clock       clock.Clock
	Logger      *slog.Logger
	TickTimeout time.Duration
}

type recurringTimer struct {
	interval time.Duration
	ticker   *clock.Ticker
	stop     chan struct{}
	stopped  chan struct{}
}

// Scheduler creates an automatic alert for every known user on a recurring interval.
// At most one timer is armed at a time and a tick that fires while the previous one
// is still running is skipped.
type Scheduler struct {
	users       repository.UserLister
	alerts      repository.AlertCreator
	dispatcher  Dispatcher
	clock       clock.Clock
	logger      *slog.Logger
	tickTimeout time.Duration

	mu    sync.Mutex
	timer *recurringTimer

	running atomic.Bool
	ticks   sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a disarmed scheduler.
func NewScheduler(params SchedulerParams) *Scheduler {
	tickTimeout := params.TickTimeout
	if tickTimeout <= 0 {
		tickTimeout = defaultTickTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		users:       params.Users,
		alerts:      params.Alerts,
		dispatcher:  params.Dispatcher,
		clock:       params.Clock,
		logger:      params.Logger,
		tickTimeout: tickTimeout,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// SetInterval replaces the armed timer with one firing every d. The previous timer is
// fully stopped before the new one is armed.
func (s *Scheduler) SetInterval(d time.Duration) error {
	if d <= 0 {
		return errors.WithStack(ErrInvalidInterval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return errors.New("scheduler is stopped")
	}

	s.disarmLocked()

	timer := &recurringTimer{
		interval: d,
		ticker:   s.clock.Ticker(d),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	s.timer = timer
	go s.loop(timer)

	s.logger.Info("Recurring alerts armed", slog.String("interval", util.FormatDuration(d)))

	return nil
}

// Cancel disarms the timer. Cancelling a disarmed scheduler is a no-op.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disarmLocked() {
		s.logger.Info("Recurring alerts cancelled")
	}
}

// Interval returns the armed interval and whether a timer is armed.
func (s *Scheduler) Interval() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer == nil {
		return 0, false
	}

	return s.timer.interval, true
}

// Stop disarms the timer, cancels an in-flight tick and waits for it to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.disarmLocked()
	s.cancel()
	s.mu.Unlock()

	s.ticks.Wait()
}

func (s *Scheduler) disarmLocked() bool {
	if s.timer == nil {
		return false
	}

	close(s.timer.stop)
	<-s.timer.stopped
	s.timer = nil

	return true
}

func (s *Scheduler) loop(timer *recurringTimer) {
	defer close(timer.stopped)
	defer timer.ticker.Stop()

	for {
		select {
		case <-timer.stop:
			return
		case <-timer.ticker.C:
			s.trigger()
		}
	}
}

func (s *Scheduler) trigger() {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn("Skipping recurring alert, previous tick still running")

		return
	}

	s.ticks.Add(1)
	go func() {
		defer s.ticks.Done()
		defer s.running.Store(false)

		if err := s.tick(s.ctx); err != nil {
			s.logger.Error("Recurring alert failed", slog.Any("error", err))
		}
	}()
}

// tick persists one automatic alert addressed to every known user and pushes it to
// those of them that are connected.
func (s *Scheduler) tick(parent context.Context) error {
	ctx, cancel := context.WithTimeout(parent, s.tickTimeout)
	defer cancel()

	now := s.clock.Now()

	userIDs, err := s.users.ListUserIDs(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list users")
	}

	alert := &entity.Alert{
		Message:    fmt.Sprintf("Automatic notification at %s", now.Format(time.DateTime)),
		Kind:       entity.AlertKindAutomatic,
		Recipients: entity.UserRecipients(userIDs...),
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		return errors.Wrap(err, "failed to persist automatic alert")
	}

	s.dispatcher.Dispatch(ctx, ToAllKnownUsers(alert.Recipients.UserIDs), alert)

	s.logger.Info("Recurring alert sent",
		slog.String("alert_id", alert.ID.String()),
		slog.Int("recipients", len(alert.Recipients.UserIDs)),
	)

	return nil
}
