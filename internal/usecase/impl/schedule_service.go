package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "alertstream/internal/delivery/context"
	domainerrors "alertstream/internal/domain/errors"
	"alertstream/internal/errors"
	"alertstream/internal/realtime"
	"alertstream/internal/usecase"
)

// IntervalScheduler arms and disarms the recurring automatic alert timer.
type IntervalScheduler interface {
	SetInterval(d time.Duration) error
	Cancel()
	Interval() (time.Duration, bool)
}

type scheduleService struct {
	scheduler IntervalScheduler
	logger    *slog.Logger
}

// NewScheduleService creates the schedule use case on top of a scheduler.
func NewScheduleService(scheduler IntervalScheduler, logger *slog.Logger) usecase.ScheduleUsecase {
	return &scheduleService{
		scheduler: scheduler,
		logger:    logger,
	}
}

func (srv *scheduleService) SetIntervalMinutes(ctx context.Context, minutes int) (*usecase.ScheduleStatus, error) {
	if minutes < 1 {
		return nil, domainerrors.ErrInvalidInterval.WrapMessage("interval must be at least 1 minute")
	}

	if err := srv.scheduler.SetInterval(time.Duration(minutes) * time.Minute); err != nil {
		if errors.Is(err, realtime.ErrInvalidInterval) {
			return nil, domainerrors.ErrInvalidInterval.WrapMessage(err.Error())
		}

		return nil, errors.Wrap(err, "failed to set interval")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Auto-notification interval updated", slog.Int("minutes", minutes))

	return srv.Status(ctx), nil
}

func (srv *scheduleService) CancelInterval(ctx context.Context) *usecase.ScheduleStatus {
	srv.scheduler.Cancel()

	return srv.Status(ctx)
}

func (srv *scheduleService) Status(_ context.Context) *usecase.ScheduleStatus {
	interval, armed := srv.scheduler.Interval()

	return &usecase.ScheduleStatus{
		Armed:    armed,
		Interval: interval,
	}
}
