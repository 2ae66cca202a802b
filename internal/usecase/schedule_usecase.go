package usecase

import (
	"context"
	"time"
)

// ScheduleStatus describes the recurring automatic alert timer.
type ScheduleStatus struct {
	Armed    bool
	Interval time.Duration
}

// ScheduleUsecase controls the recurring automatic alerts.
type ScheduleUsecase interface {
	// SetIntervalMinutes replaces the recurring timer with one firing every minutes.
	SetIntervalMinutes(ctx context.Context, minutes int) (*ScheduleStatus, error)
	// CancelInterval disarms the recurring timer.
	CancelInterval(ctx context.Context) *ScheduleStatus
	// Status reports the current timer.
	Status(ctx context.Context) *ScheduleStatus
}
