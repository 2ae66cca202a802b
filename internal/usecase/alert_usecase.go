// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"alertstream/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAlertInput defines the data required to create an alert.
// An empty UserID addresses the alert to everyone.
type CreateAlertInput struct {
	Message string
	Kind    entity.AlertKind
	UserID  string
}

// ListAlertsInput selects a page of alerts.
type ListAlertsInput struct {
	UserID string
	Filter entity.ReadFilter
	Page   int
	Limit  int
}

// --- Output DTOs ---

// AlertPage is one page of alerts with pagination metadata.
type AlertPage struct {
	Alerts      []*entity.Alert
	CurrentPage int
	TotalPages  int
	Total       int64
}

// UserAlertsOutput is a user's alert page together with their read statistics.
type UserAlertsOutput struct {
	Page  *AlertPage
	Stats *entity.AlertStats
}

// AlertUsecase defines the alert operations exposed to the delivery layer.
type AlertUsecase interface {
	// CreateAlert persists a manual alert and pushes it to the connected recipients.
	CreateAlert(ctx context.Context, input CreateAlertInput) (*entity.Alert, error)
	// ListAlerts returns a page of alerts visible to a user, newest first.
	ListAlerts(ctx context.Context, input ListAlertsInput) (*AlertPage, error)
	// GetUserAlerts returns a filtered page of a user's alerts along with read statistics.
	GetUserAlerts(ctx context.Context, input ListAlertsInput) (*UserAlertsOutput, error)
	// MarkAlertRead sets the shared read flag of an alert.
	MarkAlertRead(ctx context.Context, id uuid.UUID) (*entity.Alert, error)
	// MarkAllRead marks every alert visible to a user as read.
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
