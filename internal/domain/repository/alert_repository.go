// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"alertstream/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAlertNotFound is returned when an alert is not found.
var ErrAlertNotFound = errors.New("alert not found")

// AlertCreator persists new alerts. It is the only store capability the scheduler needs.
type AlertCreator interface {
	// Create persists a new alert and fills in its generated ID and CreatedAt.
	Create(ctx context.Context, alert *entity.Alert) error
}

// AlertRepository defines the interface for alert-related database operations.
type AlertRepository interface {
	AlertCreator

	// FindByID retrieves an alert by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)

	// MarkRead sets the shared read flag of a single alert and returns the updated alert.
	MarkRead(ctx context.Context, id uuid.UUID) (*entity.Alert, error)

	// MarkAllRead marks every unread alert visible to the user as read and returns the affected count.
	MarkAllRead(ctx context.Context, userID string) (int64, error)

	// Query returns one page of alerts visible to a recipient, newest first, along with the total match count.
	Query(ctx context.Context, query entity.AlertQuery) ([]*entity.Alert, int64, error)

	// Stats aggregates total/read/unread counts of the alerts visible to a recipient.
	Stats(ctx context.Context, userID string) (*entity.AlertStats, error)
}
