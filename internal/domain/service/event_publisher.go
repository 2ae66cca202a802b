package service

import (
	"context"
)

// AlertEventType is the event type published for every persisted alert.
const AlertEventType = "alert.created"

// AlertEvent represents a persisted alert announced to systems outside this process
type AlertEvent struct {
	RequestID string   `json:"request_id,omitempty"` // For distributed tracing
	Type      string   `json:"type"`
	AlertID   string   `json:"alert_id"`
	Kind      string   `json:"kind"`
	Message   string   `json:"message"`
	Broadcast bool     `json:"broadcast"`
	UserIDs   []string `json:"user_ids"`
	CreatedAt string   `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert event for downstream consumers
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
