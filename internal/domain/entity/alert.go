// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AlertKind tells whether an alert was created by an API caller or by the recurring scheduler.
type AlertKind string

const (
	AlertKindManual    AlertKind = "manual"
	AlertKindAutomatic AlertKind = "automatic"
)

// IsValid reports whether the kind is one of the known alert kinds.
func (k AlertKind) IsValid() bool {
	return k == AlertKindManual || k == AlertKindAutomatic
}

// Recipients describes who an alert is addressed to.
// A broadcast alert has no explicit user set and targets everyone.
type Recipients struct {
	Broadcast bool     // True when the alert is addressed to "all".
	UserIDs   []string // The explicit recipient set. Empty for broadcasts.
}

// BroadcastRecipients addresses an alert to everyone.
func BroadcastRecipients() Recipients {
	return Recipients{Broadcast: true}
}

// UserRecipients addresses an alert to an explicit set of users.
func UserRecipients(userIDs ...string) Recipients {
	ids := make([]string, 0, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return Recipients{UserIDs: ids}
}

// Includes reports whether the given user is addressed by these recipients.
func (r Recipients) Includes(userID string) bool {
	if r.Broadcast {
		return true
	}
	for _, id := range r.UserIDs {
		if id == userID {
			return true
		}
	}

	return false
}

// Alert is a single notification persisted by the alert store and pushed to live connections.
// IsRead is one flag shared by every recipient of the alert.
type Alert struct {
	ID         uuid.UUID  // The Global Unique Identifier (GUID) for the alert.
	Message    string     // The text shown to the recipients.
	Kind       AlertKind  // Manual or automatic.
	Recipients Recipients // Who the alert is addressed to.
	IsRead     bool       // Shared read flag, false until marked read.
	CreatedAt  time.Time  // Set once when the alert is persisted.
}

// alertJSON is the wire shape clients consume on the push stream and the REST API.
type alertJSON struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Type      AlertKind `json:"type"`
	UserID    string    `json:"userId,omitempty"`
	UserIDs   []string  `json:"userIds"`
	Broadcast bool      `json:"broadcast"`
	IsRead    bool      `json:"isRead"`
	Timestamp time.Time `json:"timestamp"`
}

// MarshalJSON renders the alert in its wire shape.
func (a Alert) MarshalJSON() ([]byte, error) {
	out := alertJSON{
		ID:        a.ID,
		Message:   a.Message,
		Type:      a.Kind,
		UserIDs:   a.Recipients.UserIDs,
		Broadcast: a.Recipients.Broadcast,
		IsRead:    a.IsRead,
		Timestamp: a.CreatedAt,
	}
	if out.UserIDs == nil {
		out.UserIDs = []string{}
	}
	if len(a.Recipients.UserIDs) > 0 {
		out.UserID = a.Recipients.UserIDs[0]
	}

	return json.Marshal(out)
}

// UnmarshalJSON parses the wire shape back into an alert.
func (a *Alert) UnmarshalJSON(data []byte) error {
	var in alertJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	a.ID = in.ID
	a.Message = in.Message
	a.Kind = in.Type
	a.IsRead = in.IsRead
	a.CreatedAt = in.Timestamp
	if in.Broadcast {
		a.Recipients = BroadcastRecipients()
	} else {
		a.Recipients = UserRecipients(in.UserIDs...)
	}

	return nil
}

// ReadFilter narrows an alert query by read state.
type ReadFilter string

const (
	ReadFilterAll    ReadFilter = "all"
	ReadFilterRead   ReadFilter = "read"
	ReadFilterUnread ReadFilter = "unread"
)

// ParseReadFilter converts a query value into a ReadFilter, defaulting to all.
func ParseReadFilter(value string) ReadFilter {
	switch ReadFilter(value) {
	case ReadFilterRead:
		return ReadFilterRead
	case ReadFilterUnread:
		return ReadFilterUnread
	default:
		return ReadFilterAll
	}
}

// AlertQuery selects a page of alerts visible to a recipient.
type AlertQuery struct {
	UserID   string     // Recipient whose alerts are fetched. Broadcast alerts are always included.
	Filter   ReadFilter // Read-state filter.
	Page     int        // 1-based page number.
	PageSize int        // Maximum number of alerts per page.
}

// Offset returns the number of rows to skip for the requested page.
func (q AlertQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}

	return (q.Page - 1) * q.PageSize
}

// AlertStats aggregates read/unread counts for a recipient.
type AlertStats struct {
	Total  int64 `json:"total"`
	Read   int64 `json:"read"`
	Unread int64 `json:"unread"`
}
