package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertModel mirrors the 'alerts' table. A broadcast alert has no recipient rows.
type AlertModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Message   string    `gorm:"type:text;not null"`
	Kind      string    `gorm:"type:varchar(20);not null"`
	Broadcast bool      `gorm:"not null;default:false;index"`
	IsRead    bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"not null;index:idx_alerts_created_at,sort:desc"`

	Recipients []AlertRecipientModel `gorm:"foreignKey:AlertID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}

// AlertRecipientModel mirrors the 'alert_recipients' table. Position keeps the order
// in which recipients were addressed.
type AlertRecipientModel struct {
	AlertID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   string    `gorm:"type:varchar(255);primaryKey;index"`
	Position int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AlertRecipientModel) TableName() string {
	return "alert_recipients"
}
