package postgres

import (
	"testing"
	"time"

	"alertstream/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertMapper_KeepsRecipientOrder(t *testing.T) {
	alert := &entity.Alert{
		ID:         uuid.New(),
		Message:    "Automatic notification",
		Kind:       entity.AlertKindAutomatic,
		Recipients: entity.UserRecipients("carol", "alice", "bob"),
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	alertM := fromAlertDomain(alert)
	require.Len(t, alertM.Recipients, 3)
	assert.Equal(t, 0, alertM.Recipients[0].Position)
	assert.Equal(t, "carol", alertM.Recipients[0].UserID)
	assert.Equal(t, alert.ID, alertM.Recipients[2].AlertID)

	assert.Equal(t, alert, toAlertDomain(alertM))
}

func TestAlertMapper_BroadcastHasNoRecipientRows(t *testing.T) {
	alert := &entity.Alert{ID: uuid.New(), Message: "hi", Kind: entity.AlertKindManual, Recipients: entity.BroadcastRecipients()}

	alertM := fromAlertDomain(alert)

	assert.True(t, alertM.Broadcast)
	assert.Empty(t, alertM.Recipients)
	assert.True(t, toAlertDomain(alertM).Recipients.Broadcast)
	assert.Nil(t, toAlertDomain(nil))
}

func TestUserMapper_NonUUIDLeavesIDZero(t *testing.T) {
	userM := fromUserDomain(&entity.User{ID: "not-a-uuid", Username: "alice"})

	assert.Equal(t, uuid.Nil, userM.ID)
	assert.Equal(t, "alice", userM.Username)
}
