package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"alertstream/internal/domain/entity"
	domainerrors "alertstream/internal/domain/errors"
	"alertstream/internal/domain/repository"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeFixtures struct {
	db     *sql.DB
	clock  *clock.Mock
	alerts repository.AlertRepository
	users  repository.UserRepository
}

func newStore(t *testing.T) *storeFixtures {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "alerts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db))

	clk := clock.NewMock()
	clk.Set(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	return &storeFixtures{
		db:     db,
		clock:  clk,
		alerts: NewAlertRepository(db, clk),
		users:  NewUserRepository(db, clk),
	}
}

func (f *storeFixtures) createAlert(t *testing.T, message string, recipients entity.Recipients) *entity.Alert {
	t.Helper()

	alert := &entity.Alert{
		Message:    message,
		Kind:       entity.AlertKindManual,
		Recipients: recipients,
	}
	require.NoError(t, f.alerts.Create(context.Background(), alert))
	f.clock.Add(time.Second)

	return alert
}

func messages(alerts []*entity.Alert) []string {
	out := make([]string, 0, len(alerts))
	for _, alert := range alerts {
		out = append(out, alert.Message)
	}

	return out
}

func TestMigrate_Idempotent(t *testing.T) {
	f := newStore(t)

	assert.NoError(t, Migrate(context.Background(), f.db))
}

func TestAlertRepository_CreateAndFind(t *testing.T) {
	f := newStore(t)
	ctx := context.Background()
	createdAt := f.clock.Now().UTC()

	alert := f.createAlert(t, "disk full", entity.UserRecipients("bob", "alice"))

	assert.NotEqual(t, uuid.Nil, alert.ID)
	assert.Equal(t, createdAt, alert.CreatedAt)

	found, err := f.alerts.FindByID(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, "disk full", found.Message)
	assert.Equal(t, entity.AlertKindManual, found.Kind)
	assert.False(t, found.Recipients.Broadcast)
	assert.Equal(t, []string{"bob", "alice"}, found.Recipients.UserIDs)
	assert.False(t, found.IsRead)
	assert.Equal(t, createdAt, found.CreatedAt)
}

func TestAlertRepository_FindByIDNotFound(t *testing.T) {
	f := newStore(t)

	_, err := f.alerts.FindByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrAlertNotFound)
}

func TestAlertRepository_QueryVisibility(t *testing.T) {
	f := newStore(t)
	ctx := context.Background()

	f.createAlert(t, "for alice", entity.UserRecipients("alice"))
	f.createAlert(t, "for bob", entity.UserRecipients("bob"))
	f.createAlert(t, "for everyone", entity.BroadcastRecipients())
	f.createAlert(t, "for both", entity.UserRecipients("alice", "bob"))

	tests := []struct {
		name     string
		userID   string
		expected []string
	}{
		{name: "alice sees her alerts and broadcasts", userID: "alice", expected: []string{"for both", "for everyone", "for alice"}},
		{name: "bob sees his alerts and broadcasts", userID: "bob", expected: []string{"for both", "for everyone", "for bob"}},
		{name: "stranger sees broadcasts only", userID: "carol", expected: []string{"for everyone"}},
		{name: "empty user sees everything", userID: "", expected: []string{"for both", "for everyone", "for bob", "for alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts, total, err := f.alerts.Query(ctx, entity.AlertQuery{
				UserID:   tt.userID,
				Filter:   entity.ReadFilterAll,
				Page:     1,
				PageSize: 50,
			})

			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.expected)), total)
			assert.Equal(t, tt.expected, messages(alerts))
		})
	}
}

func TestAlertRepository_QueryPaginatesNewestFirst(t *testing.T) {
	f := newStore(t)
	ctx := context.Background()

	for _, message := range []string{"one", "two", "three", "four", "five"} {
		f.createAlert(t, message, entity.BroadcastRecipients())
	}

	first, total, err := f.alerts.Query(ctx, entity.AlertQuery{UserID: "alice", Filter: entity.ReadFilterAll, Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, []string{"five", "four"}, messages(first))

	last, _, err := f.alerts.Query(ctx, entity.AlertQuery{UserID: "alice", Filter: entity.ReadFilterAll, Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, messages(last))

	beyond, total, err := f.alerts.Query(ctx, entity.AlertQuery{UserID: "alice", Filter: entity.ReadFilterAll, Page: 4, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, beyond)
}

func TestAlertRepository_QueryEmptyStore(t *testing.T) {
	f := newStore(t)

	alerts, total, err := f.alerts.Query(context.Background(), entity.AlertQuery{UserID: "alice", Page: 1, PageSize: 10})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestAlertRepository_ReadFlags(t *testing.T) {
	f := newStore(t)
	ctx := context.Background()

	first := f.createAlert(t, "first", entity.UserRecipients("alice"))
	f.createAlert(t, "second", entity.UserRecipients("alice"))
	f.createAlert(t, "bob only", entity.UserRecipients("bob"))

	updated, err := f.alerts.MarkRead(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)
	assert.Equal(t, []string{"alice"}, updated.Recipients.UserIDs)

	read, _, err := f.alerts.Query(ctx, entity.AlertQuery{UserID: "alice", Filter: entity.ReadFilterRead, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, messages(read))

	unread, _, err := f.alerts.Query(ctx, entity.AlertQuery{UserID: "alice", Filter: entity.ReadFilterUnread, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, messages(unread))

	stats, err := f.alerts.Stats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, &entity.AlertStats{Total: 2, Read: 1, Unread: 1}, stats)

	affected, err := f.alerts.MarkAllRead(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	stats, err = f.alerts.Stats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, &entity.AlertStats{Total: 2, Read: 2, Unread: 0}, stats)

	bobStats, err := f.alerts.Stats(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, &entity.AlertStats{Total: 1, Read: 0, Unread: 1}, bobStats)
}

func TestAlertRepository_MarkReadNotFound(t *testing.T) {
	f := newStore(t)

	_, err := f.alerts.MarkRead(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrAlertNotFound)
}

func TestUserRepository_Lifecycle(t *testing.T) {
	f := newStore(t)
	ctx := context.Background()

	ids, err := f.users.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	alice := &entity.User{Username: "alice", PasswordHash: "hash-a"}
	require.NoError(t, f.users.Create(ctx, alice))
	f.clock.Add(time.Second)
	bob := &entity.User{Username: "bob", PasswordHash: "hash-b"}
	require.NoError(t, f.users.Create(ctx, bob))

	_, err = uuid.Parse(alice.ID)
	require.NoError(t, err)

	ids, err = f.users.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{alice.ID, bob.ID}, ids)

	found, err := f.users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
	assert.Equal(t, "hash-a", found.PasswordHash)
	assert.Equal(t, alice.CreatedAt, found.CreatedAt)

	require.NoError(t, f.users.UpdatePassword(ctx, alice.ID, "hash-new"))
	found, err = f.users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash-new", found.PasswordHash)
}

func TestUserRepository_Errors(t *testing.T) {
	f := newStore(t)
	ctx := context.Background()

	require.NoError(t, f.users.Create(ctx, &entity.User{Username: "alice", PasswordHash: "hash"}))

	err := f.users.Create(ctx, &entity.User{Username: "alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, domainerrors.ErrUserCreationFailed)

	_, err = f.users.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = f.users.UpdatePassword(ctx, uuid.NewString(), "hash")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
