package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"alertstream/internal/domain/entity"
	domainerrors "alertstream/internal/domain/errors"
	"alertstream/internal/domain/repository"
	"alertstream/internal/errors"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

const alertColumns = "id, message, kind, broadcast, is_read, created_at"

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *sql.DB, clk clock.Clock) repository.AlertRepository {
	return &alertRepository{
		db:    db,
		clock: clk,
	}
}

// Create persists the alert and its recipient rows in one transaction.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate alert ID")
	}
	createdAt := repo.clock.Now().UTC()

	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO alerts (`+alertColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), alert.Message, string(alert.Kind), alert.Recipients.Broadcast, alert.IsRead, createdAt.UnixNano(),
	); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	if !alert.Recipients.Broadcast {
		for position, userID := range alert.Recipients.UserIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO alert_recipients (alert_id, user_id, position) VALUES (?, ?, ?)`,
				id.String(), userID, position,
			); err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to create alert recipient")
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to commit alert")
	}

	alert.ID = id
	alert.CreatedAt = createdAt

	return nil
}

// FindByID retrieves an alert by its unique ID.
func (repo *alertRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT `+alertColumns+` FROM alerts WHERE id = ?`, id.String())

	alert, err := scanAlert(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrAlertNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find alert by ID")
	}

	if err := repo.attachRecipients(ctx, []*entity.Alert{alert}); err != nil {
		return nil, err
	}

	return alert, nil
}

// MarkRead sets the shared read flag of a single alert.
func (repo *alertRepository) MarkRead(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	result, err := repo.db.ExecContext(ctx, `UPDATE alerts SET is_read = 1 WHERE id = ?`, id.String())
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to mark alert as read")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to mark alert as read")
	}
	if affected == 0 {
		return nil, repository.ErrAlertNotFound
	}

	return repo.FindByID(ctx, id)
}

// MarkAllRead marks every unread alert visible to the user as read.
func (repo *alertRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	where, args := visibleTo(userID)

	result, err := repo.db.ExecContext(ctx, `UPDATE alerts SET is_read = 1 WHERE is_read = 0 AND `+where, args...)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to mark all alerts as read")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to mark all alerts as read")
	}

	return affected, nil
}

// Query returns one page of alerts visible to a recipient, newest first.
func (repo *alertRepository) Query(ctx context.Context, query entity.AlertQuery) ([]*entity.Alert, int64, error) {
	where, args := filtered(query)

	var total int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alerts WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count alerts")
	}
	if total == 0 {
		return []*entity.Alert{}, 0, nil
	}

	pageArgs := append(append([]any{}, args...), query.PageSize, query.Offset())
	rows, err := repo.db.QueryContext(ctx,
		`SELECT `+alertColumns+` FROM alerts WHERE `+where+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		pageArgs...,
	)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to query alerts")
	}

	alerts, err := scanAlerts(rows)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to read alerts")
	}

	if err := repo.attachRecipients(ctx, alerts); err != nil {
		return nil, 0, err
	}

	return alerts, total, nil
}

// Stats aggregates total/read/unread counts of the alerts visible to a recipient.
func (repo *alertRepository) Stats(ctx context.Context, userID string) (*entity.AlertStats, error) {
	where, args := visibleTo(userID)

	var total, read int64
	if err := repo.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(is_read), 0) FROM alerts WHERE `+where,
		args...,
	).Scan(&total, &read); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate alert stats")
	}

	return &entity.AlertStats{
		Total:  total,
		Read:   read,
		Unread: total - read,
	}, nil
}

// attachRecipients loads the recipient rows of non-broadcast alerts in one query.
func (repo *alertRepository) attachRecipients(ctx context.Context, alerts []*entity.Alert) error {
	byID := make(map[string]*entity.Alert, len(alerts))
	args := make([]any, 0, len(alerts))
	for _, alert := range alerts {
		if alert.Recipients.Broadcast {
			continue
		}
		byID[alert.ID.String()] = alert
		args = append(args, alert.ID.String())
	}
	if len(args) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
	rows, err := repo.db.QueryContext(ctx,
		`SELECT alert_id, user_id FROM alert_recipients WHERE alert_id IN (`+placeholders+`) ORDER BY alert_id, position`,
		args...,
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load alert recipients")
	}
	defer rows.Close()

	userIDs := make(map[string][]string, len(byID))
	for rows.Next() {
		var alertID, userID string
		if err := rows.Scan(&alertID, &userID); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to read alert recipients")
		}
		userIDs[alertID] = append(userIDs[alertID], userID)
	}
	if err := rows.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to read alert recipients")
	}

	for id, alert := range byID {
		alert.Recipients = entity.UserRecipients(userIDs[id]...)
	}

	return nil
}

// visibleTo matches alerts addressed to the user plus every broadcast. An empty user
// ID matches everything.
func visibleTo(userID string) (string, []any) {
	if userID == "" {
		return "1 = 1", nil
	}

	return "(broadcast = 1 OR id IN (SELECT alert_id FROM alert_recipients WHERE user_id = ?))", []any{userID}
}

func filtered(query entity.AlertQuery) (string, []any) {
	where, args := visibleTo(query.UserID)

	switch query.Filter {
	case entity.ReadFilterRead:
		where += " AND is_read = 1"
	case entity.ReadFilterUnread:
		where += " AND is_read = 0"
	case entity.ReadFilterAll:
	}

	return where, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlert(row rowScanner) (*entity.Alert, error) {
	var (
		id, message, kind string
		broadcast, isRead bool
		createdAt         int64
	)
	if err := row.Scan(&id, &message, &kind, &broadcast, &isRead, &createdAt); err != nil {
		return nil, err
	}

	alertID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrap(err, "invalid alert ID")
	}

	recipients := entity.UserRecipients()
	if broadcast {
		recipients = entity.BroadcastRecipients()
	}

	return &entity.Alert{
		ID:         alertID,
		Message:    message,
		Kind:       entity.AlertKind(kind),
		Recipients: recipients,
		IsRead:     isRead,
		CreatedAt:  time.Unix(0, createdAt).UTC(),
	}, nil
}

func scanAlerts(rows *sql.Rows) ([]*entity.Alert, error) {
	defer rows.Close()

	var alerts []*entity.Alert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}

	return alerts, errors.WithStack(rows.Err())
}
