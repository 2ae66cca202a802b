// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"alertstream/internal/domain/entity"
	domainerrors "alertstream/internal/domain/errors"
	"alertstream/internal/domain/repository"
	"alertstream/internal/errors"
	"alertstream/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// Create persists the alert and its recipient rows in one transaction.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate alert ID")
	}
	alert.ID = id
	alert.CreatedAt = time.Now().UTC()
	alertM := fromAlertDomain(alert)

	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(alertM).Error
	})
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAlertCreationFailed.WrapMessage("missing required alert information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	return nil
}

// FindByID retrieves an alert by its unique ID.
func (repo *alertRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

func (repo *alertRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Alert, error) {
	var alertM model.AlertModel

	if err := db.
		Preload("Recipients", orderRecipients).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find alert by ID")
	}

	return toAlertDomain(&alertM), nil
}

// MarkRead sets the shared read flag of a single alert.
func (repo *alertRepository) MarkRead(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	db := repo.db.WithContext(ctx)

	result := db.
		Model(&model.AlertModel{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark alert as read")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrAlertNotFound
	}

	return repo.findByID(db, id)
}

// MarkAllRead marks every unread alert visible to the user as read.
func (repo *alertRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	db := repo.db.WithContext(ctx)

	result := repo.visibleTo(db.Model(&model.AlertModel{}), userID).
		Where("is_read = ?", false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark all alerts as read")
	}

	return result.RowsAffected, nil
}

// Query returns one page of alerts visible to a recipient, newest first.
func (repo *alertRepository) Query(ctx context.Context, query entity.AlertQuery) ([]*entity.Alert, int64, error) {
	db := repo.db.WithContext(ctx)
	scope := repo.filtered(db.Model(&model.AlertModel{}), query)

	var total int64
	if err := scope.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count alerts")
	}
	if total == 0 {
		return []*entity.Alert{}, 0, nil
	}

	var alertModels []*model.AlertModel
	if err := repo.filtered(db, query).
		Preload("Recipients", orderRecipients).
		Order("created_at DESC").
		Order("id DESC").
		Limit(query.PageSize).
		Offset(query.Offset()).
		Find(&alertModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to query alerts")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, total, nil
}

type alertStatsRow struct {
	Total     int64 `gorm:"column:total"`
	ReadCount int64 `gorm:"column:read_count"`
}

// Stats aggregates total/read/unread counts of the alerts visible to a recipient.
func (repo *alertRepository) Stats(ctx context.Context, userID string) (*entity.AlertStats, error) {
	var row alertStatsRow

	if err := repo.visibleTo(repo.db.WithContext(ctx).Model(&model.AlertModel{}), userID).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN is_read THEN 1 ELSE 0 END), 0) AS read_count").
		Scan(&row).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate alert stats")
	}

	return &entity.AlertStats{
		Total:  row.Total,
		Read:   row.ReadCount,
		Unread: row.Total - row.ReadCount,
	}, nil
}

// filtered applies the recipient and read-state filters of a query.
func (repo *alertRepository) filtered(db *gorm.DB, query entity.AlertQuery) *gorm.DB {
	db = repo.visibleTo(db, query.UserID)

	switch query.Filter {
	case entity.ReadFilterRead:
		db = db.Where("is_read = ?", true)
	case entity.ReadFilterUnread:
		db = db.Where("is_read = ?", false)
	case entity.ReadFilterAll:
	}

	return db
}

// visibleTo keeps alerts addressed to the user plus every broadcast. An empty user ID
// keeps everything.
func (*alertRepository) visibleTo(db *gorm.DB, userID string) *gorm.DB {
	if userID == "" {
		return db
	}

	recipients := db.Session(&gorm.Session{NewDB: true}).
		Model(&model.AlertRecipientModel{}).
		Select("alert_id").
		Where("user_id = ?", userID)

	return db.Where("broadcast = ? OR id IN (?)", true, recipients)
}

func orderRecipients(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM AlertModel to a domain Alert entity.
func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	recipients := entity.BroadcastRecipients()
	if !data.Broadcast {
		userIDs := make([]string, 0, len(data.Recipients))
		for _, recipient := range data.Recipients {
			userIDs = append(userIDs, recipient.UserID)
		}
		recipients = entity.UserRecipients(userIDs...)
	}

	return &entity.Alert{
		ID:         data.ID,
		Message:    data.Message,
		Kind:       entity.AlertKind(data.Kind),
		Recipients: recipients,
		IsRead:     data.IsRead,
		CreatedAt:  data.CreatedAt,
	}
}

// fromAlertDomain converts a domain Alert entity to a GORM AlertModel.
func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	alertM := &model.AlertModel{
		ID:        data.ID,
		Message:   data.Message,
		Kind:      string(data.Kind),
		Broadcast: data.Recipients.Broadcast,
		IsRead:    data.IsRead,
		CreatedAt: data.CreatedAt,
	}
	if !data.Recipients.Broadcast {
		alertM.Recipients = make([]model.AlertRecipientModel, 0, len(data.Recipients.UserIDs))
		for i, userID := range data.Recipients.UserIDs {
			alertM.Recipients = append(alertM.Recipients, model.AlertRecipientModel{
				AlertID:  data.ID,
				UserID:   userID,
				Position: i,
			})
		}
	}

	return alertM
}
