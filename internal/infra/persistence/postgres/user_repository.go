package postgres

import (
	"context"

	"alertstream/internal/domain/entity"
	domainerrors "alertstream/internal/domain/errors"
	"alertstream/internal/domain/repository"
	"alertstream/internal/errors"
	"alertstream/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// ListUserIDs returns the IDs of every known user, oldest account first.
func (repo *userRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Order("created_at ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user IDs")
	}

	userIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		userIDs = append(userIDs, id.String())
	}

	return userIDs, nil
}

// FindByUsername retrieves a single user by their login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate user ID")
	}
	userM := fromUserDomain(user)
	userM.ID = id

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("username already taken")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID.String()
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdatePassword replaces the stored password hash of a user.
func (repo *userRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return repository.ErrUserNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.ErrUserUpdateFailed.WrapMessage(result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID.String(),
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel. An ID that is not
// a UUID is left zero for Create to fill in.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	id, _ := uuid.Parse(data.ID)

	return &model.UserModel{
		ID:           id,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
