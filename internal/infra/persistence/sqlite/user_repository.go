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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *sql.DB, clk clock.Clock) repository.UserRepository {
	return &userRepository{
		db:    db,
		clock: clk,
	}
}

// ListUserIDs returns the IDs of every known user, oldest account first.
func (repo *userRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT id FROM users ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user IDs")
	}
	defer rows.Close()

	userIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user IDs")
		}
		userIDs = append(userIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user IDs")
	}

	return userIDs, nil
}

// FindByUsername retrieves a single user by their login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var (
		user                 entity.User
		createdAt, updatedAt int64
	)

	err := repo.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at, updated_at FROM users WHERE username = ?`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by username")
	}

	user.CreatedAt = time.Unix(0, createdAt).UTC()
	user.UpdatedAt = time.Unix(0, updatedAt).UTC()

	return &user, nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate user ID")
	}
	now := repo.clock.Now().UTC()

	if _, err := repo.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id.String(), user.Username, user.PasswordHash, now.UnixNano(), now.UnixNano(),
	); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("username already taken")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = id.String()
	user.CreatedAt = now
	user.UpdatedAt = now

	return nil
}

// UpdatePassword replaces the stored password hash of a user.
func (repo *userRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	result, err := repo.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		passwordHash, repo.clock.Now().UTC().UnixNano(), userID,
	)
	if err != nil {
		return domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
	}
	if affected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// isUniqueConstraintViolation reports whether SQLite rejected a write on a UNIQUE or
// PRIMARY KEY constraint.
func isUniqueConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
