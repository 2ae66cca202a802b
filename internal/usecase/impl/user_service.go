package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "alertstream/internal/delivery/context"
	"alertstream/internal/domain/entity"
	domainerrors "alertstream/internal/domain/errors"
	"alertstream/internal/domain/repository"
	"alertstream/internal/domain/service"
	"alertstream/internal/errors"
	"alertstream/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login signs a user in. An unknown username creates the account; a known username
// with a different password has its stored password replaced.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and password are required")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return srv.register(ctx, username, input.Password)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("User logged in", slog.String("user_id", user.ID))

		return &usecase.LoginOutput{User: user}, nil
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}
	if err := srv.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return nil, errors.Wrap(err, "failed to update password")
	}
	user.PasswordHash = hash

	srv.log(ctx).Info("User password replaced on login", slog.String("user_id", user.ID))

	return &usecase.LoginOutput{User: user}, nil
}

func (srv *userService) register(ctx context.Context, username, password string) (*usecase.LoginOutput, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created on first login", slog.String("user_id", user.ID))

	return &usecase.LoginOutput{User: user}, nil
}
