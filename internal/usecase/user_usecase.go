package usecase

import (
	"context"

	"alertstream/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput returns the user that logged in.
type LoginOutput struct {
	User *entity.User
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// Login signs a user in, creating the account on first use.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
