package handler

import (
	"net/http"

	"alertstream/internal/delivery/api/response"
	"alertstream/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles sign-in
type AuthHandler struct {
	userUC usecase.UserUsecase
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(userUC usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse identifies the signed-in user
type LoginResponse struct {
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Login handles POST /api/auth/login. Unknown usernames are registered on the spot and
// both cases answer 200.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Message:  "Login successful",
		UserID:   output.User.ID,
		Username: output.User.Username,
	})
}
