package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"backoffice/domain"
	"backoffice/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	Register(ctx context.Context, username, password string) (domain.User, error)
}

type UserHandler struct {
	userService UserService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind register request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Invalid user data"})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate register request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: validationMessage(err)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.userService.Register(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return c.JSON(http.StatusBadRequest, ResponseError{Error: "Username already taken"})
		}
		logger.Error("Failed to register user", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "Failed to register user"})
	}

	return c.JSON(http.StatusCreated, UserResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}
