// Package http provides HTTP handlers for user registration and lookup.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Elena0909/AuctionsProduced/internal/httputil"
	"github.com/Elena0909/AuctionsProduced/internal/user/http/dto"

	customValidation "github.com/Elena0909/AuctionsProduced/internal/validation"
	userUseCase "github.com/Elena0909/AuctionsProduced/internal/user/usecase"

	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUseCase userUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateHandler registers a new marketplace user.
// POST /v1/users
// Returns 201 Created with the stored user.
func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateUserRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user := req.ToDomain()
	if err := h.userUseCase.Create(c.Request.Context(), user); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapUserToResponse(user)
	c.JSON(http.StatusCreated, response)
}

// GetHandler retrieves a user by ID.
// GET /v1/users/:id
// Returns 200 OK with the user.
func (h *UserHandler) GetHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "invalid user id"),
			h.logger,
		)
		return
	}

	user, err := h.userUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapUserToResponse(user)
	c.JSON(http.StatusOK, response)
}
