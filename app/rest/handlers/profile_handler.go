package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"account-service/app/domain"
	"account-service/app/port"
)

// ProfileHandler serves the authenticated profile endpoints. The access
// guard runs before these handlers and stores the caller's email in the
// request context under "user_email".
type ProfileHandler struct {
	profileUsecase port.ProfileUsecase
	logger         *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase port.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		logger:         logger,
	}
}

// GetProfile handles GET /profile
// @Summary Fetch the caller's profile document
// @Tags profile
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	email := userEmail(c)
	if email == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	doc, err := h.profileUsecase.GetProfile(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			h.logger.Warn("profile record missing for authenticated user", "email", email)
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: MsgProfileNotFound})
		}

		h.logger.Error("failed to fetch profile", "email", email, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch profile"})
	}

	return c.JSON(http.StatusOK, ProfileResponse{UserCredentials: doc})
}

// UpdateProfile handles POST /profile/update
// @Summary Merge fields into the caller's profile document
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /profile/update [post]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	email := userEmail(c)
	if email == "" {
		return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "authentication required"})
	}

	var patch domain.ProfileUpdate
	if err := c.Bind(&patch); err != nil {
		h.logger.Warn("profile update body could not be parsed", "email", email, "error", err)
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid request body"})
	}

	if err := h.profileUsecase.UpdateProfile(ctx, email, patch); err != nil {
		h.logger.Error("profile update failed", "email", email, "error", err)
		return c.JSON(http.StatusInternalServerError, MessageResponse{Message: MsgProfileUpdateFailed})
	}

	h.logger.Info("profile updated", "email", email, "fields", len(patch))
	return c.JSON(http.StatusOK, MessageResponse{Message: MsgProfileUpdated})
}

// userEmail returns the authenticated caller's email set by the access guard.
func userEmail(c echo.Context) string {
	if email, ok := c.Get("user_email").(string); ok {
		return email
	}
	return ""
}
