package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"account-service/app/domain"
	"account-service/app/port"
	"account-service/app/utils/validator"
)

// AuthHandler handles the public login and signup HTTP requests
type AuthHandler struct {
	accountUsecase port.AccountUsecase
	validator      *validator.Validator
	logger         *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountUsecase port.AccountUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		accountUsecase: accountUsecase,
		validator:      validator.New(),
		logger:         logger,
	}
}

// Login handles POST /login
// @Summary Log in with email and password
// @Description Verify credentials against the identity provider and return a session token
// @Tags accounts
// @Accept json
// @Produce json
// @Success 200 {object} TokenResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		h.logger.Warn("login request body could not be parsed", "error", err, "ip", c.RealIP())
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: MsgLoginFailed})
	}

	if err := h.validator.Validate(creds); err != nil {
		// Field-level detail stays in the logs; the client gets the
		// generic message regardless of which field failed.
		h.logValidationFailure("login", err, c)
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: MsgLoginFailed})
	}

	token, err := h.accountUsecase.Login(ctx, creds)
	if err != nil {
		h.logger.Error("login failed", "email", creds.Email, "error", err, "ip", c.RealIP())

		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: MsgLoginUserNotFound})
		case errors.Is(err, domain.ErrWrongPassword):
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: MsgLoginWrongPassword})
		default:
			return c.JSON(http.StatusInternalServerError, MessageResponse{Message: MsgLoginFailed})
		}
	}

	h.logger.Info("login succeeded", "email", creds.Email)
	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Signup handles POST /signup
// @Summary Register a new account
// @Description Create an identity and its profile record, returning a session token
// @Tags accounts
// @Accept json
// @Produce json
// @Success 201 {object} TokenResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.SignupRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("signup request body could not be parsed", "error", err, "ip", c.RealIP())
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: MsgSignupInvalid})
	}

	if err := h.validator.Validate(req); err != nil {
		h.logValidationFailure("signup", err, c)
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: MsgSignupInvalid})
	}

	token, err := h.accountUsecase.Signup(ctx, req)
	if err != nil {
		h.logger.Error("signup failed", "email", req.Email, "error", err, "ip", c.RealIP())

		switch {
		case errors.Is(err, domain.ErrProfileExists):
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: MsgSignupEmailInUse})
		case errors.Is(err, domain.ErrEmailAlreadyInUse):
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: MsgSignupConflict})
		default:
			return c.JSON(http.StatusInternalServerError, MessageResponse{Message: MsgSignupFailed})
		}
	}

	h.logger.Info("signup succeeded", "email", req.Email)
	return c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

func (h *AuthHandler) logValidationFailure(op string, err error, c echo.Context) {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		h.logger.Warn("request validation failed",
			"op", op,
			"fields", verr.Errors,
			"ip", c.RealIP())
		return
	}
	h.logger.Warn("request validation failed", "op", op, "error", err, "ip", c.RealIP())
}
