package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clubsuite/backoffice/internal/api/metrics"
	"github.com/clubsuite/backoffice/internal/core/domain"
	"github.com/clubsuite/backoffice/internal/core/ports"
)

type AuthHandler struct {
	auth  ports.AuthService
	users ports.UserService
	log   zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, users ports.UserService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, log: log}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success bool                  `json:"success"`
	User    *domain.SanitizedUser `json:"user,omitempty"`
	Token   string                `json:"token,omitempty"`
	Message string                `json:"message,omitempty"`
}

type logoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  loginResponse
// @Failure      401   {object}  loginResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, loginResponse{Success: false, Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, loginResponse{Success: false, Message: err.Error()})
	}

	user, token, err := h.auth.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, loginResponse{Success: false, Message: "invalid credentials"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Success: true, User: user, Token: token})
}

// Logout ends the caller's session. Always succeeds from the caller's
// perspective; server-side revocation is best-effort.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  logoutResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := bearerToken(c); token != "" {
		if err := h.auth.Revoke(c.Request().Context(), token); err != nil {
			h.log.Warn().Err(err).Msg("session revocation failed")
		} else {
			metrics.RevocationsTotal.Inc()
		}
	}
	return c.JSON(http.StatusOK, logoutResponse{Success: true, Message: "logged out"})
}

// Me returns the authenticated user's sanitized record.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.SanitizedUser
// @Failure      401  {object}  logoutResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	user, err := h.users.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func bearerToken(c echo.Context) string {
	parts := strings.SplitN(c.Request().Header.Get(echo.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
