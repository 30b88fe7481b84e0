package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/vivwell/api/pkg/api/errors"
	"github.com/vivwell/api/pkg/auth"
	"github.com/vivwell/api/pkg/models"
)

// AuthHandler handles admin dashboard authentication. There is a single
// admin account configured through the environment.
type AuthHandler struct {
	adminEmail        string
	adminPasswordHash string
	jwtSecret         string
	jwtExpirationHrs  int
	blacklist         *auth.TokenBlacklist
	validator         *validator.Validate
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(adminEmail, adminPasswordHash, jwtSecret string, jwtExpirationHours int, blacklist *auth.TokenBlacklist) *AuthHandler {
	return &AuthHandler{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         jwtSecret,
		jwtExpirationHrs:  jwtExpirationHours,
		blacklist:         blacklist,
		validator:         validator.New(),
	}
}

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expires_at"`
}

// Login godoc
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	if !strings.EqualFold(req.Email, h.adminEmail) || h.adminPasswordHash == "" ||
		!auth.CheckPassword(h.adminPasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Email or password is incorrect",
		})
	}

	token, err := auth.GenerateJWT(h.adminEmail, "admin", h.jwtSecret, h.jwtExpirationHrs)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	expiresAt := time.Now().Add(time.Duration(h.jwtExpirationHrs) * time.Hour)
	return c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		Email:     h.adminEmail,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// Logout godoc
// @Summary Admin logout
// @Description Revoke the current token
// @Tags Auth
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := c.Get("token").(string)
	if !ok || token == "" {
		return apierrors.UnauthorizedError(c)
	}

	// Blacklist for the full token lifetime; expired entries fall out of Redis
	ttl := time.Duration(h.jwtExpirationHrs) * time.Hour
	if err := h.blacklist.Add(c.Request().Context(), token, ttl); err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Message: "Logged out"})
}

// Me godoc
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)

	return c.JSON(http.StatusOK, map[string]string{
		"email": email,
		"role":  role,
	})
}
