package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/example/linkhub/internal/config"
	"github.com/example/linkhub/internal/logger"
	"github.com/example/linkhub/internal/utils"
)

// AuthHandler issues admin console tokens.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Login exchanges the admin password for a bearer token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if !utils.CheckAdminPassword(h.cfg.AdminPasswordHash, h.cfg.AdminPassword, req.Password) {
		logger.Warn("admin login rejected", zap.String("remote_addr", c.IP()))
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, expires, err := utils.GenerateToken(h.cfg.JWTSecret, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return respond(c, fiber.Map{
		"token":      token,
		"expires_at": expires.UTC().Format(time.RFC3339),
	})
}
