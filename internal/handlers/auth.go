package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/example/onkaul/internal/config"
	"github.com/example/onkaul/internal/utils"
)

// AuthHandler issues admin console session tokens.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginRequest struct {
	Passcode string `json:"passcode"`
}

// Login exchanges the shared admin passcode for a session token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Passcode == "" {
		return fiber.NewError(fiber.StatusBadRequest, "passcode is required")
	}

	if !h.passcodeMatches(req.Passcode) {
		return fiber.NewError(fiber.StatusUnauthorized, "incorrect code")
	}

	token, err := utils.GenerateAdminToken(h.cfg.JWTSecret, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}

func (h *AuthHandler) passcodeMatches(passcode string) bool {
	if h.cfg.AdminPasscodeHash != "" {
		return utils.CheckPasscode(h.cfg.AdminPasscodeHash, passcode)
	}
	return subtle.ConstantTimeCompare([]byte(h.cfg.AdminPasscode), []byte(passcode)) == 1
}
