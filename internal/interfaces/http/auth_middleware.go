package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/primabarber/barberstock-api/internal/application/dto"
	"github.com/primabarber/barberstock-api/pkg/jwt"
)

// Locals keys set by AuthMiddleware.
const (
	LocalUserID   = "user_id"
	LocalOutletID = "outlet_id"
	LocalRole     = "role"
)

// AuthMiddleware validates the Bearer JWT and loads UserID, OutletID and Role
// into c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		userID, outletID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalOutletID, outletID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole allows the request through only when the token carries one of
// the given roles. Must run after AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token carries no role"})
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "role not allowed for this operation"})
	}
}

// GetUserID returns the UserID from the context (after auth middleware).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetOutletID returns the OutletID from the context (after auth middleware).
func GetOutletID(c *fiber.Ctx) string {
	return localString(c, LocalOutletID)
}

// GetRole returns the role from the context (after auth middleware).
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
