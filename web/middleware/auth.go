package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lacsuuuu/ergin-hardware/apperrors"
	"github.com/lacsuuuu/ergin-hardware/models"
	"gorm.io/gorm"
)

const (
	// ActorKey is the Locals key under which RequireAuth stores the
	// authenticated employee.
	ActorKey = "actor"

	tokenTTL = 12 * time.Hour
)

// SignToken issues a session token whose subject is the user account id.
func SignToken(userID uint, role, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  float64(userID),
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a token and returns the user account id it names.
func ParseToken(tokenString, secret string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid subject in token")
	}
	return uint(sub), nil
}

// RequireAuth resolves the Bearer token to an employee and stores it in
// Locals so handlers can attribute writes to the real actor.
func RequireAuth(secret string, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.Auth("Authorization header is required")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return apperrors.Auth("invalid token format, must be 'Bearer <token>'")
		}

		userID, err := ParseToken(tokenString, secret)
		if err != nil {
			return apperrors.Auth("invalid or expired token")
		}

		var employee models.Employee
		if err := db.WithContext(c.Context()).
			Where("user_id = ?", userID).First(&employee).Error; err != nil {
			return apperrors.Auth("employee associated with token not found")
		}

		c.Locals(ActorKey, employee)
		return c.Next()
	}
}

// Actor returns the employee stored by RequireAuth.
func Actor(c *fiber.Ctx) (models.Employee, bool) {
	employee, ok := c.Locals(ActorKey).(models.Employee)
	return employee, ok
}
