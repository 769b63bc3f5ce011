package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lacsuuuu/ergin-hardware/apperrors"
	"github.com/lacsuuuu/ergin-hardware/config"
	"github.com/lacsuuuu/ergin-hardware/models"
	"github.com/lacsuuuu/ergin-hardware/web/middleware"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks credentials against the stored bcrypt hash and issues a
// session token naming the account.
func Login(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.Validation("invalid request body")
		}
		if req.Username == "" || req.Password == "" {
			return apperrors.Validation("username and password are required")
		}

		var user models.User
		err := db.WithContext(c.Context()).Where("username = ?", req.Username).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Auth("invalid login")
		}
		if err != nil {
			return apperrors.Store("failed to look up user", err)
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			return apperrors.Auth("invalid login")
		}

		token, err := middleware.SignToken(user.UserID, user.Role, cfg.Auth.JWTSecret)
		if err != nil {
			return apperrors.Store("failed to issue session token", err)
		}

		return c.JSON(fiber.Map{
			"success":  true,
			"username": user.Username,
			"role":     user.Role,
			"token":    token,
		})
	}
}

// employeeRow is an employee joined with its user account
type employeeRow struct {
	EmployeeID uint    `json:"employee_id"`
	Name       string  `json:"name"`
	Contact    *string `json:"contact"`
	Email      *string `json:"email"`
	Address    *string `json:"address"`
	Username   string  `json:"username"`
	Role       string  `json:"role"`
}

// EmployeeList returns all employees joined with their accounts
func EmployeeList(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var employees []employeeRow
		err := db.WithContext(c.Context()).Raw(`
			SELECT
				e.employee_id,
				e.name,
				e.contact,
				e.email,
				e.address,
				u.username,
				u.role
			FROM employees e
			JOIN users u ON e.user_id = u.user_id
			ORDER BY e.employee_id
		`).Scan(&employees).Error
		if err != nil {
			return apperrors.Store("failed to fetch employees", err)
		}

		return c.JSON(employees)
	}
}

type employeeCreateRequest struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// userCreateError maps a failed account insert onto the taxonomy. A
// unique-index violation means the username was claimed by a concurrent
// request after the pre-check, which is still the caller's 400.
func userCreateError(err error, username string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Validation("username %q is already taken", username)
	}
	return apperrors.Store("failed to create user account", err)
}

// EmployeeCreate creates a user account and its employee record in one
// transaction.
func EmployeeCreate(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req employeeCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.Validation("invalid request body")
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Username = strings.TrimSpace(req.Username)
		if req.Name == "" || req.Username == "" || req.Password == "" {
			return apperrors.Validation("name, username and password are required")
		}
		if req.Role == "" {
			req.Role = models.RoleCashier
		}
		if req.Role != models.RoleAdmin && req.Role != models.RoleCashier {
			return apperrors.Validation("role must be %s or %s", models.RoleAdmin, models.RoleCashier)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cfg.Auth.BcryptCost)
		if err != nil {
			return apperrors.Store("failed to hash password", err)
		}

		var employee models.Employee
		err = db.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
				return apperrors.Store("failed to check username", err)
			}
			if count > 0 {
				return apperrors.Validation("username %q is already taken", req.Username)
			}

			user := models.User{
				Username:     req.Username,
				PasswordHash: string(hash),
				Role:         req.Role,
			}
			if err := tx.Create(&user).Error; err != nil {
				return userCreateError(err, req.Username)
			}

			employee = models.Employee{
				Name:    req.Name,
				Contact: optionalString(req.Contact),
				Email:   optionalString(req.Email),
				Address: optionalString(req.Address),
				UserID:  user.UserID,
			}
			if err := tx.Create(&employee).Error; err != nil {
				return apperrors.Store("failed to create employee", err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success":     true,
			"employee_id": employee.EmployeeID,
		})
	}
}
