package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lacsuuuu/ergin-hardware/apperrors"
	"github.com/lacsuuuu/ergin-hardware/models"
	"gorm.io/gorm"
)

// ClientList returns all customers
func ClientList(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customers []models.Customer
		if err := db.WithContext(c.Context()).Order("customer_id").Find(&customers).Error; err != nil {
			return apperrors.Store("failed to fetch clients", err)
		}

		return c.JSON(customers)
	}
}

type clientCreateRequest struct {
	Name          string `json:"name"`
	Contact       string `json:"contact"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	BusinessStyle string `json:"business_style"`
	TIN           string `json:"tin"`
}

// ClientCreate creates a new customer. The response is a single-element
// array; the POS frontend reads the generated id from data[0].
func ClientCreate(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req clientCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.Validation("invalid request body")
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return apperrors.Validation("name is required")
		}

		customer := models.Customer{
			Name:          req.Name,
			Contact:       optionalString(req.Contact),
			Email:         optionalString(req.Email),
			Address:       optionalString(req.Address),
			BusinessStyle: optionalString(req.BusinessStyle),
			TIN:           optionalString(req.TIN),
		}

		if err := db.WithContext(c.Context()).Create(&customer).Error; err != nil {
			return apperrors.Store("failed to create client", err)
		}

		return c.Status(fiber.StatusCreated).JSON([]models.Customer{customer})
	}
}
