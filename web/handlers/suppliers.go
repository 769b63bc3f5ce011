package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lacsuuuu/ergin-hardware/apperrors"
	"github.com/lacsuuuu/ergin-hardware/models"
	"gorm.io/gorm"
)

// SupplierList returns all suppliers
func SupplierList(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var suppliers []models.Supplier
		if err := db.WithContext(c.Context()).Order("supplier_id").Find(&suppliers).Error; err != nil {
			return apperrors.Store("failed to fetch suppliers", err)
		}

		return c.JSON(suppliers)
	}
}

type supplierCreateRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// SupplierCreate creates a new supplier
func SupplierCreate(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req supplierCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.Validation("invalid request body")
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return apperrors.Validation("name is required")
		}

		supplier := models.Supplier{
			SupplierName: req.Name,
			Contact:      optionalString(req.Contact),
			Address:      optionalString(req.Address),
		}

		if err := db.WithContext(c.Context()).Create(&supplier).Error; err != nil {
			return apperrors.Store("failed to create supplier", err)
		}

		return c.Status(fiber.StatusCreated).JSON(supplier)
	}
}

// optionalString maps empty form values onto NULL columns
func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
