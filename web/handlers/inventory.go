package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lacsuuuu/ergin-hardware/apperrors"
	"github.com/lacsuuuu/ergin-hardware/models"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InventoryList returns all products
func InventoryList(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := db.WithContext(c.Context()).Order("product_id").Find(&products).Error; err != nil {
			return apperrors.Store("failed to fetch inventory", err)
		}

		return c.JSON(products)
	}
}

type productCreateRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Retail   float64 `json:"retail"`
}

// ProductCreate creates a new product. Stock starts at zero; it only
// moves through restock and sale batches.
func ProductCreate(db *gorm.DB, cache *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req productCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.Validation("invalid request body")
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return apperrors.Validation("name is required")
		}
		if req.Retail < 0 {
			return apperrors.Validation("retail price must not be negative")
		}

		product := models.Product{
			ProductName: req.Name,
			Category:    optionalString(req.Category),
			Stock:       0,
			UnitPrice:   req.Retail,
		}

		if err := db.WithContext(c.Context()).Create(&product).Error; err != nil {
			return apperrors.Store("failed to create product", err)
		}

		invalidateDashboardCache(c, cache)

		return c.Status(fiber.StatusCreated).JSON(product)
	}
}

// ProductDelete removes a product by id
func ProductDelete(db *gorm.DB, cache *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return apperrors.Validation("invalid product id")
		}

		result := db.WithContext(c.Context()).Delete(&models.Product{}, id)
		if result.Error != nil {
			return apperrors.Store("failed to delete product", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("product %d not found", id)
		}

		invalidateDashboardCache(c, cache)

		return c.JSON(fiber.Map{"success": true})
	}
}
