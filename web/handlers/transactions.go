package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lacsuuuu/ergin-hardware/apperrors"
	"github.com/lacsuuuu/ergin-hardware/ledger"
	"github.com/lacsuuuu/ergin-hardware/web/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type restockItem struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitCost  float64 `json:"unit_cost"`
}

type restockRequest struct {
	SupplierID uint          `json:"supplier_id"`
	TotalCost  float64       `json:"total_cost"`
	Items      []restockItem `json:"items"`
}

// Restock applies a supplier delivery: batch header, detail rows, stock
// increments and audit log entries, all-or-nothing.
func Restock(db *gorm.DB, cache *redis.Client) fiber.Handler {
	coordinator := ledger.NewCoordinator(db)

	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return apperrors.Auth("authentication required")
		}

		var req restockRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.Validation("invalid request body")
		}

		lines := make([]ledger.Line, 0, len(req.Items))
		for _, item := range req.Items {
			lines = append(lines, ledger.Line{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitValue: item.UnitCost,
			})
		}

		result, err := coordinator.Process(c.Context(), actor.EmployeeID, ledger.Batch{
			Kind:    ledger.KindRestock,
			PartyID: req.SupplierID,
			Total:   req.TotalCost,
			Lines:   lines,
		})
		if err != nil {
			return err
		}

		invalidateDashboardCache(c, cache)

		return c.JSON(fiber.Map{
			"success":         true,
			"batch_id":        result.ID,
			"items_processed": result.LineCount,
		})
	}
}

type saleItem struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type saleRequest struct {
	CustomerID  uint       `json:"customer_id"`
	TotalAmount float64    `json:"total_amount"`
	Items       []saleItem `json:"items"`
}

// Sales applies a checkout: transaction header, detail rows, stock
// deductions and audit log entries. A sale that would drive any
// product's stock negative fails whole with no partial deduction.
func Sales(db *gorm.DB, cache *redis.Client) fiber.Handler {
	coordinator := ledger.NewCoordinator(db)

	return func(c *fiber.Ctx) error {
		actor, ok := middleware.Actor(c)
		if !ok {
			return apperrors.Auth("authentication required")
		}

		var req saleRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.Validation("invalid request body")
		}

		lines := make([]ledger.Line, 0, len(req.Items))
		for _, item := range req.Items {
			lines = append(lines, ledger.Line{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitValue: item.Price,
			})
		}

		result, err := coordinator.Process(c.Context(), actor.EmployeeID, ledger.Batch{
			Kind:    ledger.KindSale,
			PartyID: req.CustomerID,
			Total:   req.TotalAmount,
			Lines:   lines,
		})
		if err != nil {
			return err
		}

		invalidateDashboardCache(c, cache)

		return c.JSON(fiber.Map{
			"success":         true,
			"sales_id":        result.ID,
			"items_processed": result.LineCount,
		})
	}
}
