package handlers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lacsuuuu/ergin-hardware/apperrors"
	"github.com/lacsuuuu/ergin-hardware/models"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	// lowStockThreshold marks products that need reordering.
	lowStockThreshold = 10

	dashboardCacheKey = "dashboard:summary"
	dashboardCacheTTL = 30 * time.Second
)

type recentSale struct {
	SalesID     uint      `json:"sales_id"`
	Date        time.Time `json:"date"`
	TotalAmount float64   `json:"total_amount"`
}

type dashboardSummary struct {
	TotalRevenue    float64          `json:"total_revenue"`
	TotalSalesCount int64            `json:"total_sales_count"`
	TotalProducts   int64            `json:"total_products"`
	LowStockCount   int              `json:"low_stock_count"`
	LowStockItems   []models.Product `json:"low_stock_items"`
	RecentSales     []recentSale     `json:"recent_sales"`
}

// Dashboard aggregates the storefront summary: lifetime revenue, sale
// and product counts, low-stock alerts and the five most recent sales.
// The queries run in parallel; the result is cached briefly and
// invalidated whenever a commit changes the underlying rows.
func Dashboard(db *gorm.DB, cache *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cache != nil {
			cached, err := cache.Get(c.Context(), dashboardCacheKey).Result()
			if err == nil {
				c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
				return c.SendString(cached)
			}
		}

		summary := dashboardSummary{
			LowStockItems: []models.Product{},
			RecentSales:   []recentSale{},
		}

		g, ctx := errgroup.WithContext(c.Context())

		g.Go(func() error {
			return db.WithContext(ctx).Raw(
				"SELECT COALESCE(SUM(total_amount), 0) FROM sales_transactions",
			).Scan(&summary.TotalRevenue).Error
		})
		g.Go(func() error {
			return db.WithContext(ctx).Model(&models.SalesTransaction{}).Count(&summary.TotalSalesCount).Error
		})
		g.Go(func() error {
			return db.WithContext(ctx).Model(&models.Product{}).Count(&summary.TotalProducts).Error
		})
		g.Go(func() error {
			return db.WithContext(ctx).
				Where("stock <= ?", lowStockThreshold).
				Order("stock ASC").
				Find(&summary.LowStockItems).Error
		})
		g.Go(func() error {
			return db.WithContext(ctx).Raw(`
				SELECT sales_id, sales_date AS date, total_amount
				FROM sales_transactions
				ORDER BY sales_id DESC
				LIMIT 5
			`).Scan(&summary.RecentSales).Error
		})

		if err := g.Wait(); err != nil {
			return apperrors.Store("failed to load dashboard", err)
		}

		summary.LowStockCount = len(summary.LowStockItems)

		if cache != nil {
			if payload, err := json.Marshal(summary); err == nil {
				cache.Set(c.Context(), dashboardCacheKey, payload, dashboardCacheTTL)
			}
		}

		return c.JSON(summary)
	}
}

// invalidateDashboardCache drops the cached summary after any write
// that changes revenue, stock or product counts.
func invalidateDashboardCache(c *fiber.Ctx, cache *redis.Client) {
	if cache != nil {
		cache.Del(c.Context(), dashboardCacheKey)
	}
}
