package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lacsuuuu/ergin-hardware/apperrors"
	"github.com/lacsuuuu/ergin-hardware/models"
	"gorm.io/gorm"
)

const reportDateLayout = "2006-01-02"

type salesRecordRow struct {
	SalesID      uint      `json:"sales_id"`
	Date         time.Time `json:"date"`
	TotalAmount  float64   `json:"total_amount"`
	CustomerName string    `json:"customer_name"`
}

// SalesRecord returns the sales ledger joined with customer names,
// newest first.
func SalesRecord(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []salesRecordRow
		err := db.WithContext(c.Context()).Raw(`
			SELECT
				st.sales_id,
				st.sales_date AS date,
				st.total_amount,
				cu.name AS customer_name
			FROM sales_transactions st
			JOIN customers cu ON st.customer_id = cu.customer_id
			ORDER BY st.sales_id DESC
		`).Scan(&rows).Error
		if err != nil {
			return apperrors.Store("failed to fetch sales records", err)
		}

		return c.JSON(rows)
	}
}

type saleItemRow struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

// SalesView returns one sale with its customer and line items,
// product names included.
func SalesView(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return apperrors.Validation("invalid sales id")
		}

		tx := db.WithContext(c.Context())

		var sale models.SalesTransaction
		if err := tx.First(&sale, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("sale %d not found", id)
			}
			return apperrors.Store("failed to fetch sale", err)
		}

		var customer models.Customer
		if err := tx.First(&customer, sale.CustomerID).Error; err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Store("failed to fetch customer", err)
		}

		var items []saleItemRow
		err = tx.Raw(`
			SELECT
				sd.product_id,
				p.product_name AS name,
				sd.quantity,
				sd.price,
				sd.subtotal
			FROM sales_details sd
			JOIN products p ON sd.product_id = p.product_id
			WHERE sd.sales_id = ?
			ORDER BY sd.detail_id
		`, id).Scan(&items).Error
		if err != nil {
			return apperrors.Store("failed to fetch sale items", err)
		}

		return c.JSON(fiber.Map{
			"sale":     sale,
			"customer": customer,
			"items":    items,
		})
	}
}

type reportRange struct {
	Start time.Time
	End   time.Time
}

// parseReportRange validates the start_date/end_date query pair.
// Both bounds are inclusive.
func parseReportRange(startStr, endStr string) (reportRange, error) {
	if startStr == "" || endStr == "" {
		return reportRange{}, apperrors.Validation("start_date and end_date are required")
	}

	start, err := time.Parse(reportDateLayout, startStr)
	if err != nil {
		return reportRange{}, apperrors.Validation("start_date must be formatted as YYYY-MM-DD")
	}
	end, err := time.Parse(reportDateLayout, endStr)
	if err != nil {
		return reportRange{}, apperrors.Validation("end_date must be formatted as YYYY-MM-DD")
	}
	if start.After(end) {
		return reportRange{}, apperrors.Validation("start_date must not be after end_date")
	}

	return reportRange{Start: start, End: end}, nil
}

// SalesReport returns sales within an inclusive date range, ascending
// by date, with the revenue sum for the period.
func SalesReport(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := parseReportRange(c.Query("start_date"), c.Query("end_date"))
		if err != nil {
			return err
		}

		var rows []salesRecordRow
		err = db.WithContext(c.Context()).Raw(`
			SELECT
				st.sales_id,
				st.sales_date AS date,
				st.total_amount,
				cu.name AS customer_name
			FROM sales_transactions st
			JOIN customers cu ON st.customer_id = cu.customer_id
			WHERE DATE(st.sales_date) BETWEEN ? AND ?
			ORDER BY st.sales_date ASC
		`, r.Start.Format(reportDateLayout), r.End.Format(reportDateLayout)).Scan(&rows).Error
		if err != nil {
			return apperrors.Store("failed to fetch sales report", err)
		}

		var totalRevenue float64
		for _, row := range rows {
			totalRevenue += row.TotalAmount
		}

		return c.JSON(fiber.Map{
			"start_date":         r.Start.Format(reportDateLayout),
			"end_date":           r.End.Format(reportDateLayout),
			"total_transactions": len(rows),
			"total_revenue":      totalRevenue,
			"sales_data":         rows,
		})
	}
}
