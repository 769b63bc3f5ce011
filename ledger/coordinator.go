// Package ledger applies restock and sale batches as a single unit of
// work: header row, per-item detail rows, stock mutation and audit log
// entries either all commit or none do.
package ledger

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/lacsuuuu/ergin-hardware/apperrors"
	"github.com/lacsuuuu/ergin-hardware/models"
	"gorm.io/gorm"
)

// Kind selects the direction of a batch.
type Kind string

const (
	KindRestock Kind = "restock"
	KindSale    Kind = "sale"
)

// totalEpsilon tolerates float drift between the client-computed total
// and the server-side recomputation.
const totalEpsilon = 0.01

// Line is a single product/quantity/value tuple within a batch.
// UnitValue is the unit cost for restocks and the unit price for sales.
type Line struct {
	ProductID uint
	Quantity  int
	UnitValue float64
}

// Batch describes one restock or sale submission. PartyID references a
// supplier for restocks and a customer for sales.
type Batch struct {
	Kind    Kind
	PartyID uint
	Total   float64
	Lines   []Line
}

// Result reports the generated header identifier and processed line count.
type Result struct {
	ID        uint
	LineCount int
}

// Coordinator runs batches against the store.
type Coordinator struct {
	db *gorm.DB
}

// NewCoordinator creates a coordinator bound to a database handle.
func NewCoordinator(db *gorm.DB) *Coordinator {
	return &Coordinator{db: db}
}

// Process validates and applies a batch on behalf of actorID, the
// authenticated employee. On any failure the store is left unchanged.
func (c *Coordinator) Process(ctx context.Context, actorID uint, batch Batch) (*Result, error) {
	if err := validateBatch(batch); err != nil {
		return nil, err
	}

	tx := c.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, apperrors.Store("failed to start transaction", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	result, err := c.apply(tx, actorID, batch)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.Store("failed to commit batch", err)
	}
	return result, nil
}

func (c *Coordinator) apply(tx *gorm.DB, actorID uint, batch Batch) (*Result, error) {
	if err := checkPartyExists(tx, batch.Kind, batch.PartyID); err != nil {
		return nil, err
	}

	headerID, err := insertHeader(tx, actorID, batch)
	if err != nil {
		return nil, err
	}

	for _, line := range batch.Lines {
		if err := insertDetail(tx, batch.Kind, headerID, line); err != nil {
			return nil, err
		}
		if err := adjustStock(tx, line.ProductID, stockDelta(batch.Kind, line.Quantity)); err != nil {
			return nil, err
		}
		if err := appendLog(tx, batch.Kind, line); err != nil {
			return nil, err
		}
	}

	return &Result{ID: headerID, LineCount: len(batch.Lines)}, nil
}

// validateBatch enforces the request schema before any write happens.
func validateBatch(batch Batch) error {
	if batch.Kind != KindRestock && batch.Kind != KindSale {
		return apperrors.Validation("unknown batch kind %q", batch.Kind)
	}
	if batch.PartyID == 0 {
		return apperrors.Validation("%s is required", partyField(batch.Kind))
	}
	if len(batch.Lines) == 0 {
		return apperrors.Validation("items must not be empty")
	}

	var sum float64
	for i, line := range batch.Lines {
		if line.ProductID == 0 {
			return apperrors.Validation("items[%d]: product_id is required", i)
		}
		if line.Quantity <= 0 {
			return apperrors.Validation("items[%d]: quantity must be a positive integer", i)
		}
		if line.UnitValue < 0 {
			return apperrors.Validation("items[%d]: unit value must not be negative", i)
		}
		sum += float64(line.Quantity) * line.UnitValue
	}

	if math.Abs(sum-batch.Total) > totalEpsilon {
		return apperrors.Validation("declared total %.2f does not match line total %.2f", batch.Total, sum)
	}
	return nil
}

// stockDelta converts a line quantity into a signed stock change.
func stockDelta(kind Kind, quantity int) int {
	if kind == KindSale {
		return -quantity
	}
	return quantity
}

func partyField(kind Kind) string {
	if kind == KindSale {
		return "customer_id"
	}
	return "supplier_id"
}

func checkPartyExists(tx *gorm.DB, kind Kind, partyID uint) error {
	var count int64
	var err error
	switch kind {
	case KindSale:
		err = tx.Model(&models.Customer{}).Where("customer_id = ?", partyID).Count(&count).Error
	default:
		err = tx.Model(&models.Supplier{}).Where("supplier_id = ?", partyID).Count(&count).Error
	}
	if err != nil {
		return apperrors.Store("failed to look up "+partyField(kind), err)
	}
	if count == 0 {
		return apperrors.NotFound("%s %d not found", partyField(kind), partyID)
	}
	return nil
}

func insertHeader(tx *gorm.DB, actorID uint, batch Batch) (uint, error) {
	now := time.Now()
	if batch.Kind == KindSale {
		header := models.SalesTransaction{
			SalesDate:   now,
			CustomerID:  batch.PartyID,
			EmployeeID:  actorID,
			TotalAmount: batch.Total,
		}
		if err := tx.Create(&header).Error; err != nil {
			return 0, apperrors.Store("failed to create sales transaction", err)
		}
		return header.SalesID, nil
	}

	header := models.RestockBatch{
		BatchDate:  now,
		SupplierID: batch.PartyID,
		EmployeeID: actorID,
		TotalCost:  batch.Total,
	}
	if err := tx.Create(&header).Error; err != nil {
		return 0, apperrors.Store("failed to create restock batch", err)
	}
	return header.BatchID, nil
}

func insertDetail(tx *gorm.DB, kind Kind, headerID uint, line Line) error {
	if kind == KindSale {
		detail := models.SalesDetail{
			SalesID:   headerID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.UnitValue,
			Subtotal:  float64(line.Quantity) * line.UnitValue,
		}
		if err := tx.Create(&detail).Error; err != nil {
			return apperrors.Store("failed to create sales detail", err)
		}
		return nil
	}

	detail := models.RestockDetail{
		BatchID:   headerID,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
		UnitCost:  line.UnitValue,
	}
	if err := tx.Create(&detail).Error; err != nil {
		return apperrors.Store("failed to create restock detail", err)
	}
	return nil
}

// adjustStock applies a signed delta to a product's stock counter with
// a single atomic UPDATE, so concurrent batches touching the same
// product cannot lose updates. Negative deltas carry a non-negative
// guard: zero rows affected means the product is missing or the sale
// would overdraw it.
func adjustStock(tx *gorm.DB, productID uint, delta int) error {
	query := tx.Model(&models.Product{}).Where("product_id = ?", productID)
	if delta < 0 {
		query = query.Where("stock >= ?", -delta)
	}

	result := query.UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return apperrors.Store("failed to update stock", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var product models.Product
	err := tx.Select("product_id", "stock").First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("product %d not found", productID)
	}
	if err != nil {
		return apperrors.Store("failed to look up product", err)
	}
	return apperrors.InsufficientStock(productID, product.Stock, -delta)
}

func appendLog(tx *gorm.DB, kind Kind, line Line) error {
	entry := models.InventoryLog{
		ProductID:       line.ProductID,
		TransactionType: models.TransactionRestock,
		QuantityChange:  stockDelta(kind, line.Quantity),
		LogDate:         time.Now(),
	}
	if kind == KindSale {
		entry.TransactionType = models.TransactionSale
	}
	if err := tx.Create(&entry).Error; err != nil {
		return apperrors.Store("failed to append inventory log", err)
	}
	return nil
}
