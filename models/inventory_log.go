package models

import "time"

// Transaction types recorded in the inventory audit log.
const (
	TransactionRestock = "Restock"
	TransactionSale    = "Sale"
)

// InventoryLog represents inventory_logs table. QuantityChange is
// signed: positive for restocks, negative for sales.
type InventoryLog struct {
	LogID           uint      `gorm:"primaryKey;column:log_id" json:"log_id"`
	ProductID       uint      `gorm:"not null" json:"product_id"`
	TransactionType string    `gorm:"type:varchar(20);not null" json:"transaction_type"`
	QuantityChange  int       `gorm:"not null" json:"quantity_change"`
	LogDate         time.Time `gorm:"not null" json:"log_date"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for InventoryLog
func (InventoryLog) TableName() string {
	return "inventory_logs"
}
