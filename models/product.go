package models

import "time"

// Product represents products table
type Product struct {
	ProductID   uint      `gorm:"primaryKey;column:product_id" json:"product_id"`
	ProductName string    `gorm:"type:varchar(200);not null" json:"product_name"`
	Category    *string   `gorm:"type:varchar(100)" json:"category,omitempty"`
	Stock       int       `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	UnitPrice   float64   `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	SupplierID  *uint     `json:"supplier_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
