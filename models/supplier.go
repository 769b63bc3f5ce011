package models

import "time"

// Supplier represents suppliers table
type Supplier struct {
	SupplierID   uint      `gorm:"primaryKey;column:supplier_id" json:"supplier_id"`
	SupplierName string    `gorm:"type:varchar(200);not null" json:"supplier_name"`
	Contact      *string   `gorm:"type:varchar(100)" json:"contact,omitempty"`
	Address      *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for Supplier
func (Supplier) TableName() string {
	return "suppliers"
}
