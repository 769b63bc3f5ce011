package models

import "time"

// RestockBatch represents restock_batches table, one header per supplier
// delivery
type RestockBatch struct {
	BatchID    uint      `gorm:"primaryKey;column:batch_id" json:"batch_id"`
	BatchDate  time.Time `gorm:"not null" json:"batch_date"`
	SupplierID uint      `gorm:"not null" json:"supplier_id"`
	EmployeeID uint      `gorm:"not null" json:"employee_id"`
	TotalCost  float64   `gorm:"type:decimal(12,2);not null" json:"total_cost"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// TableName specifies the table name for RestockBatch
func (RestockBatch) TableName() string {
	return "restock_batches"
}

// RestockDetail represents restock_details table
type RestockDetail struct {
	DetailID  uint    `gorm:"primaryKey;column:detail_id" json:"detail_id"`
	BatchID   uint    `gorm:"not null" json:"batch_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Quantity  int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitCost  float64 `gorm:"type:decimal(12,2);not null" json:"unit_cost"`

	// Relationships
	Batch   *RestockBatch `gorm:"foreignKey:BatchID" json:"batch,omitempty"`
	Product *Product      `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for RestockDetail
func (RestockDetail) TableName() string {
	return "restock_details"
}
