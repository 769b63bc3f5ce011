package models

import "time"

// SalesTransaction represents sales_transactions table, one header per
// checkout
type SalesTransaction struct {
	SalesID     uint      `gorm:"primaryKey;column:sales_id" json:"sales_id"`
	SalesDate   time.Time `gorm:"column:sales_date;not null" json:"date"`
	CustomerID  uint      `gorm:"not null" json:"customer_id"`
	EmployeeID  uint      `gorm:"not null" json:"employee_id"`
	TotalAmount float64   `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// TableName specifies the table name for SalesTransaction
func (SalesTransaction) TableName() string {
	return "sales_transactions"
}

// SalesDetail represents sales_details table
type SalesDetail struct {
	DetailID  uint    `gorm:"primaryKey;column:detail_id" json:"detail_id"`
	SalesID   uint    `gorm:"not null" json:"sales_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Quantity  int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price     float64 `gorm:"type:decimal(12,2);not null" json:"price"`
	Subtotal  float64 `gorm:"type:decimal(12,2);not null" json:"subtotal"`

	// Relationships
	Sale    *SalesTransaction `gorm:"foreignKey:SalesID" json:"sale,omitempty"`
	Product *Product          `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for SalesDetail
func (SalesDetail) TableName() string {
	return "sales_details"
}
