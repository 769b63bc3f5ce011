package models

import "time"

// Customer represents customers table
type Customer struct {
	CustomerID    uint      `gorm:"primaryKey;column:customer_id" json:"customer_id"`
	Name          string    `gorm:"type:varchar(200);not null" json:"name"`
	Contact       *string   `gorm:"type:varchar(100)" json:"contact,omitempty"`
	Email         *string   `gorm:"type:varchar(100)" json:"email,omitempty"`
	Address       *string   `gorm:"type:text" json:"address,omitempty"`
	BusinessStyle *string   `gorm:"type:varchar(100)" json:"business_style,omitempty"`
	TIN           *string   `gorm:"column:tin;type:varchar(30)" json:"tin,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
