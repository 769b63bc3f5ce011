package models

import "time"

// Role values stored on user accounts.
const (
	RoleAdmin   = "Admin"
	RoleCashier = "Cashier"
)

// User represents users table. Credentials are stored as bcrypt hashes,
// never plaintext.
type User struct {
	UserID       uint      `gorm:"primaryKey;column:user_id" json:"user_id"`
	Username     string    `gorm:"type:varchar(50);not null;unique" json:"username"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'Cashier'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// Employee represents employees table
type Employee struct {
	EmployeeID uint      `gorm:"primaryKey;column:employee_id" json:"employee_id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Contact    *string   `gorm:"type:varchar(100)" json:"contact,omitempty"`
	Email      *string   `gorm:"type:varchar(100)" json:"email,omitempty"`
	Address    *string   `gorm:"type:text" json:"address,omitempty"`
	UserID     uint      `gorm:"not null;unique" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
