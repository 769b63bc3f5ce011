package database

import (
	"log"

	"github.com/lacsuuuu/ergin-hardware/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData populates an empty database with a starter admin account and
// a small catalog. Existing rows are left untouched.
func SeedData(db *gorm.DB) error {
	if err := seedAdminAccount(db); err != nil {
		return err
	}
	return seedCatalog(db)
}

func seedAdminAccount(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Default password is meant for first login only
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := models.User{
			Username:     "admin",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		employee := models.Employee{
			Name:   "Administrator",
			UserID: admin.UserID,
		}
		if err := tx.Create(&employee).Error; err != nil {
			return err
		}

		log.Println("Seeded admin account (username: admin)")
		return nil
	})
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Supplier{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	contact := "0917-555-0101"
	address := "Warehouse District, Quezon City"
	supplier := models.Supplier{
		SupplierName: "MegaBuild Trading",
		Contact:      &contact,
		Address:      &address,
	}
	if err := db.Create(&supplier).Error; err != nil {
		return err
	}

	tools := "Tools"
	fasteners := "Fasteners"
	products := []models.Product{
		{ProductName: "Claw Hammer 16oz", Category: &tools, Stock: 24, UnitPrice: 350.00, SupplierID: &supplier.SupplierID},
		{ProductName: "Wood Screws 2in (box)", Category: &fasteners, Stock: 60, UnitPrice: 120.00, SupplierID: &supplier.SupplierID},
		{ProductName: "Adjustable Wrench 10in", Category: &tools, Stock: 8, UnitPrice: 480.00, SupplierID: &supplier.SupplierID},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d products and 1 supplier", len(products))
	return nil
}
