package database

import (
	"log"

	"github.com/lacsuuuu/ergin-hardware/models"
	"gorm.io/gorm"
)

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Starting GORM AutoMigrate...")

	// Parent tables first, AllModels is already in dependency order
	for _, model := range models.AllModels() {
		if err := db.AutoMigrate(model); err != nil {
			return err
		}
	}

	// Create indexes
	log.Println("Creating indexes...")
	if err := CreateIndexes(db); err != nil {
		log.Printf("Warning: Some indexes could not be created: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

// CreateIndexes adds indexes the hot queries rely on
func CreateIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_stock ON products (stock)",
		"CREATE INDEX IF NOT EXISTS idx_sales_transactions_date ON sales_transactions (sales_date)",
		"CREATE INDEX IF NOT EXISTS idx_sales_details_sales_id ON sales_details (sales_id)",
		"CREATE INDEX IF NOT EXISTS idx_restock_details_batch_id ON restock_details (batch_id)",
		"CREATE INDEX IF NOT EXISTS idx_inventory_logs_product_id ON inventory_logs (product_id)",
	}

	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
