package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/lacsuuuu/ergin-hardware/config"
	"github.com/lacsuuuu/ergin-hardware/database"
)

func main() {
	// Command line flags
	var (
		drop = flag.Bool("drop", false, "Drop all tables before migration")
		seed = flag.Bool("seed", false, "Seed starter data after migration")
		help = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("Starting database migration tool")
	fmt.Printf("Database: %s@%s:%s/%s\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatalf("Database connection check failed: %v", err)
	}

	// Drop tables if requested
	if *drop {
		fmt.Println("Dropping all tables...")
		if err := dropAllTables(); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("All tables dropped")
	}

	// Run AutoMigrate
	fmt.Println("Running GORM AutoMigrate...")
	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("Failed to run migration: %v", err)
	}
	fmt.Println("Migration completed successfully")

	if *seed {
		fmt.Println("Seeding starter data...")
		if err := database.SeedData(database.DB); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		fmt.Println("Database seeded successfully")
	}
}

func dropAllTables() error {
	var tables []string
	err := database.DB.Raw(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_type = 'BASE TABLE'
	`).Scan(&tables).Error
	if err != nil {
		return err
	}

	for _, table := range tables {
		fmt.Printf("  Dropping table: %s\n", table)
		if err := database.DB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("  Warning: Failed to drop %s: %v", table, err)
		}
	}
	return nil
}

func showHelp() {
	log.Println(`
Database Migration Tool

Usage:
  go run cmd/migrate/main.go [options]

Options:
  -drop  Drop all tables before migration
  -seed  Seed starter data after migration
  -help  Show this help message`)
}
