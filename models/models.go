package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&Supplier{},
		&Customer{},
		&User{},

		// 2. Tables with single dependencies
		&Product{},  // depends on: Supplier
		&Employee{}, // depends on: User

		// 3. Header tables
		&RestockBatch{},     // depends on: Supplier, Employee
		&SalesTransaction{}, // depends on: Customer, Employee

		// 4. Detail/audit tables
		&RestockDetail{}, // depends on: RestockBatch, Product
		&SalesDetail{},   // depends on: SalesTransaction, Product
		&InventoryLog{},  // depends on: Product
	}
}
