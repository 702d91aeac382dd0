package models

// All lists every model in dependency order, for AutoMigrate in tests and
// sqlite development databases.
func All() []any {
	return []any{
		&Product{},
		&Variant{},
		&Thumbnail{},
		&Customer{},
		&Order{},
		&OrderItem{},
		&OrderAddress{},
	}
}
