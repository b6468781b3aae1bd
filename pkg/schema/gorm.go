package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Report{},
		&LabResult{},
		&Notification{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

// TableNames returns the tables owned by airlab in creation order.
func TableNames() []string {
	var res []string
	for _, m := range AllModels() {
		if g, ok := m.(DDLGenerator); ok {
			res = append(res, g.TableName())
		}
	}
	return res
}
