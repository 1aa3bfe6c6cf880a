// Package models contains the data models for the AI job impact dashboard
package models

import (
	"gorm.io/gorm"
)

// AllModels returns a slice of all model types for database migrations
func AllModels() []interface{} {
	return []interface{}{
		&JobImpactRecord{},
	}
}

// AutoMigrate runs automatic migrations for all models. The job impact
// table name can be overridden to match an existing deployment.
func AutoMigrate(db *gorm.DB, table string) error {
	if table == "" || table == JobImpactRecordTable {
		return db.AutoMigrate(AllModels()...)
	}
	return db.Table(table).AutoMigrate(&JobImpactRecord{})
}
