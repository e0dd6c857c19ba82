// Package database holds the process-wide database handle.
package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the SQLite database at path and keeps the handle for the
// lifetime of the process. Called once at startup before any handler runs.
func Connect(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// GetDB returns the shared database handle.
func GetDB() *gorm.DB {
	return DB
}
