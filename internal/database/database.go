package database

import (
	"coursecraft/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the SQLite database file at path and migrates the
// schema. The handle is returned to the caller instead of being held in
// a package-level variable so the application context owns its lifecycle.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Course{}); err != nil {
		return nil, err
	}
	return db, nil
}
