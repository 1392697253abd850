package database

import (
	"log"

	"fitclub-backend/internal/config"
	"fitclub-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Database connection established, migration complete.")
}

// Migrate runs schema migration for every entity. Split out of Init so tests
// can run it against their own (sqlite) database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Branch{},
		&models.Package{},
		&models.Member{},
		&models.Trainer{},
		&models.GalleryItem{},
		&models.ContactSubmission{},
	)
}
