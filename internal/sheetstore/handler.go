package sheetstore

import (
	"log"

	"fitclub-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

// ImportHandler pulls every entity from the legacy workbook into the
// database. Returns the per-sheet counts so the operator can eyeball the run.
func ImportHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		migrator := &Migrator{Store: store, DB: database.DB}
		summary, err := migrator.ImportAll()
		if err != nil {
			log.Printf("legacy import failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Legacy import failed")
		}
		return c.JSON(summary)
	}
}

// ExportHandler rewrites the legacy workbook from current database state.
func ExportHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		migrator := &Migrator{Store: store, DB: database.DB}
		summary, err := migrator.ExportAll()
		if err != nil {
			log.Printf("legacy export failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Legacy export failed")
		}
		return c.JSON(summary)
	}
}
