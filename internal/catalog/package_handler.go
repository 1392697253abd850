// Package catalog covers the content entities shown on the marketing site:
// membership packages, trainers and the photo gallery.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"fitclub-backend/internal/database"
	"fitclub-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func ListPackagesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var packages []models.Package
		if err := database.DB.Find(&packages).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list packages")
		}
		return c.JSON(packages)
	}
}

func CreatePackageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Package
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Price <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Name and Price are required")
		}

		body.ID = fmt.Sprintf("pkg-%d", time.Now().UnixMilli())
		body.Benefits = sanitizeBenefits(body.Benefits)

		if err := database.DB.Create(&body).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create package")
		}
		return c.Status(fiber.StatusCreated).JSON(body)
	}
}

func UpdatePackageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Package
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.ID == "" || strings.TrimSpace(body.Name) == "" || body.Price <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID, Name and Price are required")
		}

		var existing models.Package
		if err := database.DB.First(&existing, "id = ?", body.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Package not found")
		}

		body.CreatedAt = existing.CreatedAt
		body.Benefits = sanitizeBenefits(body.Benefits)
		if err := database.DB.Save(&body).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update package")
		}
		return c.JSON(body)
	}
}

func DeletePackageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Query("id")
		if id == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Package ID is required")
		}

		var pkg models.Package
		if err := database.DB.First(&pkg, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Package not found")
		}

		if err := database.DB.Delete(&pkg).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete package")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// sanitizeBenefits trims each benefit and strips commas. The legacy workbook
// joins benefits with a comma; a benefit containing one would not survive the
// export/import round trip.
func sanitizeBenefits(benefits []string) []string {
	cleaned := make([]string, 0, len(benefits))
	for _, b := range benefits {
		b = strings.TrimSpace(strings.ReplaceAll(b, ",", " "))
		if b != "" {
			cleaned = append(cleaned, b)
		}
	}
	return cleaned
}
