package catalog

import (
	"fmt"
	"strings"
	"time"

	"fitclub-backend/internal/database"
	"fitclub-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func ListGalleryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.GalleryItem
		if err := database.DB.Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list gallery")
		}
		return c.JSON(items)
	}
}

// CreateGalleryItemHandler adds an image. There is no update path for gallery
// items; the dashboard only ever adds and removes them.
func CreateGalleryItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.GalleryItem
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.ImageURL = strings.TrimSpace(body.ImageURL)
		if body.ImageURL == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Image URL is required")
		}
		if !models.ValidGalleryCategory(body.Category) {
			body.Category = models.CategoryOther
		}

		body.ID = fmt.Sprintf("img-%d", time.Now().UnixMilli())

		if err := database.DB.Create(&body).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not add image")
		}
		return c.Status(fiber.StatusCreated).JSON(body)
	}
}

func DeleteGalleryItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Query("id")
		if id == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Image ID is required")
		}

		var item models.GalleryItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Image not found")
		}

		if err := database.DB.Delete(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete image")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
