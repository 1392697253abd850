package admin

import (
	"fmt"
	"strings"
	"time"

	"fitclub-backend/internal/database"
	"fitclub-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ----------------------------------------
// BRANCH CRUD
// ----------------------------------------

func ListBranchesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var branches []models.Branch
		if err := database.DB.Find(&branches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list branches")
		}
		return c.JSON(branches)
	}
}

func CreateBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Branch
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Location = strings.TrimSpace(body.Location)
		if body.Name == "" || body.Location == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name and Location are required")
		}

		body.ID = fmt.Sprintf("BRANCH-%d", time.Now().UnixMilli())

		if err := database.DB.Create(&body).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create branch")
		}
		return c.Status(fiber.StatusCreated).JSON(body)
	}
}

// DeleteBranchHandler removes a branch. Members referencing it by name keep
// that name; the reference is free text and intentionally left dangling.
func DeleteBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Query("id")
		if id == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Branch ID is required")
		}

		var branch models.Branch
		if err := database.DB.First(&branch, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Branch not found")
		}

		if err := database.DB.Delete(&branch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete branch")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
