package catalog

import (
	"fmt"
	"strings"
	"time"

	"fitclub-backend/internal/database"
	"fitclub-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func ListTrainersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var trainers []models.Trainer
		if err := database.DB.Find(&trainers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list trainers")
		}
		return c.JSON(trainers)
	}
}

func CreateTrainerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Trainer
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Specialization = strings.TrimSpace(body.Specialization)
		if body.Name == "" || body.Specialization == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name and Specialization are required")
		}

		body.ID = fmt.Sprintf("trainer-%d", time.Now().UnixMilli())

		if err := database.DB.Create(&body).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create trainer")
		}
		return c.Status(fiber.StatusCreated).JSON(body)
	}
}

func UpdateTrainerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Trainer
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.ID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Trainer ID is required")
		}

		var existing models.Trainer
		if err := database.DB.First(&existing, "id = ?", body.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Trainer not found")
		}

		body.CreatedAt = existing.CreatedAt
		if err := database.DB.Save(&body).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update trainer")
		}
		return c.JSON(body)
	}
}

func DeleteTrainerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Query("id")
		if id == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Trainer ID is required")
		}

		var trainer models.Trainer
		if err := database.DB.First(&trainer, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Trainer not found")
		}

		if err := database.DB.Delete(&trainer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete trainer")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
