// Package contact handles inquiries from the public contact form and their
// administration in the dashboard.
package contact

import (
	"strings"
	"time"

	"fitclub-backend/internal/database"
	"fitclub-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Branch  string `json:"branch"`
	Message string `json:"message"`
}

// SubmitHandler is the only unauthenticated write in the system.
func SubmitHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SubmitRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Email = strings.TrimSpace(body.Email)
		body.Phone = strings.TrimSpace(body.Phone)
		body.Branch = strings.TrimSpace(body.Branch)
		if body.Name == "" || body.Email == "" || body.Phone == "" || body.Branch == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}

		submission := models.ContactSubmission{
			ID:      uuid.NewString(),
			Name:    body.Name,
			Email:   body.Email,
			Phone:   body.Phone,
			Branch:  body.Branch,
			Message: body.Message,
			Date:    time.Now().UTC().Format(time.RFC3339),
		}

		if err := database.DB.Create(&submission).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save submission")
		}
		return c.Status(fiber.StatusCreated).JSON(submission)
	}
}

func ListContactsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var submissions []models.ContactSubmission
		if err := database.DB.Order("date DESC").Find(&submissions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list submissions")
		}
		return c.JSON(submissions)
	}
}

func DeleteContactHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Query("id")
		if id == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Submission ID is required")
		}

		var submission models.ContactSubmission
		if err := database.DB.First(&submission, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Submission not found")
		}

		if err := database.DB.Delete(&submission).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete submission")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
