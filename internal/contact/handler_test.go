package contact

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"fitclub-backend/internal/database"
	"fitclub-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "fitclub.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	app := fiber.New()
	app.Post("/api/contact", SubmitHandler())
	app.Get("/api/contact", ListContactsHandler())
	app.Delete("/api/contact", DeleteContactHandler())
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSubmit(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/contact", SubmitRequest{
		Name: "Meera", Email: "meera@example.com", Phone: "9876543210",
		Branch: "Valad", Message: "Opening hours?",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var sub models.ContactSubmission
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sub))
	resp.Body.Close()

	_, err := uuid.Parse(sub.ID)
	assert.NoError(t, err, "submission ids are UUIDs")

	stamp, err := time.Parse(time.RFC3339, sub.Date)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), stamp, time.Minute)
}

func TestSubmitValidation(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/contact", SubmitRequest{
		Name: "Meera", Email: "meera@example.com", Branch: "Valad",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "phone is required")

	resp = doJSON(t, app, fiber.MethodPost, "/api/contact", SubmitRequest{
		Name: "  ", Email: "meera@example.com", Phone: "1", Branch: "Valad",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "whitespace-only name")
}

func TestListContactsNewestFirst(t *testing.T) {
	app := setupApp(t)
	require.NoError(t, database.DB.Create(&models.ContactSubmission{
		ID: "old", Name: "A", Email: "a@x", Phone: "1", Branch: "Valad",
		Date: "2024-01-01T10:00:00Z",
	}).Error)
	require.NoError(t, database.DB.Create(&models.ContactSubmission{
		ID: "new", Name: "B", Email: "b@x", Phone: "2", Branch: "Valad",
		Date: "2024-06-01T10:00:00Z",
	}).Error)

	resp := doJSON(t, app, fiber.MethodGet, "/api/contact", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var subs []models.ContactSubmission
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&subs))
	resp.Body.Close()
	require.Len(t, subs, 2)
	assert.Equal(t, "new", subs[0].ID)
	assert.Equal(t, "old", subs[1].ID)
}

func TestDeleteContact(t *testing.T) {
	app := setupApp(t)
	require.NoError(t, database.DB.Create(&models.ContactSubmission{
		ID: "sub-1", Name: "A", Email: "a@x", Phone: "1", Branch: "Valad",
	}).Error)

	resp := doJSON(t, app, fiber.MethodDelete, "/api/contact?id=sub-1", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/contact?id=sub-1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
