package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"fitclub-backend/internal/database"
	"fitclub-backend/internal/models"

	"github.com/gofiber/fiber/v2"
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
	app.Get("/api/packages", ListPackagesHandler())
	app.Post("/api/packages", CreatePackageHandler())
	app.Put("/api/packages", UpdatePackageHandler())
	app.Delete("/api/packages", DeletePackageHandler())
	app.Get("/api/trainers", ListTrainersHandler())
	app.Post("/api/trainers", CreateTrainerHandler())
	app.Put("/api/trainers", UpdateTrainerHandler())
	app.Delete("/api/trainers", DeleteTrainerHandler())
	app.Get("/api/gallery", ListGalleryHandler())
	app.Post("/api/gallery", CreateGalleryItemHandler())
	app.Delete("/api/gallery", DeleteGalleryItemHandler())
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

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ----------------------------------------
// PACKAGES
// ----------------------------------------

func TestCreatePackage(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/packages", fiber.Map{
		"name":         "Monthly",
		"price":        1000,
		"durationDays": 30,
		"benefits":     []string{" Cardio ", "Sauna, Steam", ""},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var pkg models.Package
	decodeBody(t, resp, &pkg)
	assert.True(t, strings.HasPrefix(pkg.ID, "pkg-"))
	assert.Equal(t, []string{"Cardio", "Sauna  Steam"}, pkg.Benefits, "commas cannot survive the legacy benefits cell")
}

func TestCreatePackageValidation(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/packages", fiber.Map{"name": "Free", "price": 0})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/packages", fiber.Map{"name": "  ", "price": 100})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdatePackage(t *testing.T) {
	app := setupApp(t)
	require.NoError(t, database.DB.Create(&models.Package{
		ID: "pkg-1", Name: "Monthly", Price: 1000, DurationDays: 30,
	}).Error)

	resp := doJSON(t, app, fiber.MethodPut, "/api/packages", fiber.Map{
		"id": "pkg-1", "name": "Monthly Plus", "price": 1200, "durationDays": 30,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var pkg models.Package
	require.NoError(t, database.DB.First(&pkg, "id = ?", "pkg-1").Error)
	assert.Equal(t, "Monthly Plus", pkg.Name)
	assert.Equal(t, float64(1200), pkg.Price)
}

func TestUpdatePackageNotFound(t *testing.T) {
	app := setupApp(t)
	resp := doJSON(t, app, fiber.MethodPut, "/api/packages", fiber.Map{
		"id": "pkg-0", "name": "Ghost", "price": 1,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeletePackage(t *testing.T) {
	app := setupApp(t)
	require.NoError(t, database.DB.Create(&models.Package{
		ID: "pkg-1", Name: "Monthly", Price: 1000,
	}).Error)

	resp := doJSON(t, app, fiber.MethodDelete, "/api/packages?id=pkg-1", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/packages", nil)
	var packages []models.Package
	decodeBody(t, resp, &packages)
	assert.Empty(t, packages)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/packages?id=pkg-1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ----------------------------------------
// TRAINERS
// ----------------------------------------

func TestCreateTrainer(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/trainers", fiber.Map{
		"name": "Anand", "specialization": "Strength", "branch": "Valad",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var trainer models.Trainer
	decodeBody(t, resp, &trainer)
	assert.True(t, strings.HasPrefix(trainer.ID, "trainer-"))
	assert.Equal(t, "Anand", trainer.Name)
}

func TestCreateTrainerValidation(t *testing.T) {
	app := setupApp(t)
	resp := doJSON(t, app, fiber.MethodPost, "/api/trainers", fiber.Map{"name": "Anand"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateTrainerNotFound(t *testing.T) {
	app := setupApp(t)
	resp := doJSON(t, app, fiber.MethodPut, "/api/trainers", fiber.Map{
		"id": "trainer-0", "name": "Ghost", "specialization": "None",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteTrainer(t *testing.T) {
	app := setupApp(t)
	require.NoError(t, database.DB.Create(&models.Trainer{
		ID: "trainer-1", Name: "Anand", Specialization: "Strength",
	}).Error)

	resp := doJSON(t, app, fiber.MethodDelete, "/api/trainers?id=trainer-1", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/trainers", nil)
	var trainers []models.Trainer
	decodeBody(t, resp, &trainers)
	assert.Empty(t, trainers)
}

// ----------------------------------------
// GALLERY
// ----------------------------------------

func TestCreateGalleryItem(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/gallery", fiber.Map{
		"category": "Equipment", "imageUrl": "https://cdn.example.com/rack.jpg", "caption": "New racks",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var item models.GalleryItem
	decodeBody(t, resp, &item)
	assert.True(t, strings.HasPrefix(item.ID, "img-"))
	assert.Equal(t, models.CategoryEquipment, item.Category)
}

func TestCreateGalleryItemUnknownCategory(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/gallery", fiber.Map{
		"category": "Swimming", "imageUrl": "https://cdn.example.com/pool.jpg",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var item models.GalleryItem
	decodeBody(t, resp, &item)
	assert.Equal(t, models.CategoryOther, item.Category)
}

func TestCreateGalleryItemRequiresImageURL(t *testing.T) {
	app := setupApp(t)
	resp := doJSON(t, app, fiber.MethodPost, "/api/gallery", fiber.Map{"category": "Equipment"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteGalleryItem(t *testing.T) {
	app := setupApp(t)
	require.NoError(t, database.DB.Create(&models.GalleryItem{
		ID: "img-1", Category: models.CategoryOther, ImageURL: "https://x/1.jpg",
	}).Error)

	resp := doJSON(t, app, fiber.MethodDelete, "/api/gallery?id=img-1", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/gallery?id=img-1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
