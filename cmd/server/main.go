package main

import (
	"log"
	"strings"

	"fitclub-backend/internal/admin"
	"fitclub-backend/internal/auth"
	"fitclub-backend/internal/catalog"
	"fitclub-backend/internal/config"
	"fitclub-backend/internal/contact"
	"fitclub-backend/internal/database"
	"fitclub-backend/internal/membership"
	"fitclub-backend/internal/metrics"
	"fitclub-backend/internal/sheetstore"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	legacy := sheetstore.New(cfg.LegacyWorkbookPath)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Public surface: the marketing site and the member-status lookup.
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Get("/trainers", catalog.ListTrainersHandler())
	api.Get("/packages", catalog.ListPackagesHandler())
	api.Get("/gallery", catalog.ListGalleryHandler())
	api.Get("/branches", admin.ListBranchesHandler())
	api.Get("/members/search", membership.SearchMemberHandler())
	api.Post("/contact", contact.SubmitHandler())

	// Admin dashboard, behind the shared-password JWT gate.
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	// Members
	protected.Get("/members", membership.ListMembersHandler())
	protected.Post("/members", membership.CreateMemberHandler())
	protected.Put("/members", membership.UpdateMemberHandler())
	protected.Delete("/members", membership.DeleteMemberHandler())
	protected.Post("/members/:id/renew-plan", membership.RenewPlanHandler())
	protected.Post("/members/:id/renew-membership", membership.RenewMembershipHandler())

	// Trainers
	protected.Post("/trainers", catalog.CreateTrainerHandler())
	protected.Put("/trainers", catalog.UpdateTrainerHandler())
	protected.Delete("/trainers", catalog.DeleteTrainerHandler())

	// Packages
	protected.Post("/packages", catalog.CreatePackageHandler())
	protected.Put("/packages", catalog.UpdatePackageHandler())
	protected.Delete("/packages", catalog.DeletePackageHandler())

	// Gallery (add/remove only, no update)
	protected.Post("/gallery", catalog.CreateGalleryItemHandler())
	protected.Delete("/gallery", catalog.DeleteGalleryItemHandler())

	// Branches (add/remove only, no update)
	protected.Post("/branches", admin.CreateBranchHandler())
	protected.Delete("/branches", admin.DeleteBranchHandler())

	// Contact inquiries
	protected.Get("/contact", contact.ListContactsHandler())
	protected.Delete("/contact", contact.DeleteContactHandler())

	// Legacy workbook migration
	protected.Post("/legacy/import", sheetstore.ImportHandler(legacy))
	protected.Post("/legacy/export", sheetstore.ExportHandler(legacy))

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
