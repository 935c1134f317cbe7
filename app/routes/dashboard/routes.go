package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"student-risk-dashboard/app/data"
)

// SetupDashboardRoutes registers the dashboard page and its read-only APIs.
func SetupDashboardRoutes(app *fiber.App, store *data.Store) {
	app.Get("/dashboard", func(c *fiber.Ctx) error {
		return GetDashboardPage(c, store)
	})

	api := app.Group("/api/dashboard")
	api.Get("/table", func(c *fiber.Ctx) error {
		return GetTableAPI(c, store)
	})
	api.Get("/stats", func(c *fiber.Ctx) error {
		return GetStatsAPI(c, store)
	})
	api.Get("/histograms", func(c *fiber.Ctx) error {
		return GetHistogramsAPI(c, store)
	})
	api.Get("/classes", func(c *fiber.Ctx) error {
		return GetClassesAPI(c, store)
	})
	api.Get("/export", func(c *fiber.Ctx) error {
		return ExportAPI(c, store)
	})

	app.Get("/api/students/:id", func(c *fiber.Ctx) error {
		return GetStudentAPI(c, store)
	})
}
