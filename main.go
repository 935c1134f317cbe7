package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"student-risk-dashboard/app/config"
	"student-risk-dashboard/app/data"
	"student-risk-dashboard/app/database"
	"student-risk-dashboard/app/loader"
	"student-risk-dashboard/app/routes/dashboard"
)

// customErrorHandler returns JSON for API requests and a rendered error page
// for everything else.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - Student Risk Dashboard",
		"ErrorCode":    code,
		"ErrorMessage": err.Error(),
	})
}

func main() {
	config.Init()

	// Pick the loader for the configured data source.
	var src data.Loader
	switch config.AppConfig.DataSource {
	case config.SourcePostgres:
		defer config.GetDB().Close()
		if err := database.RunMigrations(config.GetDB()); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		src = &database.PostgresLoader{DB: config.GetDB()}
	default:
		src = loader.NewCSVLoader(config.AppConfig.CSVDir)
	}

	store := data.NewStore(src)
	if err := store.Reload(); err != nil {
		log.Fatal("Failed to load student records:", err)
	}
	log.Printf("Loaded %d student records", len(store.Rows()))

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	dashboard.SetupDashboardRoutes(app, store)

	log.Printf("Listening on %s", config.AppConfig.Addr)
	if err := app.Listen(config.AppConfig.Addr); err != nil {
		log.Fatal("Server failed:", err)
	}
}
