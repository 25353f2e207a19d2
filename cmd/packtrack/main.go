package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"packtrack/internal/config"
	"packtrack/internal/http/handlers"
	applog "packtrack/internal/log"
	"packtrack/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	// Import payloads carry whole datasets
	app.Server().MaxRequestBodySize = 10 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())

	// ---------- Static & index shell ----------
	app.Static("/static", "./web/static")
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{"Title": "Packtrack"})
	})

	// ---------- API ----------
	deps := handlers.NewDeps(db)
	api := app.Group("/api")

	api.Get("/suitcases", deps.SuitcaseHandler.List)
	api.Post("/suitcases", deps.SuitcaseHandler.Create)
	api.Delete("/suitcases/:id", deps.SuitcaseHandler.Delete)
	api.Get("/suitcases/:id/items", deps.SuitcaseHandler.Items)

	api.Get("/items", deps.ItemHandler.List)
	api.Get("/items/search", limiter.New(limiter.Config{Max: 30, Expiration: time.Minute}), deps.ItemHandler.Search)
	api.Get("/items/summary", deps.ItemHandler.Summary)
	api.Post("/items", deps.ItemHandler.Add)
	api.Post("/items/increment", deps.ItemHandler.Increment)
	api.Post("/items/decrement", deps.ItemHandler.Decrement)
	api.Post("/items/reorder", deps.ItemHandler.Reorder)
	api.Patch("/items/rename", deps.ItemHandler.Rename)
	api.Patch("/items/move", deps.ItemHandler.Move)
	api.Delete("/items/:type/:suitcase_id", deps.ItemHandler.DeleteGroup)

	api.Get("/categories", deps.RegistryHandler.Categories)
	api.Get("/item-types", deps.RegistryHandler.ItemTypes)
	api.Patch("/item-types/:name/category", deps.RegistryHandler.SetCategory)

	api.Get("/export", deps.TransferHandler.Export)
	api.Post("/import", deps.TransferHandler.Import)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
