package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/example/linkhub/internal/config"
	"github.com/example/linkhub/internal/handlers"
	"github.com/example/linkhub/internal/logger"
	"github.com/example/linkhub/internal/middleware"
	"github.com/example/linkhub/internal/services"
	"github.com/example/linkhub/internal/store"
)

// Deps are the services the HTTP surface is built on.
type Deps struct {
	Admin  *services.AdminService
	Public *services.PublicService
	Clicks handlers.ClickSink
}

// NewApp builds the fiber app with the shared middleware and every route.
func NewApp(cfg *config.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Link Hub",
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: !cfg.IsDevelopment(),
	})

	app.Use(middleware.Logging(), middleware.Metrics())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	Register(app, cfg, deps)
	return app
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, cfg *config.Config, deps Deps) {
	publicHandler := handlers.NewPublicHandler(deps.Public, deps.Clicks)
	authHandler := handlers.NewAuthHandler(cfg)
	adminHandler := handlers.NewAdminHandler(deps.Admin)

	app.Get("/healthz", publicHandler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/go/:id", publicHandler.Redirect)

	api := app.Group("/api")

	// Public page
	api.Get("/page", publicHandler.Page)
	api.Get("/links", publicHandler.Links)
	api.Get("/brand", publicHandler.Brand)
	api.Get("/social-links", publicHandler.SocialLinks)
	api.Post("/links/:id/click", publicHandler.Click)

	api.Post("/admin/login", authHandler.Login)

	// Protected routes
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg.JWTSecret))

	links := admin.Group("/links")
	links.Get("/", adminHandler.ListLinks)
	links.Post("/", adminHandler.CreateLink)
	links.Post("/renormalize", adminHandler.RenormalizeLinks)
	links.Put("/:id", adminHandler.UpdateLink)
	links.Delete("/:id", adminHandler.DeleteLink)
	links.Post("/:id/move", adminHandler.MoveLink)

	categories := admin.Group("/categories")
	categories.Get("/", adminHandler.Categories)
	categories.Post("/move", adminHandler.MoveCategory)
	categories.Put("/order", adminHandler.SetCategoryOrder)
	categories.Put("/rename", adminHandler.RenameCategory)

	socials := admin.Group("/social-links")
	socials.Get("/", adminHandler.ListSocials)
	socials.Post("/", adminHandler.CreateSocial)
	socials.Post("/renormalize", adminHandler.RenormalizeSocials)
	socials.Put("/:id", adminHandler.UpdateSocial)
	socials.Delete("/:id", adminHandler.DeleteSocial)
	socials.Post("/:id/move", adminHandler.MoveSocial)

	admin.Get("/brand", adminHandler.GetBrand)
	admin.Put("/brand", adminHandler.UpdateBrand)
}

// ErrorHandler renders errors as {"success": false, "error": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
		message = fe.Message
	case errors.Is(err, store.ErrNotFound):
		code = fiber.StatusNotFound
		message = "not found"
	case errors.Is(err, store.ErrConflict):
		code = fiber.StatusConflict
		message = "the list changed since it was loaded, reload and try again"
	default:
		logger.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
