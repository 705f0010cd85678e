package api

import (
	"cork/docs"
	"cork/internal/api/handlers"
	"cork/pkg/auth"
	"cork/pkg/config"
	"cork/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	recHandler *handlers.RecommendationHandler,
	cellarHandler *handlers.CellarHandler,
	labelHandler *handlers.LabelHandler,
	catalogHandler *handlers.CatalogHandler,
	jwtManager *auth.JWTManager,
	recCfg *config.RecommendConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing docs registers the documentation via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Scanned label photos
	app.Static("/uploads", "uploads")

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	requireAuth := middleware.AuthMiddleware(jwtManager, appLogger)
	optionalAuth := middleware.OptionalAuthMiddleware(jwtManager, appLogger)

	v1 := app.Group("/api/v1")

	// Public catalog browse
	v1.Get("/catalog", catalogHandler.List)

	// Recommendations: deployments choose whether a credential is required.
	// With optional auth anonymous callers still get recommendations, they
	// just get no history.
	recAuth := optionalAuth
	if recCfg.AuthRequired {
		recAuth = requireAuth
	}
	v1.Post("/recommendations", recAuth, recHandler.Recommend)
	v1.Get("/recommendations/history", requireAuth, recHandler.History)

	// Account-bound routes
	v1.Get("/user/me", requireAuth, authHandler.Me)

	cellar := v1.Group("/cellar", requireAuth)
	cellar.Post("", cellarHandler.Add)
	cellar.Get("", cellarHandler.List)
	cellar.Delete("/:id", cellarHandler.Remove)

	labels := v1.Group("/labels", requireAuth)
	labels.Post("/scan", labelHandler.Scan)
	labels.Get("", labelHandler.List)

	return app
}
