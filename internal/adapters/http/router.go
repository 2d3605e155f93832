package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/timeout"

	"faregate/internal/pkg/metrics"
)

// SetupRoutes registers middleware and all REST routes.
func SetupRoutes(app *fiber.App, deps *Dependencies) {
	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Response compression (gzip)
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Request ID
	app.Use(requestid.New())

	// Propagate request ID into slog context
	app.Use(RequestIDLogMiddleware())

	// Access logs (structured HTTP request logging)
	app.Use(AccessLogMiddleware())

	// Rate limiting: 120 requests per minute per IP
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error":   "rate limit exceeded",
				"message": "too many requests, please try again later",
			})
		},
		SkipFailedRequests: false,
	}))

	// Security headers + API version
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("X-API-Version", "1.0.0")
		return c.Next()
	})

	// Health & readiness (no timeout — fast internal checks)
	app.Get("/v1/health", HealthHandler(deps))
	app.Get("/v1/ready", ReadyHandler(deps))

	// REST API v1 — 15s per-request timeout
	v1 := app.Group("/v1")
	v1.Post("/auth/login", timeout.NewWithContext(LoginHandler(deps), 15*time.Second))

	v1.Get("/stations", timeout.NewWithContext(ListStationsHandler(deps), 15*time.Second))
	v1.Get("/stations/:name", timeout.NewWithContext(GetStationHandler(deps), 15*time.Second))
	v1.Get("/offers", timeout.NewWithContext(ListOffersHandler(deps), 15*time.Second))
	v1.Get("/quotes", timeout.NewWithContext(QuoteHandler(deps), 15*time.Second))

	// The machine's coin slot is anonymous, like the kiosk's user mode.
	v1.Post("/machine/coins", timeout.NewWithContext(InsertMoneyHandler(deps), 15*time.Second))
	v1.Post("/machine/tickets", timeout.NewWithContext(BuyTicketHandler(deps), 15*time.Second))
	v1.Post("/machine/refund", timeout.NewWithContext(RefundHandler(deps), 15*time.Second))
	v1.Get("/machine", timeout.NewWithContext(MachineStatusHandler(deps), 15*time.Second))

	// Admin surface: catalogue and offer mutations.
	adminOnly := RequireAdmin(deps.Cfg.Auth.JWTSecret)
	v1.Post("/stations", adminOnly, timeout.NewWithContext(CreateStationHandler(deps), 15*time.Second))
	v1.Post("/stations/rescale", adminOnly, timeout.NewWithContext(RescaleHandler(deps), 15*time.Second))
	v1.Patch("/stations/:name", adminOnly, timeout.NewWithContext(EditStationHandler(deps), 15*time.Second))
	v1.Post("/offers", adminOnly, timeout.NewWithContext(CreateOfferHandler(deps), 15*time.Second))
	v1.Delete("/offers/:station", adminOnly, timeout.NewWithContext(DeleteOffersHandler(deps), 15*time.Second))
}
