package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	handler "faregate/internal/adapters/http"
	"faregate/internal/adapters/memory"
	natsadapter "faregate/internal/adapters/nats"
	"faregate/internal/core/usecases"
	"faregate/internal/pkg/config"
	"faregate/internal/pkg/logging"
	"faregate/internal/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	// Event backend (optional)
	var events *natsadapter.Publisher
	if cfg.NATS.Enabled {
		events, err = natsadapter.NewPublisher(cfg.NATS.URL)
		if err != nil {
			slog.Warn("nats unavailable, sale events disabled", "error", err)
		} else {
			defer events.Close()
		}
	}

	// Registries, seeded from config
	stationRepo := memory.NewStationRepo(cfg.Seed.DomainStations())
	offerRepo := memory.NewOfferRepo()
	userRepo := memory.NewUserRepo(cfg.Seed.DomainUsers())

	// Use cases
	stationSvc := usecases.NewStationService(stationRepo)
	offerSvc := usecases.NewOfferService(offerRepo)
	pricingSvc := usecases.NewPricingService(offerRepo)
	authSvc := usecases.NewAuthService(userRepo, password.Plain{})

	var machineSvc *usecases.MachineService
	if events != nil {
		machineSvc = usecases.NewMachineService(cfg.Machine.Origin, stationRepo, pricingSvc, events)
	} else {
		machineSvc = usecases.NewMachineService(cfg.Machine.Origin, stationRepo, pricingSvc, nil)
	}

	deps := &handler.Dependencies{
		Stations: stationSvc,
		Offers:   offerSvc,
		Pricing:  pricingSvc,
		Machine:  machineSvc,
		Auth:     authSvc,
		Events:   events,
		Cfg:      cfg,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    1024 * 1024, // 1 MB max request body
		AppName:      "Faregate API",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000, http://localhost:5173",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       3600,
	}))

	handler.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr, "origin", cfg.Machine.Origin)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
