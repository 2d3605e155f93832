package main

import (
	"context"
	"log"
	"os"

	"faregate/internal/adapters/console"
	"faregate/internal/adapters/memory"
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

	// Logs go to stderr; stdout belongs to the menus.
	logging.Setup(cfg.Log.Level, "text")

	stationRepo := memory.NewStationRepo(cfg.Seed.DomainStations())
	offerRepo := memory.NewOfferRepo()
	userRepo := memory.NewUserRepo(cfg.Seed.DomainUsers())

	stationSvc := usecases.NewStationService(stationRepo)
	offerSvc := usecases.NewOfferService(offerRepo)
	pricingSvc := usecases.NewPricingService(offerRepo)
	authSvc := usecases.NewAuthService(userRepo, password.Plain{})
	machineSvc := usecases.NewMachineService(cfg.Machine.Origin, stationRepo, pricingSvc, nil)

	kiosk := console.New(stationSvc, offerSvc, machineSvc, authSvc,
		cfg.Machine.Currency, os.Stdin, os.Stdout)

	if err := kiosk.Run(context.Background()); err != nil {
		log.Fatalf("kiosk: %v", err)
	}
}
