package http

import (
	natsadapter "faregate/internal/adapters/nats"
	"faregate/internal/core/usecases"
	"faregate/internal/pkg/config"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Stations *usecases.StationService
	Offers   *usecases.OfferService
	Pricing  *usecases.PricingService
	Machine  *usecases.MachineService
	Auth     *usecases.AuthService
	Events   *natsadapter.Publisher
	Cfg      *config.Config
}
