package usecases

import (
	"context"
	"time"

	"faregate/internal/core/domain"
	"faregate/internal/core/ports"
)

// PricingService resolves the final price for a station and ticket
// type: base price times the best active discount, if any.
type PricingService struct {
	offers ports.OfferRepository
}

// NewPricingService creates a new PricingService.
func NewPricingService(offers ports.OfferRepository) *PricingService {
	return &PricingService{offers: offers}
}

// Quote computes the price as of the given date. No rounding happens
// here; two-decimal formatting is a presentation concern. Factors are
// applied as-is, so a factor above 1 raises the price.
func (s *PricingService) Quote(ctx context.Context, station *domain.Station, t domain.TicketType, asOf time.Time) (*domain.Quote, error) {
	base := station.Price(t)
	q := &domain.Quote{
		StationName: station.Name,
		Type:        t,
		BasePrice:   base,
		FinalPrice:  base,
	}

	offer, err := s.offers.BestActive(ctx, station.Name, asOf)
	if err != nil {
		return nil, err
	}
	if offer != nil {
		q.Offer = offer
		q.FinalPrice = base * offer.DiscountFactor
	}
	return q, nil
}
