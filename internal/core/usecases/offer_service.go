package usecases

import (
	"context"
	"time"

	"faregate/internal/core/domain"
	"faregate/internal/core/ports"
	"faregate/internal/pkg/metrics"
)

// OfferService manages time-bounded discount offers.
type OfferService struct {
	offers ports.OfferRepository
}

// NewOfferService creates a new OfferService.
func NewOfferService(offers ports.OfferRepository) *OfferService {
	return &OfferService{offers: offers}
}

// Add stores an offer after checking the date range and factor. The
// registry itself stays permissive; this is the one construction path,
// so the checks live here. Factors above 1 pass (a surcharge), but a
// negative factor would price tickets below zero.
func (s *OfferService) Add(ctx context.Context, offer domain.SpecialOffer) error {
	if domain.DateOnly(offer.EndDate).Before(domain.DateOnly(offer.StartDate)) {
		return domain.ErrInvalidDateRange
	}
	if offer.DiscountFactor < 0 {
		return domain.ErrInvalidFactor
	}
	if err := s.offers.Add(ctx, offer); err != nil {
		return err
	}
	s.refreshGauge(ctx)
	return nil
}

// List returns all offers, active or not, in insertion order.
func (s *OfferService) List(ctx context.Context) ([]domain.SpecialOffer, error) {
	return s.offers.List(ctx)
}

// DeleteForStation removes every offer for the station and reports
// whether any existed.
func (s *OfferService) DeleteForStation(ctx context.Context, stationName string) (bool, error) {
	removed, err := s.offers.DeleteForStation(ctx, stationName)
	if err != nil {
		return false, err
	}
	s.refreshGauge(ctx)
	return removed, nil
}

// BestActive returns the deepest discount active for the station on
// asOf, or nil when none applies.
func (s *OfferService) BestActive(ctx context.Context, stationName string, asOf time.Time) (*domain.SpecialOffer, error) {
	return s.offers.BestActive(ctx, stationName, asOf)
}

func (s *OfferService) refreshGauge(ctx context.Context) {
	if offers, err := s.offers.List(ctx); err == nil {
		metrics.OffersConfigured.Set(float64(len(offers)))
	}
}
