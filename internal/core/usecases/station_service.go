package usecases

import (
	"context"

	"faregate/internal/core/domain"
	"faregate/internal/core/ports"
)

// StationService handles catalogue reads and admin mutations.
type StationService struct {
	stations ports.StationRepository
}

// NewStationService creates a new StationService.
func NewStationService(stations ports.StationRepository) *StationService {
	return &StationService{stations: stations}
}

// Add appends a station to the catalogue. Duplicate names are not
// rejected; the first match keeps winning every lookup. Negative
// prices are refused: a purchase priced below zero would shrink the
// takings.
func (s *StationService) Add(ctx context.Context, station domain.Station) error {
	if station.SinglePrice < 0 || station.ReturnPrice < 0 {
		return domain.ErrInvalidPrice
	}
	return s.stations.Add(ctx, station)
}

// FindByName resolves a destination case-insensitively.
func (s *StationService) FindByName(ctx context.Context, name string) (*domain.Station, error) {
	return s.stations.FindByName(ctx, name)
}

// List returns the catalogue in insertion order.
func (s *StationService) List(ctx context.Context) ([]domain.Station, error) {
	return s.stations.List(ctx)
}

// Edit updates only the supplied price fields of the named station.
// Supplied values must be zero or more.
func (s *StationService) Edit(ctx context.Context, name string, newSingle, newReturn *float64) error {
	if (newSingle != nil && *newSingle < 0) || (newReturn != nil && *newReturn < 0) {
		return domain.ErrInvalidPrice
	}
	return s.stations.Edit(ctx, name, newSingle, newReturn)
}

// Rescale multiplies every station's prices by factor. Non-positive
// factors are rejected and leave all prices unchanged.
func (s *StationService) Rescale(ctx context.Context, factor float64) error {
	if factor <= 0 {
		return domain.ErrInvalidFactor
	}
	return s.stations.RescaleAll(ctx, factor)
}
