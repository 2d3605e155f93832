package ports

import (
	"context"
	"time"

	"faregate/internal/core/domain"
)

// StationRepository holds the fare catalogue. Add appends
// unconditionally: duplicate names are allowed and every lookup only
// ever sees the first case-insensitive match.
type StationRepository interface {
	Add(ctx context.Context, station domain.Station) error
	FindByName(ctx context.Context, name string) (*domain.Station, error)
	List(ctx context.Context) ([]domain.Station, error)
	// Edit updates only the fields with a non-nil new value.
	Edit(ctx context.Context, name string, newSingle, newReturn *float64) error
	// RescaleAll multiplies both prices of every station by factor.
	// Factor validation belongs to the caller.
	RescaleAll(ctx context.Context, factor float64) error
	IncrementSales(ctx context.Context, name string) error
}

// OfferRepository holds time-bounded discount offers keyed by station
// name. Offers for the same station may overlap.
type OfferRepository interface {
	Add(ctx context.Context, offer domain.SpecialOffer) error
	List(ctx context.Context) ([]domain.SpecialOffer, error)
	// DeleteForStation removes every offer for the station and reports
	// whether at least one was removed.
	DeleteForStation(ctx context.Context, stationName string) (bool, error)
	// BestActive returns the active offer with the lowest discount
	// factor for the station, or nil when none applies. Ties keep the
	// first offer in insertion order.
	BestActive(ctx context.Context, stationName string, asOf time.Time) (*domain.SpecialOffer, error)
}

// UserRepository is the static operator directory loaded at startup.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
