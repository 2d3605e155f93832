package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"faregate/internal/core/domain"
)

// OfferRepo implements ports.OfferRepository in memory. Offers are
// kept in insertion order; the station name is not required to match
// an existing station.
type OfferRepo struct {
	mu     sync.RWMutex
	offers []domain.SpecialOffer
}

func NewOfferRepo() *OfferRepo {
	return &OfferRepo{}
}

func (r *OfferRepo) Add(ctx context.Context, offer domain.SpecialOffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offers = append(r.offers, offer)
	return nil
}

func (r *OfferRepo) List(ctx context.Context) ([]domain.SpecialOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.SpecialOffer, len(r.offers))
	copy(out, r.offers)
	return out, nil
}

func (r *OfferRepo) DeleteForStation(ctx context.Context, stationName string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stationName = strings.TrimSpace(stationName)
	kept := r.offers[:0]
	removed := false
	for _, o := range r.offers {
		if strings.EqualFold(o.StationName, stationName) {
			removed = true
			continue
		}
		kept = append(kept, o)
	}
	r.offers = kept
	return removed, nil
}

// BestActive selects the minimum-factor offer active on asOf. A strict
// comparison keeps the first-inserted offer on ties.
func (r *OfferRepo) BestActive(ctx context.Context, stationName string, asOf time.Time) (*domain.SpecialOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stationName = strings.TrimSpace(stationName)
	var best *domain.SpecialOffer
	for i := range r.offers {
		o := r.offers[i]
		if !strings.EqualFold(o.StationName, stationName) || !o.Active(asOf) {
			continue
		}
		if best == nil || o.DiscountFactor < best.DiscountFactor {
			copied := o
			best = &copied
		}
	}
	return best, nil
}
