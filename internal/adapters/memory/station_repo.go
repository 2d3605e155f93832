package memory

import (
	"context"
	"strings"
	"sync"

	"faregate/internal/core/domain"
)

// StationRepo implements ports.StationRepository with an in-memory
// slice. Insertion order is preserved; there is no uniqueness check on
// names, so a duplicate shadows the earlier entry for every lookup.
type StationRepo struct {
	mu       sync.RWMutex
	stations []domain.Station
}

// NewStationRepo creates a repo pre-filled with the seed catalogue.
func NewStationRepo(seed []domain.Station) *StationRepo {
	r := &StationRepo{}
	r.stations = append(r.stations, seed...)
	return r
}

func (r *StationRepo) Add(ctx context.Context, station domain.Station) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stations = append(r.stations, station)
	return nil
}

// FindByName returns a copy of the first station whose name matches
// case-insensitively, with surrounding whitespace ignored.
func (r *StationRepo) FindByName(ctx context.Context, name string) (*domain.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(name)
	if idx < 0 {
		return nil, domain.ErrStationNotFound
	}
	st := r.stations[idx]
	return &st, nil
}

func (r *StationRepo) List(ctx context.Context) ([]domain.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Station, len(r.stations))
	copy(out, r.stations)
	return out, nil
}

func (r *StationRepo) Edit(ctx context.Context, name string, newSingle, newReturn *float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(name)
	if idx < 0 {
		return domain.ErrStationNotFound
	}
	if newSingle != nil {
		r.stations[idx].SinglePrice = *newSingle
	}
	if newReturn != nil {
		r.stations[idx].ReturnPrice = *newReturn
	}
	return nil
}

func (r *StationRepo) RescaleAll(ctx context.Context, factor float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.stations {
		r.stations[i].SinglePrice *= factor
		r.stations[i].ReturnPrice *= factor
	}
	return nil
}

func (r *StationRepo) IncrementSales(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(name)
	if idx < 0 {
		return domain.ErrStationNotFound
	}
	r.stations[idx].SalesCount++
	return nil
}

// indexOf finds the first case-insensitive match. Callers hold the lock.
func (r *StationRepo) indexOf(name string) int {
	name = strings.TrimSpace(name)
	for i := range r.stations {
		if strings.EqualFold(r.stations[i].Name, name) {
			return i
		}
	}
	return -1
}
