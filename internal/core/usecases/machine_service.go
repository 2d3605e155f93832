package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"faregate/internal/core/domain"
	"faregate/internal/core/ports"
	"faregate/internal/pkg/metrics"
)

// MachineService is the vending controller. It owns the inserted
// credit and the cumulative takings; one mutex guards both together
// with the purchase side effects, so every operation is atomic:
// it either fully applies or changes nothing.
type MachineService struct {
	mu       sync.Mutex
	inserted float64
	takings  float64

	origin   string
	stations ports.StationRepository
	pricing  *PricingService
	events   ports.EventPublisher
	now      func() time.Time
}

// NewMachineService creates the controller for a machine located at
// origin. events may be nil when no fleet backend is configured.
func NewMachineService(origin string, stations ports.StationRepository, pricing *PricingService, events ports.EventPublisher) *MachineService {
	return &MachineService{
		origin:   origin,
		stations: stations,
		pricing:  pricing,
		events:   events,
		now:      time.Now,
	}
}

// Origin returns the machine's own station name.
func (s *MachineService) Origin() string { return s.origin }

// InsertMoney adds a positive amount to the credit and returns the new
// balance.
func (s *MachineService) InsertMoney(ctx context.Context, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %.2f", domain.ErrInvalidAmount, amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserted += amount
	return s.inserted, nil
}

// BuyTicket resolves the destination, prices the ticket and, when the
// credit covers it, debits the credit, bumps the station's sales count
// and credits the takings by exactly the computed price. Every failure
// path leaves all state untouched.
func (s *MachineService) BuyTicket(ctx context.Context, destination string, t domain.TicketType) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	station, err := s.stations.FindByName(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("destination %q: %w", destination, err)
	}

	quote, err := s.pricing.Quote(ctx, station, t, s.now())
	if err != nil {
		return nil, fmt.Errorf("price %s: %w", station.Name, err)
	}

	if s.inserted < quote.FinalPrice {
		metrics.InsufficientFunds.Inc()
		return nil, fmt.Errorf("%w: price %.2f, inserted %.2f",
			domain.ErrInsufficientFunds, quote.FinalPrice, s.inserted)
	}

	if err := s.stations.IncrementSales(ctx, station.Name); err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}
	s.inserted -= quote.FinalPrice
	s.takings += quote.FinalPrice

	ticket := &domain.Ticket{
		ID:          uuid.NewString(),
		Origin:      s.origin,
		Destination: station.Name,
		Type:        t,
		Price:       quote.FinalPrice,
		IssuedAt:    s.now(),
	}

	metrics.TicketsSold.WithLabelValues(station.Name, t.String()).Inc()
	metrics.TakingsTotal.Add(quote.FinalPrice)

	if s.events != nil {
		if err := s.events.PublishTicketSold(ctx, ticket); err != nil {
			slog.Warn("publish ticket sold", "ticket_id", ticket.ID, "error", err)
		}
	}
	return ticket, nil
}

// Refund returns the current credit and resets it to zero. Refunding
// zero is valid and publishes nothing.
func (s *MachineService) Refund(ctx context.Context) float64 {
	s.mu.Lock()
	amount := s.inserted
	s.inserted = 0
	s.mu.Unlock()

	if amount > 0 {
		metrics.RefundsTotal.Inc()
		if s.events != nil {
			if err := s.events.PublishRefund(ctx, amount); err != nil {
				slog.Warn("publish refund", "amount", amount, "error", err)
			}
		}
	}
	return amount
}

// Balance returns the credit currently inserted.
func (s *MachineService) Balance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inserted
}

// Takings returns the cumulative revenue of completed purchases.
func (s *MachineService) Takings() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.takings
}
