package domain

import (
	"fmt"
	"strings"
	"time"
)

// TicketType selects which of a station's two prices applies.
type TicketType int

const (
	TicketSingle TicketType = iota
	TicketReturn
)

func (t TicketType) String() string {
	if t == TicketReturn {
		return "return"
	}
	return "single"
}

// MarshalJSON renders the type as its string form.
func (t TicketType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON accepts the string form produced by MarshalJSON.
func (t *TicketType) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTicketType(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTicketType parses "single" or "return" (case-insensitive).
func ParseTicketType(s string) (TicketType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return TicketSingle, nil
	case "return":
		return TicketReturn, nil
	}
	return TicketSingle, fmt.Errorf("%w: %q", ErrInvalidTicketType, s)
}

// Station is a ticket destination with independent single/return prices
// and a running sales counter.
type Station struct {
	Name        string  `json:"name"`
	SinglePrice float64 `json:"single_price"`
	ReturnPrice float64 `json:"return_price"`
	SalesCount  int     `json:"sales_count"`
}

// Price returns the base price for the given ticket type.
func (s Station) Price(t TicketType) float64 {
	if t == TicketReturn {
		return s.ReturnPrice
	}
	return s.SinglePrice
}

// SpecialOffer is a date-bounded multiplicative discount on a station's
// prices. A factor of 0.8 means 20% off; factors above 1 are not
// rejected and raise the price.
type SpecialOffer struct {
	StationName    string    `json:"station_name"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	DiscountFactor float64   `json:"discount_factor"`
}

// Active reports whether the offer covers asOf. Both bounds are
// inclusive and only the calendar date matters, not the time of day.
func (o SpecialOffer) Active(asOf time.Time) bool {
	day := DateOnly(asOf)
	return !day.Before(DateOnly(o.StartDate)) && !day.After(DateOnly(o.EndDate))
}

// DateOnly strips the time-of-day component in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Quote is the pricing engine's answer for one station and ticket type.
// Offer is nil when no discount applies, in which case FinalPrice
// equals BasePrice.
type Quote struct {
	StationName string        `json:"station_name"`
	Type        TicketType    `json:"type"`
	BasePrice   float64       `json:"base_price"`
	FinalPrice  float64       `json:"final_price"`
	Offer       *SpecialOffer `json:"offer,omitempty"`
}

// Ticket is an ephemeral purchase receipt. It is rendered once and
// never stored.
type Ticket struct {
	ID          string     `json:"id"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Type        TicketType `json:"type"`
	Price       float64    `json:"price"`
	IssuedAt    time.Time  `json:"issued_at"`
}

// Receipt renders the ticket the way the kiosk prints it.
func (t Ticket) Receipt(currency string) string {
	return fmt.Sprintf("***\n[%s]\nto\n[%s]\nPrice: %s%.2f [%s]\n***",
		t.Origin, t.Destination, currency, t.Price, strings.ToUpper(t.Type.String()))
}

// User is a kiosk operator account. Credential comparison lives behind
// ports.CredentialVerifier; the default is a verbatim comparison.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	IsAdmin  bool   `json:"is_admin"`
}
