package ports

import (
	"context"

	"faregate/internal/core/domain"
)

// EventPublisher pushes sale events to the fleet backend. All
// implementations must be safe to skip: the machine treats a nil
// publisher as "no backend configured".
type EventPublisher interface {
	PublishTicketSold(ctx context.Context, ticket *domain.Ticket) error
	PublishRefund(ctx context.Context, amount float64) error
}

// CredentialVerifier compares a supplied password against the stored
// one. The stock machine compares verbatim; a hashing scheme can be
// swapped in without touching the controller.
type CredentialVerifier interface {
	Verify(supplied, stored string) bool
}
