package commands

import (
	"context"

	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side snapshot; keeps commands off the read-side query types.
type HostSnapshot struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Timezone string
}

type HostReads interface {
	HostByID(ctx context.Context, id uuid.UUID) (*HostSnapshot, error)
}

// Notifier is the external confirmation collaborator. It is invoked once
// per committed booking, after the transaction boundary; its failure is
// logged and never turns a committed booking into an error.
type Notifier interface {
	BookingConfirmed(ctx context.Context, view *queries.BookingView) error
}
