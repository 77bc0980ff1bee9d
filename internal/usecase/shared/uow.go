// Package shared declares the persistence ports the command side depends
// on. Implementations live in internal/infra; handles are constructed at
// bootstrap and injected, never held as package globals.
package shared

import (
	"context"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/domain/schedule"
	"slotbooker/internal/domain/timeslot"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// WithinSerializable runs fn inside a SERIALIZABLE transaction with a
	// bounded lock wait. The store forces racing transactions into a serial
	// order; losers surface as serialization-kind repository errors. No
	// automatic retries: a booking attempt is a single terminal try.
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	// Within runs fn inside an ordinary READ COMMITTED transaction, for
	// writes that do not contend on the no-overlap invariant.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	WorkingHours() WorkingHoursRepository
	Idempotency() IdempotencyRepository
}

type BookingRepository interface {
	// Create persists a confirmed booking row.
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	// HasConfirmedOverlap is the authoritative conflict check: any confirmed
	// row [a,b) with a < slot.End and slot.Start < b.
	HasConfirmedOverlap(ctx context.Context, hostID uuid.UUID, slot timeslot.TimeSlot) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type WorkingHoursRepository interface {
	// ReplaceForHost swaps the host's weekly rule set atomically.
	ReplaceForHost(ctx context.Context, hostID uuid.UUID, rules []schedule.Rule) error
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type IdempotencyRepository interface {
	// TryInsert claims the key in processing state; reports false when the
	// key already exists.
	TryInsert(ctx context.Context, key uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, key uuid.UUID, bookingID uuid.UUID) error
	// Release drops a processing claim whose booking attempt failed, so a
	// retry with the same key starts fresh instead of waiting out the TTL.
	// Completed keys are left untouched.
	Release(ctx context.Context, key uuid.UUID) error
}
