// Package booking holds the reservation aggregate. A Booking is the durable
// record of an attendee occupying one absolute interval of a host's time;
// for any host the confirmed bookings are pairwise non-overlapping, an
// invariant enforced by the store transaction, not by this package.
package booking

import (
	"time"

	"slotbooker/internal/domain/timeslot"
	"slotbooker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingHost      = errs.New("host is required")
	ErrAlreadyCancelled = errs.New("booking is already cancelled")
)

type Booking struct {
	id              uuid.UUID
	hostID          uuid.UUID
	attendee        Attendee
	guests          GuestList
	details         MeetingDetails
	slot            timeslot.TimeSlot
	displayTimezone string
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking assembles a confirmed booking ready to be offered to the
// transaction manager. Interval and attendee validity are the caller's
// proof burden via the value object constructors.
func NewBooking(
	hostID uuid.UUID,
	attendee Attendee,
	guests GuestList,
	details MeetingDetails,
	slot timeslot.TimeSlot,
	displayTimezone string,
) (*Booking, error) {
	if hostID == uuid.Nil {
		return nil, ErrMissingHost
	}
	if _, err := ValidateTimezone(displayTimezone); err != nil {
		return nil, err
	}
	return &Booking{
		id:              uuid.New(),
		hostID:          hostID,
		attendee:        attendee,
		guests:          guests,
		details:         details,
		slot:            slot,
		displayTimezone: displayTimezone,
		status:          StatusConfirmed,
	}, nil
}

// Reconstruct rebuilds a booking from its persisted row.
func Reconstruct(
	id, hostID uuid.UUID,
	attendee Attendee,
	guests GuestList,
	details MeetingDetails,
	slot timeslot.TimeSlot,
	displayTimezone string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		hostID:          hostID,
		attendee:        attendee,
		guests:          guests,
		details:         details,
		slot:            slot,
		displayTimezone: displayTimezone,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Cancel transitions to cancelled; cancelling twice is an error surfaced to
// the caller rather than silently absorbed.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ConflictsWith(other timeslot.TimeSlot) bool {
	return b.status == StatusConfirmed && b.slot.Overlaps(other)
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) HostID() uuid.UUID       { return b.hostID }
func (b *Booking) Attendee() Attendee      { return b.attendee }
func (b *Booking) Guests() GuestList       { return b.guests }
func (b *Booking) Details() MeetingDetails { return b.details }
func (b *Booking) Slot() timeslot.TimeSlot { return b.slot }
func (b *Booking) DisplayTimezone() string { return b.displayTimezone }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
