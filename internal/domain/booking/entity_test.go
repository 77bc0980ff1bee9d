//go:build unit

package booking_test

import (
	"testing"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/domain/timeslot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSlot(t *testing.T) timeslot.TimeSlot {
	t.Helper()
	start := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)
	ts, err := timeslot.New(start, start.Add(30*time.Minute))
	require.NoError(t, err)
	return ts
}

func validAttendee(t *testing.T) booking.Attendee {
	t.Helper()
	a, err := booking.NewAttendee("Jane Doe", "jane@example.com", "", "")
	require.NoError(t, err)
	return a
}

func TestNewBooking(t *testing.T) {
	attendee := validAttendee(t)
	guests, err := booking.NewGuestList(nil)
	require.NoError(t, err)
	details := booking.NewMeetingDetails("Intro call", "", "", "")

	t.Run("valid booking starts confirmed", func(t *testing.T) {
		b, err := booking.NewBooking(uuid.New(), attendee, guests, details, validSlot(t), "America/New_York")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.True(t, b.IsConfirmed())
		assert.Equal(t, "America/New_York", b.DisplayTimezone())
		assert.Equal(t, booking.MeetingTypeVideo, b.Details().MeetingType())
	})

	t.Run("missing host rejected", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.Nil, attendee, guests, details, validSlot(t), "UTC")
		assert.ErrorIs(t, err, booking.ErrMissingHost)
	})

	t.Run("unknown display timezone rejected", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.New(), attendee, guests, details, validSlot(t), "Nowhere/Inparticular")
		assert.ErrorIs(t, err, booking.ErrUnknownTimezone)
	})

	t.Run("unique ids", func(t *testing.T) {
		b1, err := booking.NewBooking(uuid.New(), attendee, guests, details, validSlot(t), "UTC")
		require.NoError(t, err)
		b2, err := booking.NewBooking(uuid.New(), attendee, guests, details, validSlot(t), "UTC")
		require.NoError(t, err)
		assert.NotEqual(t, b1.ID(), b2.ID())
	})
}

func TestBookingCancel(t *testing.T) {
	attendee := validAttendee(t)
	guests, _ := booking.NewGuestList(nil)
	details := booking.NewMeetingDetails("", "", "", "")

	b, err := booking.NewBooking(uuid.New(), attendee, guests, details, validSlot(t), "UTC")
	require.NoError(t, err)

	require.NoError(t, b.Cancel())
	assert.Equal(t, booking.StatusCancelled, b.Status())
	assert.False(t, b.IsConfirmed())

	assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
}

func TestConflictsWith(t *testing.T) {
	attendee := validAttendee(t)
	guests, _ := booking.NewGuestList(nil)
	details := booking.NewMeetingDetails("", "", "", "")
	slot := validSlot(t)

	b, err := booking.NewBooking(uuid.New(), attendee, guests, details, slot, "UTC")
	require.NoError(t, err)

	overlapping, err := timeslot.New(slot.Start().Add(15*time.Minute), slot.End().Add(15*time.Minute))
	require.NoError(t, err)
	adjacent, err := timeslot.New(slot.End(), slot.End().Add(30*time.Minute))
	require.NoError(t, err)

	assert.True(t, b.ConflictsWith(overlapping))
	assert.False(t, b.ConflictsWith(adjacent), "boundary equality is not a conflict")

	require.NoError(t, b.Cancel())
	assert.False(t, b.ConflictsWith(overlapping), "cancelled bookings never conflict")
}

func TestNewAttendee(t *testing.T) {
	cases := []struct {
		name     string
		attName  string
		email    string
		wantErr  error
	}{
		{name: "valid", attName: "Jane", email: "jane@example.com"},
		{name: "missing name", attName: "  ", email: "jane@example.com", wantErr: booking.ErrMissingAttendeeName},
		{name: "missing email", attName: "Jane", email: "", wantErr: booking.ErrMissingAttendeeEmail},
		{name: "email without at", attName: "Jane", email: "example.com", wantErr: booking.ErrInvalidAttendeeEmail},
		{name: "email without domain dot", attName: "Jane", email: "jane@example", wantErr: booking.ErrInvalidAttendeeEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := booking.NewAttendee(tc.attName, tc.email, " 555-0100 ", " Acme ")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "555-0100", a.Phone())
			assert.Equal(t, "Acme", a.Company())
		})
	}
}

func TestNewGuestList(t *testing.T) {
	t.Run("blank entries dropped", func(t *testing.T) {
		g, err := booking.NewGuestList([]string{" a@example.com ", "", "b@example.com"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a@example.com", "b@example.com"}, g.Emails())
	})

	t.Run("malformed guest rejected", func(t *testing.T) {
		_, err := booking.NewGuestList([]string{"a@example.com", "not-an-email"})
		assert.ErrorIs(t, err, booking.ErrInvalidGuestEmail)
	})

	t.Run("emails returns a copy", func(t *testing.T) {
		g, err := booking.NewGuestList([]string{"a@example.com"})
		require.NoError(t, err)
		emails := g.Emails()
		emails[0] = "mutated@example.com"
		assert.Equal(t, []string{"a@example.com"}, g.Emails())
	})
}

func TestNewMeetingDetails(t *testing.T) {
	d := booking.NewMeetingDetails(" Kickoff ", " agenda ", " Room 2 ", "")
	assert.Equal(t, "Kickoff", d.Title())
	assert.Equal(t, "agenda", d.Notes())
	assert.Equal(t, "Room 2", d.Location())
	assert.Equal(t, booking.MeetingTypeVideo, d.MeetingType())

	d = booking.NewMeetingDetails("", "", "", "phone")
	assert.Equal(t, booking.MeetingTypePhone, d.MeetingType())
}
