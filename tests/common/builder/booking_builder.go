//go:build unit || e2e

package builder

import (
	"time"

	reqdto "slotbooker/internal/handler/dto/request"

	"github.com/google/uuid"
)

// BookingRequestBuilder assembles a valid CreateBookingRequest that tests
// mutate toward the case under test.
type BookingRequestBuilder struct {
	req reqdto.CreateBookingRequest
}

func NewBookingRequest(hostID uuid.UUID) *BookingRequestBuilder {
	return &BookingRequestBuilder{
		req: reqdto.CreateBookingRequest{
			HostID:          hostID,
			StartTime:       time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
			DurationMinutes: 30,
			AttendeeName:    "Jordan Lee",
			AttendeeEmail:   "jordan@example.com",
			Timezone:        "America/New_York",
		},
	}
}

func (b *BookingRequestBuilder) WithStart(start time.Time) *BookingRequestBuilder {
	b.req.StartTime = start
	return b
}

func (b *BookingRequestBuilder) WithDuration(minutes int) *BookingRequestBuilder {
	b.req.DurationMinutes = minutes
	return b
}

func (b *BookingRequestBuilder) WithAttendee(name, email string) *BookingRequestBuilder {
	b.req.AttendeeName = name
	b.req.AttendeeEmail = email
	return b
}

func (b *BookingRequestBuilder) WithGuests(guests ...string) *BookingRequestBuilder {
	b.req.Guests = guests
	return b
}

func (b *BookingRequestBuilder) WithTitle(title string) *BookingRequestBuilder {
	b.req.Title = &title
	return b
}

func (b *BookingRequestBuilder) WithMeetingType(meetingType string) *BookingRequestBuilder {
	b.req.MeetingType = &meetingType
	return b
}

func (b *BookingRequestBuilder) WithTimezone(tz string) *BookingRequestBuilder {
	b.req.Timezone = tz
	return b
}

func (b *BookingRequestBuilder) Build() reqdto.CreateBookingRequest {
	return b.req
}
