package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HostID          uuid.UUID `json:"host_id" binding:"required"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	AttendeeName    string    `json:"attendee_name" binding:"required"`
	AttendeeEmail   string    `json:"attendee_email" binding:"required"`
	AttendeePhone   *string   `json:"attendee_phone,omitempty"`
	AttendeeCompany *string   `json:"attendee_company,omitempty"`
	Guests          []string  `json:"guests,omitempty"`
	Title           *string   `json:"title,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	Location        *string   `json:"location,omitempty"`
	MeetingType     *string   `json:"meeting_type,omitempty"`
	Timezone        string    `json:"timezone" binding:"required"`
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func (r CreateBookingRequest) OptionalPhone() string    { return optional(r.AttendeePhone) }
func (r CreateBookingRequest) OptionalCompany() string  { return optional(r.AttendeeCompany) }
func (r CreateBookingRequest) OptionalTitle() string    { return optional(r.Title) }
func (r CreateBookingRequest) OptionalNotes() string    { return optional(r.Notes) }
func (r CreateBookingRequest) OptionalLocation() string { return optional(r.Location) }
func (r CreateBookingRequest) OptionalType() string     { return optional(r.MeetingType) }
