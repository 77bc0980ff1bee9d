package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	HostID          uuid.UUID `json:"host_id"`
	HostName        string    `json:"host_name"`
	HostEmail       string    `json:"host_email"`
	AttendeeName    string    `json:"attendee_name"`
	AttendeeEmail   string    `json:"attendee_email"`
	AttendeePhone   *string   `json:"attendee_phone,omitempty"`
	AttendeeCompany *string   `json:"attendee_company,omitempty"`
	Guests          []string  `json:"guests,omitempty"`
	MeetingType     string    `json:"meeting_type"`
	Location        *string   `json:"location,omitempty"`
	Title           *string   `json:"title,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DisplayTimezone string    `json:"display_timezone"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	AttendeeName  string    `json:"attendee_name"`
	AttendeeEmail string    `json:"attendee_email"`
	Title         *string   `json:"title,omitempty"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type HostView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Email    string    `json:"email"`
	Timezone string    `json:"timezone"`
}

type WorkingHoursView struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Timezone  string `json:"timezone"`
}

// SlotView is a derived bookable interval; never persisted.
type SlotView struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	DisplayTime string    `json:"display_time"`
	DisplayDate string    `json:"display_date"`
}
