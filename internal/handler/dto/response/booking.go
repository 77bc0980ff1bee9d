package response

import (
	"time"

	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	HostID          uuid.UUID `json:"hostId"`
	HostName        string    `json:"hostName"`
	AttendeeName    string    `json:"attendeeName"`
	AttendeeEmail   string    `json:"attendeeEmail"`
	AttendeePhone   *string   `json:"attendeePhone,omitempty"`
	AttendeeCompany *string   `json:"attendeeCompany,omitempty"`
	Guests          []string  `json:"guests,omitempty"`
	MeetingType     string    `json:"meetingType"`
	Location        *string   `json:"location,omitempty"`
	Title           *string   `json:"title,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Timezone        string    `json:"timezone"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	AttendeeName  string    `json:"attendeeName"`
	AttendeeEmail string    `json:"attendeeEmail"`
	Title         *string   `json:"title,omitempty"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		HostID:          rm.HostID,
		HostName:        rm.HostName,
		AttendeeName:    rm.AttendeeName,
		AttendeeEmail:   rm.AttendeeEmail,
		AttendeePhone:   rm.AttendeePhone,
		AttendeeCompany: rm.AttendeeCompany,
		Guests:          rm.Guests,
		MeetingType:     rm.MeetingType,
		Location:        rm.Location,
		Title:           rm.Title,
		Notes:           rm.Notes,
		StartTime:       rm.StartTime,
		EndTime:         rm.EndTime,
		Timezone:        rm.DisplayTimezone,
		Status:          rm.Status,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:            rm.ID,
		AttendeeName:  rm.AttendeeName,
		AttendeeEmail: rm.AttendeeEmail,
		Title:         rm.Title,
		StartTime:     rm.StartTime,
		EndTime:       rm.EndTime,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
	}
}
