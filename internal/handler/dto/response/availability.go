package response

import (
	"time"

	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	DisplayTime string    `json:"displayTime"`
	DisplayDate string    `json:"displayDate"`
}

type AvailabilityResponse struct {
	HostID   uuid.UUID      `json:"hostId"`
	Date     string         `json:"date"`
	Timezone string         `json:"timezone"`
	Slots    []SlotResponse `json:"slots"`
}

func FromSlotViews(hostID uuid.UUID, date, timezone string, slots []queries.SlotView) *AvailabilityResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{
			Start:       s.Start,
			End:         s.End,
			DisplayTime: s.DisplayTime,
			DisplayDate: s.DisplayDate,
		}
	}
	return &AvailabilityResponse{
		HostID:   hostID,
		Date:     date,
		Timezone: timezone,
		Slots:    out,
	}
}

type HostResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Email    string    `json:"email"`
	Timezone string    `json:"timezone"`
}

func FromHostView(rm *queries.HostView) *HostResponse {
	return &HostResponse{
		ID:       rm.ID,
		Name:     rm.Name,
		Slug:     rm.Slug,
		Email:    rm.Email,
		Timezone: rm.Timezone,
	}
}

type WorkingHoursResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Timezone  string `json:"timezone"`
}

func FromWorkingHoursView(rm queries.WorkingHoursView) WorkingHoursResponse {
	return WorkingHoursResponse{
		DayOfWeek: rm.DayOfWeek,
		StartTime: rm.StartTime,
		EndTime:   rm.EndTime,
		Timezone:  rm.Timezone,
	}
}
