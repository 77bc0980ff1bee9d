package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// MeetingType is how the meeting happens; free-form values are allowed but
// these are the ones the booking form offers.
type MeetingType string

const (
	MeetingTypeVideo    MeetingType = "video"
	MeetingTypePhone    MeetingType = "phone"
	MeetingTypeInPerson MeetingType = "in_person"
)

// DefaultMeetingType applies when the request leaves the field empty.
const DefaultMeetingType = MeetingTypeVideo
