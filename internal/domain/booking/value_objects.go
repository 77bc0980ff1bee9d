package booking

import (
	"net/mail"
	"strings"
	"time"

	"slotbooker/internal/pkg/errs"
)

var (
	ErrMissingAttendeeName  = errs.New("attendee name is required")
	ErrMissingAttendeeEmail = errs.New("attendee email is required")
	ErrInvalidAttendeeEmail = errs.New("attendee email is malformed")
	ErrInvalidGuestEmail    = errs.New("guest email is malformed")
	ErrUnknownTimezone      = errs.New("unknown display timezone")
)

// Attendee identifies who booked the slot. Name and email are required;
// everything else is optional contact detail.
type Attendee struct {
	name    string
	email   string
	phone   string
	company string
}

func NewAttendee(name, email, phone, company string) (Attendee, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return Attendee{}, ErrMissingAttendeeName
	}
	if email == "" {
		return Attendee{}, ErrMissingAttendeeEmail
	}
	if !looksLikeEmail(email) {
		return Attendee{}, ErrInvalidAttendeeEmail
	}
	return Attendee{
		name:    name,
		email:   email,
		phone:   strings.TrimSpace(phone),
		company: strings.TrimSpace(company),
	}, nil
}

func (a Attendee) Name() string    { return a.name }
func (a Attendee) Email() string   { return a.email }
func (a Attendee) Phone() string   { return a.phone }
func (a Attendee) Company() string { return a.company }

// GuestList is the extra invitees copied onto the confirmation.
type GuestList struct {
	emails []string
}

func NewGuestList(emails []string) (GuestList, error) {
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !looksLikeEmail(e) {
			return GuestList{}, errs.Mark(errs.New("guest "+e), ErrInvalidGuestEmail)
		}
		out = append(out, e)
	}
	return GuestList{emails: out}, nil
}

func (g GuestList) Emails() []string {
	return append([]string(nil), g.emails...)
}

func (g GuestList) IsEmpty() bool {
	return len(g.emails) == 0
}

// MeetingDetails is the attendee-supplied metadata on a booking.
type MeetingDetails struct {
	title       string
	notes       string
	location    string
	meetingType MeetingType
}

func NewMeetingDetails(title, notes, location string, meetingType string) MeetingDetails {
	mt := MeetingType(strings.TrimSpace(meetingType))
	if mt == "" {
		mt = DefaultMeetingType
	}
	return MeetingDetails{
		title:       strings.TrimSpace(title),
		notes:       strings.TrimSpace(notes),
		location:    strings.TrimSpace(location),
		meetingType: mt,
	}
}

func (m MeetingDetails) Title() string            { return m.title }
func (m MeetingDetails) Notes() string            { return m.notes }
func (m MeetingDetails) Location() string         { return m.location }
func (m MeetingDetails) MeetingType() MeetingType { return m.meetingType }

// ValidateTimezone checks the viewer-facing display timezone on a booking.
func ValidateTimezone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, ErrUnknownTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownTimezone)
	}
	return loc, nil
}

// looksLikeEmail accepts a bare RFC 5322 address. Display-name forms like
// "Jordan <j@example.com>" are rejected, and the domain must carry a dot
// since bookings only ever mail public addresses.
func looksLikeEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	domain := s[strings.LastIndex(s, "@")+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
