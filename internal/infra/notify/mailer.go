// Package notify delivers post-commit booking confirmations. Delivery is
// best effort: the booking is already durable when a confirmation goes
// out, and a delivery failure is logged, never propagated into the
// booking's outcome.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"slotbooker/internal/pkg/config"
	"slotbooker/internal/usecase/queries"

	ical "github.com/arran4/golang-ical"
)

// Mailer emails the attendee a confirmation with an attached calendar
// invitation. An empty SMTP host configures a log-only sender, which keeps
// local development working without a relay.
type Mailer struct {
	addr   string
	from   string
	logger *slog.Logger
}

func NewMailer(cfg config.Config, logger *slog.Logger) *Mailer {
	addr := ""
	if cfg.Notify.SMTPHost != "" {
		addr = fmt.Sprintf("%s:%s", cfg.Notify.SMTPHost, cfg.Notify.SMTPPort)
	}
	return &Mailer{
		addr:   addr,
		from:   cfg.Notify.From,
		logger: logger,
	}
}

func (m *Mailer) BookingConfirmed(ctx context.Context, view *queries.BookingView) error {
	if m.addr == "" {
		m.logger.Info("booking confirmed (smtp disabled, confirmation logged only)",
			"booking_id", view.ID,
			"attendee", view.AttendeeEmail,
			"start", view.StartTime.Format(time.RFC3339),
		)
		return nil
	}

	subject := fmt.Sprintf("Confirmed: %s with %s", meetingTitle(view), view.HostName)
	body := confirmationBody(view)
	invite := BuildInvite(view)

	recipients := append([]string{view.AttendeeEmail}, view.Guests...)
	msg := buildMessage(m.from, recipients, subject, body, invite)

	if err := smtp.SendMail(m.addr, nil, m.from, recipients, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	m.logger.Info("booking confirmation sent",
		"booking_id", view.ID, "attendee", view.AttendeeEmail, "guests", len(view.Guests))
	return nil
}

// BuildInvite renders the booking as an iCalendar REQUEST so mail clients
// surface it as a proper invitation.
func BuildInvite(view *queries.BookingView) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodRequest)
	cal.SetProductId("-//slotbooker//EN")

	event := cal.AddEvent(view.ID.String() + "@slotbooker")
	event.SetCreatedTime(view.CreatedAt)
	event.SetDtStampTime(view.CreatedAt)
	event.SetStartAt(view.StartTime)
	event.SetEndAt(view.EndTime)
	event.SetSummary(meetingTitle(view))
	if view.Location != nil {
		event.SetLocation(*view.Location)
	}
	if view.Notes != nil {
		event.SetDescription(*view.Notes)
	}
	event.SetOrganizer("mailto:"+view.HostEmail, ical.WithCN(view.HostName))
	event.AddAttendee(view.AttendeeEmail, ical.CalendarUserTypeIndividual, ical.ParticipationStatusNeedsAction, ical.ParticipationRoleReqParticipant, ical.WithCN(view.AttendeeName))
	for _, guest := range view.Guests {
		event.AddAttendee(guest, ical.CalendarUserTypeIndividual, ical.ParticipationStatusNeedsAction, ical.ParticipationRoleOptParticipant)
	}

	return cal.Serialize()
}

func meetingTitle(view *queries.BookingView) string {
	if view.Title != nil && *view.Title != "" {
		return *view.Title
	}
	return fmt.Sprintf("Meeting with %s", view.HostName)
}

func confirmationBody(view *queries.BookingView) string {
	loc, err := time.LoadLocation(view.DisplayTimezone)
	if err != nil {
		loc = time.UTC
	}
	start := view.StartTime.In(loc)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", view.AttendeeName)
	fmt.Fprintf(&b, "Your booking with %s is confirmed.\r\n\r\n", view.HostName)
	fmt.Fprintf(&b, "When: %s at %s (%s)\r\n",
		start.Format("Jan 2, 2006"), start.Format("3:04 PM"), view.DisplayTimezone)
	fmt.Fprintf(&b, "Duration: %d minutes\r\n", int(view.EndTime.Sub(view.StartTime).Minutes()))
	if view.Location != nil && *view.Location != "" {
		fmt.Fprintf(&b, "Where: %s\r\n", *view.Location)
	}
	fmt.Fprintf(&b, "Meeting type: %s\r\n", view.MeetingType)
	if view.Notes != nil && *view.Notes != "" {
		fmt.Fprintf(&b, "\r\nNotes: %s\r\n", *view.Notes)
	}
	b.WriteString("\r\nA calendar invitation is attached.\r\n")
	return b.String()
}

const mimeBoundary = "slotbooker-confirmation"

// buildMessage assembles a small multipart MIME message: a plain-text body
// plus the calendar part, enough for Mailpit and common relays.
func buildMessage(from string, to []string, subject, body, invite string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mimeBoundary)

	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	b.WriteString("Content-Type: text/calendar; method=REQUEST; charset=utf-8\r\n")
	b.WriteString("Content-Disposition: attachment; filename=\"invite.ics\"\r\n\r\n")
	b.WriteString(invite)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", mimeBoundary)
	return b.String()
}
