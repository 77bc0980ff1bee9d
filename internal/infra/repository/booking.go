package repository

import (
	"context"
	"encoding/json"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/domain/timeslot"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const createBookingSQL = `
INSERT INTO bookings (
    id, host_id,
    attendee_name, attendee_email, attendee_phone, attendee_company,
    guests, title, notes, location, meeting_type,
    start_time, end_time, display_timezone, status
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	guestsJSON, err := json.Marshal(b.Guests().Emails())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode guest list", err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.HostID(),
		b.Attendee().Name(),
		b.Attendee().Email(),
		nullableText(b.Attendee().Phone()),
		nullableText(b.Attendee().Company()),
		guestsJSON,
		nullableText(b.Details().Title()),
		nullableText(b.Details().Notes()),
		nullableText(b.Details().Location()),
		string(b.Details().MeetingType()),
		b.Slot().Start(),
		b.Slot().End(),
		b.DisplayTimezone(),
		string(b.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err, infra.ClassifyPgError(err))
	}

	return id, nil
}

const confirmedOverlapSQL = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE host_id = $1
      AND status = 'confirmed'
      AND start_time < $3
      AND end_time > $2
)`

// HasConfirmedOverlap is the in-transaction conflict check: any confirmed
// interval [a,b) overlapping [start,end) under half-open semantics.
func (r *BookingRepository) HasConfirmedOverlap(ctx context.Context, hostID uuid.UUID, slot timeslot.TimeSlot) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, confirmedOverlapSQL, hostID, slot.Start(), slot.End()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err, infra.ClassifyPgError(err))
	}
	return exists, nil
}

const findBookingSQL = `
SELECT id, host_id,
       attendee_name, attendee_email, attendee_phone, attendee_company,
       guests, title, notes, location, meeting_type,
       start_time, end_time, display_timezone, status,
       created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		rowID, hostID           uuid.UUID
		name, email             string
		phone, company          pgtype.Text
		guestsJSON              []byte
		title, notes, location  pgtype.Text
		meetingType, tz, status string
		startTime, endTime      pgtype.Timestamptz
		createdAt, updatedAt    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findBookingSQL, id).Scan(
		&rowID, &hostID,
		&name, &email, &phone, &company,
		&guestsJSON, &title, &notes, &location, &meetingType,
		&startTime, &endTime, &tz, &status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err, infra.ClassifyPgError(err))
	}

	var guestEmails []string
	if len(guestsJSON) > 0 {
		if err := json.Unmarshal(guestsJSON, &guestEmails); err != nil {
			return nil, infra.WrapRepoErr("failed to decode guest list", err)
		}
	}

	attendee, err := booking.NewAttendee(name, email, textValue(phone), textValue(company))
	if err != nil {
		return nil, infra.WrapRepoErr("stored attendee is invalid", err)
	}
	guests, err := booking.NewGuestList(guestEmails)
	if err != nil {
		return nil, infra.WrapRepoErr("stored guest list is invalid", err)
	}
	details := booking.NewMeetingDetails(textValue(title), textValue(notes), textValue(location), meetingType)
	slot, err := timeslot.New(pgconv.TimeFromPgtype(startTime), pgconv.TimeFromPgtype(endTime))
	if err != nil {
		return nil, infra.WrapRepoErr("stored interval is invalid", err)
	}

	return booking.Reconstruct(
		rowID, hostID, attendee, guests, details, slot, tz,
		booking.Status(status),
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $2, updated_at = now()
WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusSQL, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err, infra.ClassifyPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func nullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func textValue(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}
