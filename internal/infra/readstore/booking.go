package readstore

import (
	"context"
	"encoding/json"
	"time"

	"slotbooker/internal/domain/timeslot"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"
	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSQL = `
SELECT b.id, b.host_id, h.name AS host_name, h.email AS host_email,
       b.attendee_name, b.attendee_email, b.attendee_phone, b.attendee_company,
       b.guests, b.meeting_type, b.location, b.title, b.notes,
       b.start_time, b.end_time, b.display_timezone, b.status,
       b.created_at, b.updated_at
FROM bookings b
JOIN hosts h ON h.id = b.host_id
WHERE b.id = $1`

func (r *BookingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view                   queries.BookingView
		phone, company         pgtype.Text
		guestsJSON             []byte
		location, title, notes pgtype.Text
		startTime, endTime     pgtype.Timestamptz
		createdAt, updatedAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, bookingViewSQL, id).Scan(
		&view.ID, &view.HostID, &view.HostName, &view.HostEmail,
		&view.AttendeeName, &view.AttendeeEmail, &phone, &company,
		&guestsJSON, &view.MeetingType, &location, &title, &notes,
		&startTime, &endTime, &view.DisplayTimezone, &view.Status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}

	if len(guestsJSON) > 0 {
		if err := json.Unmarshal(guestsJSON, &view.Guests); err != nil {
			return nil, infra.WrapRepoErr("failed to decode guest list", err)
		}
	}
	view.AttendeePhone = pgconv.StringPtrFromPgtype(phone)
	view.AttendeeCompany = pgconv.StringPtrFromPgtype(company)
	view.Location = pgconv.StringPtrFromPgtype(location)
	view.Title = pgconv.StringPtrFromPgtype(title)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.StartTime = pgconv.TimeFromPgtype(startTime)
	view.EndTime = pgconv.TimeFromPgtype(endTime)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

const bookingsByHostSQL = `
SELECT id, attendee_name, attendee_email, title, start_time, end_time, status, created_at
FROM bookings
WHERE host_id = $1
ORDER BY start_time`

func (r *BookingReadStore) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingsByHostSQL, hostID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item               queries.BookingListItem
			title              pgtype.Text
			startTime, endTime pgtype.Timestamptz
			createdAt          pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID, &item.AttendeeName, &item.AttendeeEmail, &title,
			&startTime, &endTime, &item.Status, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.Title = pgconv.StringPtrFromPgtype(title)
		item.StartTime = pgconv.TimeFromPgtype(startTime)
		item.EndTime = pgconv.TimeFromPgtype(endTime)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}

const confirmedIntervalsSQL = `
SELECT start_time, end_time
FROM bookings
WHERE host_id = $1
  AND status = 'confirmed'
  AND start_time < $3
  AND end_time > $2
ORDER BY start_time`

// ConfirmedIntervals returns the confirmed busy intervals overlapping
// [from,to) for a host, the generator's subtraction input.
func (r *BookingReadStore) ConfirmedIntervals(ctx context.Context, hostID uuid.UUID, from, to time.Time) ([]timeslot.TimeSlot, error) {
	rows, err := r.db.Query(ctx, confirmedIntervalsSQL, hostID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load confirmed intervals", err)
	}
	defer rows.Close()

	var busy []timeslot.TimeSlot
	for rows.Next() {
		var startTime, endTime pgtype.Timestamptz
		if err := rows.Scan(&startTime, &endTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan interval row", err)
		}
		slot, err := timeslot.New(pgconv.TimeFromPgtype(startTime), pgconv.TimeFromPgtype(endTime))
		if err != nil {
			return nil, infra.WrapRepoErr("stored interval is invalid", err)
		}
		busy = append(busy, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate interval rows", err)
	}
	return busy, nil
}
