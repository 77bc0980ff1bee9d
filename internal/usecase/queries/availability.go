package queries

import (
	"context"
	"time"

	"slotbooker/internal/domain/schedule"
	"slotbooker/internal/domain/timeslot"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHostNotFound    = errs.New("host not found")
	ErrInvalidDate     = errs.New("invalid date")
	ErrInvalidTimezone = errs.New("invalid timezone")
	ErrInvalidDuration = errs.New("invalid slot duration")
	ErrReadFailed      = errs.New("read store operation failed")
)

const dateLayout = "2006-01-02"

type AvailabilityQueries interface {
	// Slots projects one calendar day of the host's working hours into the
	// bookable intervals left open by confirmed reservations. The read is
	// deliberately eventually consistent: a slot offered here is re-checked
	// authoritatively when someone tries to book it.
	Slots(ctx context.Context, hostID uuid.UUID, date, viewerTimezone string, duration time.Duration) ([]SlotView, error)
}

type ScheduleReadStore interface {
	RulesForHost(ctx context.Context, hostID uuid.UUID) ([]WorkingHoursView, error)
}

type BookingIntervalReadStore interface {
	// ConfirmedIntervals returns the UTC intervals of confirmed bookings
	// overlapping [from, to).
	ConfirmedIntervals(ctx context.Context, hostID uuid.UUID, from, to time.Time) ([]timeslot.TimeSlot, error)
}

type HostReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HostView, error)
	List(ctx context.Context) ([]*HostView, error)
}

// SlotCache is an optional read-through cache for computed slot lists.
// Implementations fail open: a miss and an error look the same.
type SlotCache interface {
	Get(ctx context.Context, hostID uuid.UUID, date, viewerTimezone string, duration time.Duration) ([]SlotView, bool)
	Set(ctx context.Context, hostID uuid.UUID, date, viewerTimezone string, duration time.Duration, slots []SlotView)
}

type availabilityQueriesImpl struct {
	hosts    HostReadStore
	rules    ScheduleReadStore
	bookings BookingIntervalReadStore
	cache    SlotCache
}

func NewAvailabilityQueries(
	hosts HostReadStore,
	rules ScheduleReadStore,
	bookings BookingIntervalReadStore,
	cache SlotCache,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		hosts:    hosts,
		rules:    rules,
		bookings: bookings,
		cache:    cache,
	}
}

func (q *availabilityQueriesImpl) Slots(
	ctx context.Context,
	hostID uuid.UUID,
	date, viewerTimezone string,
	duration time.Duration,
) ([]SlotView, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	host, err := q.hosts.FindByID(ctx, hostID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHostNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}

	hostLoc, err := time.LoadLocation(host.Timezone)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	if viewerTimezone == "" {
		viewerTimezone = "UTC"
	}
	viewerLoc, err := time.LoadLocation(viewerTimezone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimezone)
	}

	// Working hours are host-local, so the requested calendar date is
	// anchored in the host's zone before any instant math happens.
	day, err := time.ParseInLocation(dateLayout, date, hostLoc)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	if cached, ok := q.cache.Get(ctx, hostID, date, viewerTimezone, duration); ok {
		return cached, nil
	}

	ruleSet, err := q.loadRuleSet(ctx, hostID)
	if err != nil {
		return nil, err
	}

	// Each rule carries its own zone, so the day's working window can fall
	// partly outside the host-local day. A day of padding on both sides
	// covers any zone pair; bookings outside the generated window are
	// filtered out during slot generation anyway.
	year, month, dayOfMonth := day.Date()
	dayStart := time.Date(year, month, dayOfMonth-1, 0, 0, 0, 0, hostLoc)
	dayEnd := time.Date(year, month, dayOfMonth+2, 0, 0, 0, 0, hostLoc)

	busy, err := q.bookings.ConfirmedIntervals(ctx, hostID, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	slots := schedule.GenerateSlots(day, ruleSet, busy, duration, hostLoc, viewerLoc)

	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{
			Start:       s.Interval.Start(),
			End:         s.Interval.End(),
			DisplayTime: s.DisplayTime,
			DisplayDate: s.DisplayDate,
		}
	}

	q.cache.Set(ctx, hostID, date, viewerTimezone, duration, views)
	return views, nil
}

func (q *availabilityQueriesImpl) loadRuleSet(ctx context.Context, hostID uuid.UUID) (schedule.RuleSet, error) {
	rows, err := q.rules.RulesForHost(ctx, hostID)
	if err != nil {
		return schedule.RuleSet{}, errs.Mark(err, ErrReadFailed)
	}

	rules := make([]schedule.Rule, 0, len(rows))
	for _, row := range rows {
		rule, err := schedule.NewRule(row.DayOfWeek, row.StartTime, row.EndTime, row.Timezone)
		if err != nil {
			// Rows are validated on write; a bad row is store corruption.
			return schedule.RuleSet{}, errs.Mark(err, ErrReadFailed)
		}
		rules = append(rules, rule)
	}

	ruleSet, err := schedule.NewRuleSet(rules)
	if err != nil {
		return schedule.RuleSet{}, errs.Mark(err, ErrReadFailed)
	}
	return ruleSet, nil
}
