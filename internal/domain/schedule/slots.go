package schedule

import (
	"time"

	"slotbooker/internal/domain/timeslot"
)

const (
	displayTimeLayout = "3:04 PM"
	displayDateLayout = "Jan 2, 2006"
)

// Slot is a derived bookable interval. Start/End are UTC instants; the
// display fields are rendered in the viewer's timezone. Slots are never
// persisted.
type Slot struct {
	Interval    timeslot.TimeSlot
	DisplayTime string
	DisplayDate string
}

// GenerateSlots projects one calendar day of a host's working hours into the
// ordered bookable intervals that do not collide with existing reservations.
//
// The weekday is taken from the host-local calendar date (year/month/day of
// date interpreted in the host zone), because working hours are defined in
// host-local time. The rule's wall-clock bounds are anchored to that date
// with the tz database rules, so on a DST transition day the window covers
// the host's local 09:00-17:00 whatever its absolute length is. Candidates
// are consecutive duration-sized sub-intervals; a trailing remainder shorter
// than duration is dropped. busy intervals knock out overlapping candidates
// under half-open semantics.
//
// Pure function: identical inputs yield an identical ordered sequence.
func GenerateSlots(
	date time.Time,
	rules RuleSet,
	busy []timeslot.TimeSlot,
	duration time.Duration,
	host *time.Location,
	viewer *time.Location,
) []Slot {
	if duration <= 0 {
		return nil
	}

	localDate := date.In(host)
	rule, ok := rules.ForWeekday(localDate.Weekday())
	if !ok {
		// Non-working day, not an error.
		return nil
	}

	year, month, day := localDate.Date()
	workStart := rule.Start().On(year, month, day, rule.Location()).UTC()
	workEnd := rule.End().On(year, month, day, rule.Location()).UTC()

	var slots []Slot
	for cur := workStart; !cur.Add(duration).After(workEnd); cur = cur.Add(duration) {
		candidate, err := timeslot.FromStart(cur, duration)
		if err != nil {
			return nil
		}
		if candidate.OverlapsAny(busy) {
			continue
		}

		displayStart := candidate.Start().In(viewer)
		slots = append(slots, Slot{
			Interval:    candidate,
			DisplayTime: displayStart.Format(displayTimeLayout),
			DisplayDate: displayStart.Format(displayDateLayout),
		})
	}
	return slots
}
