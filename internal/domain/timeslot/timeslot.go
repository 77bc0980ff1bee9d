// Package timeslot holds the half-open time interval shared by the schedule
// and booking aggregates. [Start, End) semantics let adjacent intervals share
// a boundary instant without conflicting.
package timeslot

import (
	"fmt"
	"time"

	"slotbooker/internal/pkg/errs"
)

var (
	ErrEndNotAfterStart = errs.New("interval end must be after start")
	ErrInvalidDuration  = errs.New("duration must be positive")
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, ErrEndNotAfterStart
	}
	return TimeSlot{start: start.UTC(), end: end.UTC()}, nil
}

// FromStart builds the interval [start, start+d).
func FromStart(start time.Time, d time.Duration) (TimeSlot, error) {
	if d <= 0 {
		return TimeSlot{}, ErrInvalidDuration
	}
	return New(start, start.Add(d))
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps reports whether two half-open intervals share any instant.
// [a,b) and [c,d) overlap iff a < d && c < b; boundary equality is not
// overlap, so back-to-back slots coexist.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// OverlapsAny is the generator-side filter over a host's busy intervals.
func (ts TimeSlot) OverlapsAny(others []TimeSlot) bool {
	for _, o := range others {
		if ts.Overlaps(o) {
			return true
		}
	}
	return false
}

// ToTstzrange renders the interval in Postgres range literal form.
func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

func (ts TimeSlot) String() string {
	return ts.start.Format(time.RFC3339) + "/" + ts.end.Format(time.RFC3339)
}
