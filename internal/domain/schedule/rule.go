// Package schedule defines a host's recurring weekly working hours and the
// projection of those hours into bookable slots.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"slotbooker/internal/pkg/errs"
)

var (
	ErrInvalidWeekday   = errs.New("day of week must be between 0 and 6")
	ErrInvalidClockTime = errs.New("clock time must be formatted as HH:MM")
	ErrEndNotAfterStart = errs.New("working hours end must be after start")
	ErrUnknownTimezone  = errs.New("unknown timezone identifier")
	ErrDuplicateWeekday = errs.New("duplicate working hours rule for weekday")
)

// ClockTime is a wall-clock time of day without a date, as entered by the
// host ("09:00"). Minutes resolution only.
type ClockTime struct {
	hour   int
	minute int
}

func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return ClockTime{}, errs.Mark(errs.New("clock time "+strconv.Quote(s)), ErrInvalidClockTime)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, errs.Mark(errs.New("clock time hour "+strconv.Quote(s)), ErrInvalidClockTime)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, errs.Mark(errs.New("clock time minute "+strconv.Quote(s)), ErrInvalidClockTime)
	}
	return ClockTime{hour: hour, minute: minute}, nil
}

func (c ClockTime) Hour() int   { return c.hour }
func (c ClockTime) Minute() int { return c.minute }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// Before compares two times of day.
func (c ClockTime) Before(other ClockTime) bool {
	if c.hour != other.hour {
		return c.hour < other.hour
	}
	return c.minute < other.minute
}

// On anchors the clock time to a calendar date in loc. time.Date applies the
// tz database rules, so DST gaps and folds resolve the way the zone does.
func (c ClockTime) On(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, c.hour, c.minute, 0, 0, loc)
}

// Rule is one weekday's bookable window in the host's local wall-clock time.
type Rule struct {
	weekday  time.Weekday
	start    ClockTime
	end      ClockTime
	location *time.Location
}

// NewRule validates the raw representation (weekday 0-6 Sunday-based,
// "HH:MM" strings, IANA zone name). Zero-length and inverted windows are
// rejected here, not in the generator.
func NewRule(dayOfWeek int, startTime, endTime, timezone string) (Rule, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return Rule{}, ErrInvalidWeekday
	}
	start, err := ParseClockTime(startTime)
	if err != nil {
		return Rule{}, err
	}
	end, err := ParseClockTime(endTime)
	if err != nil {
		return Rule{}, err
	}
	if !start.Before(end) {
		return Rule{}, ErrEndNotAfterStart
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" || timezone == "Local" {
		return Rule{}, errs.Mark(errs.New("timezone "+strconv.Quote(timezone)), ErrUnknownTimezone)
	}
	return Rule{weekday: time.Weekday(dayOfWeek), start: start, end: end, location: loc}, nil
}

func (r Rule) Weekday() time.Weekday    { return r.weekday }
func (r Rule) Start() ClockTime         { return r.start }
func (r Rule) End() ClockTime           { return r.end }
func (r Rule) Location() *time.Location { return r.location }
func (r Rule) TimezoneName() string     { return r.location.String() }

// RuleSet is a host's full weekly configuration: at most one rule per
// weekday. Duplicates are a configuration error, rejected when the set is
// built rather than silently resolved during generation.
type RuleSet struct {
	byWeekday map[time.Weekday]Rule
}

func NewRuleSet(rules []Rule) (RuleSet, error) {
	byWeekday := make(map[time.Weekday]Rule, len(rules))
	for _, r := range rules {
		if _, exists := byWeekday[r.weekday]; exists {
			return RuleSet{}, errs.Mark(errs.New("weekday "+r.weekday.String()), ErrDuplicateWeekday)
		}
		byWeekday[r.weekday] = r
	}
	return RuleSet{byWeekday: byWeekday}, nil
}

// ForWeekday returns the rule for the weekday, if configured.
func (rs RuleSet) ForWeekday(d time.Weekday) (Rule, bool) {
	r, ok := rs.byWeekday[d]
	return r, ok
}

func (rs RuleSet) Len() int {
	return len(rs.byWeekday)
}

// Rules returns the configured rules ordered by weekday.
func (rs RuleSet) Rules() []Rule {
	out := make([]Rule, 0, len(rs.byWeekday))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if r, ok := rs.byWeekday[d]; ok {
			out = append(out, r)
		}
	}
	return out
}
