package scheduling

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Clock is a wall-clock time of day in minutes since midnight. No time zone is attached.
type Clock int

// ParseClock accepts "HH:MM" or "HH:MM:SS" (seconds are dropped).
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, &TimeFormatError{Value: s}
	}
	hour, ok := twoDigits(parts[0], 23)
	if !ok {
		return 0, &TimeFormatError{Value: s}
	}
	minute, ok := twoDigits(parts[1], 59)
	if !ok {
		return 0, &TimeFormatError{Value: s}
	}
	if len(parts) == 3 {
		if _, ok := twoDigits(parts[2], 59); !ok {
			return 0, &TimeFormatError{Value: s}
		}
	}
	return Clock(hour*60 + minute), nil
}

func twoDigits(s string, limit int) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	v := int(s[0]-'0')*10 + int(s[1]-'0')
	return v, v <= limit
}

// NormalizeClock rewrites "HH:MM[:SS]" as "HH:MM".
func NormalizeClock(s string) (string, error) {
	c, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Format12h renders the clock as "9:00 AM".
func (c Clock) Format12h() string {
	hour, minute := int(c)/60, int(c)%60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}

// ParseDate validates a "YYYY-MM-DD" calendar day.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// FormatDate renders t as "YYYY-MM-DD" in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Range is the half-open interval [Start, End).
type Range struct {
	Start Clock
	End   Clock
}

// ParseRange parses both bounds and requires start < end.
func ParseRange(start, end string) (Range, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Range{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Range{}, err
	}
	if s >= e {
		return Range{}, fmt.Errorf("%w: %s - %s", ErrInvalidRange, s, e)
	}
	return Range{Start: s, End: e}, nil
}

// Overlaps reports whether r and o share any instant. Touching bounds do not overlap.
// The three cases together are equivalent to r.Start < o.End && o.Start < r.End.
func (r Range) Overlaps(o Range) bool {
	startsInside := o.Start <= r.Start && r.Start < o.End
	endsInside := o.Start < r.End && r.End <= o.End
	encloses := r.Start <= o.Start && r.End >= o.End
	return startsInside || endsInside || encloses
}

// Contains reports whether c falls inside [Start, End).
func (r Range) Contains(c Clock) bool {
	return r.Start <= c && c < r.End
}

// IsSlotStart reports whether a slot of length step laid from r.Start begins at c
// and ends within r.
func (r Range) IsSlotStart(c, step Clock) bool {
	if step <= 0 || c < r.Start || c+step > r.End {
		return false
	}
	return (c-r.Start)%step == 0
}
