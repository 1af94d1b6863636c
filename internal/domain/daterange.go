package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// DateRange is a half-open range of calendar days [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange truncates both bounds to UTC midnight and requires End after Start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: TruncateDate(start), End: TruncateDate(end)}
	if !r.End.After(r.Start) {
		return DateRange{}, fmt.Errorf("%w: end_date %s must be after start_date %s",
			ErrInvalidRange, r.End.Format(DateLayout), r.Start.Format(DateLayout))
	}
	return r, nil
}

// ParseDateRange parses two YYYY-MM-DD strings into a DateRange.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrInvalidRange)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrInvalidRange)
	}
	return NewDateRange(s, e)
}

func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights is the number of whole days in the range. Both bounds are UTC
// midnight, so the Unix difference is an exact multiple of a day; time.Duration
// would saturate for ranges longer than ~292 years.
func (r DateRange) Nights() int64 {
	return (r.End.Unix() - r.Start.Unix()) / secondsPerDay
}

// Overlaps reports whether the two ranges share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// StartsBefore reports whether the range starts before the day of t.
func (r DateRange) StartsBefore(t time.Time) bool {
	return r.Start.Before(TruncateDate(t))
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}
