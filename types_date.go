package puppyshop

import (
	"fmt"
	"strings"
	"time"
)

// readDateFormat accepts single-digit day and month (e.g. "3/7/2024").
const readDateFormat = "2/1/2006"

// DateFormat is the format used to write dates to the sales file.
const DateFormat = "02/01/2006"

// ClockFormat is the format used to write times of day to the sales file.
const ClockFormat = "15:04:05"

// readMonthFormat accepts a single-digit month (e.g. "7/2024").
const readMonthFormat = "1/2006"

// MonthFormat is the format used to render report months.
const MonthFormat = "01/2006"

// Date represents a calendar date with day-level granularity.
//
// A Date decoded from an unparsable field keeps the original text in raw and
// reports IsZero; such dates are skipped by range queries and aggregations
// but round-trip unchanged through the sales file.
type Date struct {
	y   int
	m   time.Month
	d   int
	raw string
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{y: year, m: month, d: day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// DateOf returns the Date of the given instant.
func DateOf(t time.Time) Date { return NewDate(t.Date()) }

// Today returns the current date.
func Today() Date { return DateOf(time.Now()) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a canonical representation of that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// String formats the date in the DD/MM/YYYY wire format. An unparsable
// decoded date renders as its original text.
func (d Date) String() string {
	if d.raw != "" {
		return d.raw
	}
	return d.time().Format(DateFormat)
}

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// MonthOf returns the Month containing d.
func (d Date) MonthOf() Month { return Month{y: d.y, m: d.m} }

// ParseDate parses a DD/MM/YYYY date. Single-digit day and month are accepted
// on read; the write format is always zero-padded.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("invalid date %q, want DD/MM/YYYY", str)}
	}
	return DateOf(on), nil
}

// MustParseDate is like ParseDate but panics on error. For tests and fixtures.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalCSV implements gocsv marshalling for Date.
func (d Date) MarshalCSV() (string, error) { return d.String(), nil }

// UnmarshalCSV implements gocsv unmarshalling for Date.
//
// Unparsable dates decode to the zero Date instead of failing the whole file:
// range queries and aggregations skip such rows.
func (d *Date) UnmarshalCSV(field string) error {
	parsed, err := ParseDate(field)
	if err != nil {
		*d = Date{raw: field}
		return nil
	}
	*d = parsed
	return nil
}

// Clock represents a time of day with second-level granularity. Like Date, an
// unparsable decoded field is kept verbatim for round-tripping.
type Clock struct {
	h, m, s int
	raw     string
}

// ClockOf returns the Clock of the given instant.
func ClockOf(t time.Time) Clock {
	return Clock{h: t.Hour(), m: t.Minute(), s: t.Second()}
}

// String formats the clock in the HH:MM:SS wire format.
func (c Clock) String() string {
	if c.raw != "" {
		return c.raw
	}
	return time.Date(0, 1, 1, c.h, c.m, c.s, 0, time.UTC).Format(ClockFormat)
}

// ParseClock parses an HH:MM:SS time of day.
func ParseClock(str string) (Clock, error) {
	t, err := time.Parse(ClockFormat, strings.TrimSpace(str))
	if err != nil {
		return Clock{}, &ValidationError{Field: "time", Reason: fmt.Sprintf("invalid time %q, want HH:MM:SS", str)}
	}
	return ClockOf(t), nil
}

// MarshalCSV implements gocsv marshalling for Clock.
func (c Clock) MarshalCSV() (string, error) { return c.String(), nil }

// UnmarshalCSV implements gocsv unmarshalling for Clock. Lenient like Date.
func (c *Clock) UnmarshalCSV(field string) error {
	parsed, err := ParseClock(field)
	if err != nil {
		*c = Clock{raw: field}
		return nil
	}
	*c = parsed
	return nil
}

// Month represents a calendar month.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month.
func NewMonth(year int, month time.Month) Month {
	y, m, _ := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Date()
	return Month{y: y, m: m}
}

func (m Month) Year() int           { return m.y }
func (m Month) Month() time.Month   { return m.m }
func (m Month) Before(x Month) bool { return m.y < x.y || (m.y == x.y && m.m < x.m) }

// String formats the month in the MM/YYYY wire format.
func (m Month) String() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(MonthFormat)
}

// Range returns the inclusive date range spanning the whole month.
func (m Month) Range() Range {
	return Range{
		Start: NewDate(m.y, m.m, 1),
		End:   NewDate(m.y, m.m+1, 0), // day 0 of next month is the last day of m
	}
}

// ParseMonth parses an MM/YYYY month.
func ParseMonth(str string) (Month, error) {
	t, err := time.Parse(readMonthFormat, strings.TrimSpace(str))
	if err != nil {
		return Month{}, &ValidationError{Field: "month", Reason: fmt.Sprintf("invalid month %q, want MM/YYYY", str)}
	}
	return NewMonth(t.Year(), t.Month()), nil
}

// Range is an inclusive date range.
type Range struct {
	Start Date
	End   Date
}

// NewRange returns the inclusive range [start, end].
func NewRange(start, end Date) Range { return Range{Start: start, End: end} }

// MonthRange returns the inclusive range from the first day of from to the
// last day of to.
func MonthRange(from, to Month) Range {
	return Range{Start: from.Range().Start, End: to.Range().End}
}

// Contains reports whether d falls within the range, endpoints included.
// The zero Date is never contained.
func (r Range) Contains(d Date) bool {
	if d.IsZero() {
		return false
	}
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("%s to %s", r.Start, r.End)
}
