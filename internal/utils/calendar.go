package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mobility-rental-backend/internal/errs"
)

// DateLayout is the wire format of a calendar date
const DateLayout = "2006-01-02"

// Date represents a calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(dateStr), "-")
	if len(parts) != 3 {
		return Date{}, errs.New("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, errs.Wrap(err, "invalid year")
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, errs.Wrap(err, "invalid month")
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, errs.Wrap(err, "invalid day")
	}

	if month < 1 || month > 12 {
		return Date{}, errs.New("month must be between 1 and 12")
	}

	if last := DaysInMonth(year, month); day < 1 || day > last {
		return Date{}, errs.Newf("day must be between 1 and %d", last)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// MustParseDate is ParseDate for literals known to be valid
func MustParseDate(dateStr string) Date {
	d, err := ParseDate(dateStr)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar date of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	return 31
}

// AddMonths shifts d by n months, clamping the day to the last day of the
// target month (Jan 31 + 1 month is the last day of February).
func AddMonths(d Date, n int) Date {
	index := d.Year*12 + (d.Month - 1) + n
	year := floorDiv(index, 12)
	month := index - year*12 + 1

	day := d.Day
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return Date{Year: year, Month: month, Day: day}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// IsZero reports whether d is the zero Date (an absent date in stored data)
func (d Date) IsZero() bool {
	return d == Date{}
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

// Time returns midnight of d in loc
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText encodes d as yyyy-mm-dd; the zero Date encodes as an empty string
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts yyyy-mm-dd or an empty string
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
