package namefile

import (
	"fmt"
	"time"
)

// dateLayout is the 8-digit calendar form used inside names.
const dateLayout = "20060102"

// todayFunc supplies the clock for Today. Tests may pin it.
var todayFunc = time.Now

// Date is a calendar date with no time-of-day component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today reads the system clock and returns the current calendar date.
func Today() Date {
	return DateOf(todayFunc())
}

// ParseDate parses an 8-digit YYYYMMDD string. The error wraps
// ErrInvalidDate and names the input.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// String renders the date in its 8-digit YYYYMMDD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// Time returns the date as a time.Time at UTC midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// valid reports whether the date names a real calendar day. time.Date
// normalizes out-of-range components (month 13 rolls into the next year),
// so a date is valid exactly when rebuilding it changes nothing.
func (d Date) valid() bool {
	y, m, day := d.Time().Date()
	return y == d.Year && m == d.Month && day == d.Day
}
