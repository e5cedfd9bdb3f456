package records

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned by [ParseDate] when the input is not a date
// value it understands.
var ErrInvalidDate = errors.New("invalid date")

// Precision is how much of a [Date] is known.
type Precision int

const (
	PrecisionYear Precision = iota + 1
	PrecisionMonth
	PrecisionDay
)

// Date is a calendar date with partial precision. Month and Day are zero
// when unknown.
type Date struct {
	Year      int
	Month     int
	Day       int
	Precision Precision
}

var months = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

// qualifiers are GEDCOM date modifiers that do not change the date value.
var qualifiers = map[string]bool{
	"ABT": true, "ABOUT": true, "CAL": true, "EST": true,
	"BEF": true, "AFT": true, "INT": true, "FROM": true, "TO": true, "BET": true,
}

// ParseDate parses a date value. Accepted forms:
//
//	1950, MAR 1950, 12 MAR 1950      GEDCOM, with optional ABT/BEF/AFT/EST/CAL/INT
//	BET 1890 AND 1900, FROM x TO y  ranges, the first bound is used
//	1950-03-12, 1950-03             ISO 8601
//	12.03.1950, 03.1950             dotted day-first
func ParseDate(s string) (Date, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if i := strings.IndexByte(v, '('); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}
	if v == "" {
		return Date{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}

	fields := strings.Fields(v)
	for len(fields) > 0 && qualifiers[fields[0]] {
		fields = fields[1:]
	}
	for i, f := range fields {
		if f == "AND" || f == "TO" {
			fields = fields[:i]
			break
		}
	}

	var (
		d   Date
		err error
	)
	switch {
	case len(fields) == 1 && strings.Contains(fields[0], "-"):
		d, err = parseSeparated(strings.Split(fields[0], "-"), false)
	case len(fields) == 1 && strings.Contains(fields[0], "."):
		d, err = parseSeparated(strings.Split(fields[0], "."), true)
	case len(fields) >= 1 && len(fields) <= 3:
		d, err = parseGEDCOM(fields)
	default:
		err = ErrInvalidDate
	}
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if !d.valid() {
		return Date{}, fmt.Errorf("%w: %q out of range", ErrInvalidDate, s)
	}
	return d, nil
}

func parseGEDCOM(fields []string) (Date, error) {
	year, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return Date{}, err
	}
	d := Date{Year: year, Precision: PrecisionYear}
	if len(fields) >= 2 {
		m, ok := months[fields[len(fields)-2]]
		if !ok {
			return Date{}, ErrInvalidDate
		}
		d.Month, d.Precision = m, PrecisionMonth
	}
	if len(fields) == 3 {
		day, err := strconv.Atoi(fields[0])
		if err != nil {
			return Date{}, err
		}
		d.Day, d.Precision = day, PrecisionDay
	}
	return d, nil
}

// parseSeparated handles yyyy-MM[-dd] and [dd.]MM.yyyy.
func parseSeparated(parts []string, dayFirst bool) (Date, error) {
	if len(parts) < 2 || len(parts) > 3 {
		return Date{}, ErrInvalidDate
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, err
		}
		nums[i] = n
	}
	if dayFirst {
		for i, j := 0, len(nums)-1; i < j; i, j = i+1, j-1 {
			nums[i], nums[j] = nums[j], nums[i]
		}
	}
	d := Date{Year: nums[0], Month: nums[1], Precision: PrecisionMonth}
	if len(nums) == 3 {
		d.Day, d.Precision = nums[2], PrecisionDay
	}
	return d, nil
}

func (d Date) valid() bool {
	if d.Year <= 0 || d.Year > 9999 {
		return false
	}
	if d.Precision >= PrecisionMonth && (d.Month < 1 || d.Month > 12) {
		return false
	}
	if d.Precision == PrecisionDay {
		t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
		return t.Day() == d.Day && int(t.Month()) == d.Month
	}
	return true
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.Precision == 0 }

// Time returns the first instant covered by d, in UTC. Unknown month and
// day default to 1.
func (d Date) Time() time.Time {
	m, day := d.Month, d.Day
	if m == 0 {
		m = 1
	}
	if day == 0 {
		day = 1
	}
	return time.Date(d.Year, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1 if d is before o, +1 if after and 0 if both start on
// the same day.
func (d Date) Compare(o Date) int {
	return d.Time().Compare(o.Time())
}

// Before reports whether d starts before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// String formats d as yyyy, MM.yyyy or dd.MM.yyyy depending on precision.
func (d Date) String() string {
	switch d.Precision {
	case PrecisionDay:
		return fmt.Sprintf("%02d.%02d.%04d", d.Day, d.Month, d.Year)
	case PrecisionMonth:
		return fmt.Sprintf("%02d.%04d", d.Month, d.Year)
	case PrecisionYear:
		return fmt.Sprintf("%04d", d.Year)
	}
	return ""
}

// YearsBetween returns the number of full years from d to end. Unknown
// month and day parts are treated as the first of the period.
func YearsBetween(d, end Date) int {
	a, b := d.Time(), end.Time()
	years := b.Year() - a.Year()
	if b.Month() < a.Month() || (b.Month() == a.Month() && b.Day() < a.Day()) {
		years--
	}
	return years
}
