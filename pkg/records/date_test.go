package records

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"1950", Date{Year: 1950, Precision: PrecisionYear}},
		{"MAR 1950", Date{Year: 1950, Month: 3, Precision: PrecisionMonth}},
		{"12 MAR 1950", Date{Year: 1950, Month: 3, Day: 12, Precision: PrecisionDay}},
		{"12 mar 1950", Date{Year: 1950, Month: 3, Day: 12, Precision: PrecisionDay}},
		{"ABT 1900", Date{Year: 1900, Precision: PrecisionYear}},
		{"BEF 2 JAN 1901", Date{Year: 1901, Month: 1, Day: 2, Precision: PrecisionDay}},
		{"BET 1890 AND 1900", Date{Year: 1890, Precision: PrecisionYear}},
		{"FROM 1900 TO 1910", Date{Year: 1900, Precision: PrecisionYear}},
		{"INT 1900 (about then)", Date{Year: 1900, Precision: PrecisionYear}},
		{"1950-03-12", Date{Year: 1950, Month: 3, Day: 12, Precision: PrecisionDay}},
		{"1950-03", Date{Year: 1950, Month: 3, Precision: PrecisionMonth}},
		{"12.03.1950", Date{Year: 1950, Month: 3, Day: 12, Precision: PrecisionDay}},
		{"03.1950", Date{Year: 1950, Month: 3, Precision: PrecisionMonth}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "unknown", "FOO 1950", "31 FEB 1950", "1950-13", "32.01.1950", "1 2 3 4"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDate(in)
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", in, err)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1950", "1950"},
		{"MAR 1950", "03.1950"},
		{"2 MAR 1950", "02.03.1950"},
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tt.in, err)
		}
		if got := d.String(); got != tt.want {
			t.Errorf("ParseDate(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDateCompare(t *testing.T) {
	mustParse := func(s string) Date {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		return d
	}

	tests := []struct {
		a, b string
		want int
	}{
		{"1950", "1951", -1},
		{"1951", "1950", 1},
		{"1950", "1 JAN 1950", 0},
		{"MAR 1950", "FEB 1950", 1},
		{"1 MAR 1950", "2 MAR 1950", -1},
	}
	for _, tt := range tests {
		if got := mustParse(tt.a).Compare(mustParse(tt.b)); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestYearsBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"12 MAR 1900", "11 MAR 1950", 49},
		{"12 MAR 1900", "12 MAR 1950", 50},
		{"1900", "1950", 50},
		{"DEC 1900", "JAN 1950", 49},
	}
	for _, tt := range tests {
		a, _ := ParseDate(tt.from)
		b, _ := ParseDate(tt.to)
		if got := YearsBetween(a, b); got != tt.want {
			t.Errorf("YearsBetween(%q, %q) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}
