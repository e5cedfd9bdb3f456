package records

import "strings"

// Status is the marital status of a family union. The three states are
// mutually exclusive.
type Status int

const (
	StatusUnmarried Status = iota
	StatusMarried
	StatusDivorced
)

// ParseStatus maps "married", "divorced" and "unmarried" (case-insensitive)
// to a Status. ok is false for any other input.
func ParseStatus(s string) (st Status, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "married":
		return StatusMarried, true
	case "divorced":
		return StatusDivorced, true
	case "unmarried":
		return StatusUnmarried, true
	}
	return StatusUnmarried, false
}

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusMarried:
		return "married"
	case StatusDivorced:
		return "divorced"
	}
	return "unmarried"
}

// Family is a union of up to two parents and their children.
// Husband and Wife are empty when absent. Children keep source order.
type Family struct {
	ID           string
	Husband      string
	Wife         string
	Children     []string
	Status       Status
	MarriageDate string
}

// ChildCount returns the number of children listed on the family.
func (f *Family) ChildCount() int { return len(f.Children) }

// IsDivorced reports whether the family is divorced.
func (f *Family) IsDivorced() bool { return f.Status == StatusDivorced }

// IsMarried reports whether the family is married.
func (f *Family) IsMarried() bool { return f.Status == StatusMarried }

// Marriage parses the marriage date. ok is false when there is no date or
// it cannot be parsed.
func (f *Family) Marriage() (d Date, ok bool) {
	if f == nil || f.MarriageDate == "" {
		return Date{}, false
	}
	d, err := ParseDate(f.MarriageDate)
	return d, err == nil
}

// HasParent reports whether id is the husband or the wife.
func (f *Family) HasParent(id string) bool {
	return id != "" && (f.Husband == id || f.Wife == id)
}

// Parents returns the non-empty parent ids, husband first.
func (f *Family) Parents() []string {
	var ids []string
	if f.Husband != "" {
		ids = append(ids, f.Husband)
	}
	if f.Wife != "" {
		ids = append(ids, f.Wife)
	}
	return ids
}
