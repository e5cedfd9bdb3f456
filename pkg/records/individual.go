package records

import "strings"

// Sex is the recorded sex of an individual.
type Sex int

const (
	SexUnknown Sex = iota
	SexMale
	SexFemale
)

// ParseSex maps the usual spellings ("M", "male", "F", "female") to a Sex.
// Anything else is SexUnknown.
func ParseSex(s string) Sex {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return SexMale
	case "f", "female":
		return SexFemale
	}
	return SexUnknown
}

// String returns the GEDCOM letter for the sex ("M", "F" or "U").
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "M"
	case SexFemale:
		return "F"
	}
	return "U"
}

// NameType distinguishes birth/maiden names from names taken by marriage.
type NameType int

const (
	// NameOther covers birth, maiden and any name not taken by marriage.
	NameOther NameType = iota
	NameMarried
)

// ParseNameType maps "married" to NameMarried and everything else to NameOther.
func ParseNameType(s string) NameType {
	if strings.EqualFold(strings.TrimSpace(s), "married") {
		return NameMarried
	}
	return NameOther
}

// String returns "married" or "other".
func (t NameType) String() string {
	if t == NameMarried {
		return "married"
	}
	return "other"
}

// Name is one name record of an individual.
type Name struct {
	Given   string
	Surname string
	Type    NameType
}

// Event records whether a vital event happened and, optionally, when.
// Occurred with an empty Date means "known to have happened, date unknown".
type Event struct {
	Occurred bool
	Date     string
}

// Address is a postal address split into the parts the reports print.
type Address struct {
	Street1 string
	Street2 string
	Post    string
	City    string
	Country string
}

// Parts returns the address parts in print order.
func (a Address) Parts() []string {
	return []string{a.Street1, a.Street2, a.Post, a.City, a.Country}
}

// String joins the address parts with ", ", leaving empty parts out.
func (a Address) String() string {
	var parts []string
	for _, p := range a.Parts() {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// IsZero reports whether every address part is empty.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Individual is a person record.
//
// SpouseFamilies lists the families in which the individual is a parent
// ("spousal links"), in source order. ChildFamilies lists the families in
// which the individual is a child.
type Individual struct {
	ID             string
	Sex            Sex
	Names          []Name
	Birth          Event
	Death          Event
	Addresses      []Address
	Emails         []string
	SpouseFamilies []string
	ChildFamilies  []string
}

// BirthDate parses the birth date. ok is false when the individual has no
// birth date or it cannot be parsed.
func (i *Individual) BirthDate() (d Date, ok bool) {
	if i == nil || i.Birth.Date == "" {
		return Date{}, false
	}
	d, err := ParseDate(i.Birth.Date)
	return d, err == nil
}

// DeathDate parses the death date, see [Individual.BirthDate].
func (i *Individual) DeathDate() (d Date, ok bool) {
	if i == nil || i.Death.Date == "" {
		return Date{}, false
	}
	d, err := ParseDate(i.Death.Date)
	return d, err == nil
}

// IsBorn reports whether a birth is recorded, with or without a date.
func (i *Individual) IsBorn() bool { return i.Birth.Occurred || i.Birth.Date != "" }

// IsDead reports whether a death is recorded, with or without a date.
func (i *Individual) IsDead() bool { return i.Death.Occurred || i.Death.Date != "" }

// LastName returns the last name record of the given type, or nil.
func (i *Individual) LastName(t NameType) *Name {
	for k := len(i.Names) - 1; k >= 0; k-- {
		if i.Names[k].Type == t {
			return &i.Names[k]
		}
	}
	return nil
}

// DisplayName is "Given Surname" of the last name record, or the id when
// the individual has no names.
func (i *Individual) DisplayName() string {
	if len(i.Names) == 0 {
		return i.ID
	}
	n := i.Names[len(i.Names)-1]
	s := strings.TrimSpace(n.Given + " " + n.Surname)
	if s == "" {
		return i.ID
	}
	return s
}

// LastAddress returns the most recent address, or the zero Address.
func (i *Individual) LastAddress() Address {
	if len(i.Addresses) == 0 {
		return Address{}
	}
	return i.Addresses[len(i.Addresses)-1]
}

// PrimaryEmail returns the first email address, or "".
func (i *Individual) PrimaryEmail() string {
	if len(i.Emails) == 0 {
		return ""
	}
	return i.Emails[0]
}
