package render

import (
	"strconv"
	"strings"

	"github.com/matzehuels/familytree/pkg/records"
)

// Formatter produces field values for one individual under [Options].
// Every method returns "" (or false) when its field is switched off or
// the value is unknown.
type Formatter struct {
	Options
}

// NewFormatter returns a Formatter for opts.
func NewFormatter(opts Options) Formatter {
	return Formatter{Options: opts}
}

// ID returns the individual's id.
func (f Formatter) ID(ind *records.Individual) string {
	if !f.ShowID {
		return ""
	}
	return ind.ID
}

// Gender returns male or female according to the recorded sex, "" when
// unknown.
func (f Formatter) Gender(ind *records.Individual, male, female string) string {
	if !f.ShowGender {
		return ""
	}
	switch ind.Sex {
	case records.SexMale:
		return male
	case records.SexFemale:
		return female
	}
	return ""
}

// Relationship returns married, divorced or unmarried according to the
// family status, "" for a lone node.
func (f Formatter) Relationship(fam *records.Family, married, divorced, unmarried string) string {
	if !f.ShowRelationship || fam == nil {
		return ""
	}
	switch fam.Status {
	case records.StatusMarried:
		return married
	case records.StatusDivorced:
		return divorced
	}
	return unmarried
}

// birthName is the last name that was not taken by marriage, falling back
// to the last married name.
func birthName(ind *records.Individual) *records.Name {
	if n := ind.LastName(records.NameOther); n != nil {
		return n
	}
	return ind.LastName(records.NameMarried)
}

// FirstName returns the given names of the birth name with commas removed.
func (f Formatter) FirstName(ind *records.Individual) string {
	if !f.ShowFirstName {
		return ""
	}
	n := birthName(ind)
	if n == nil {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(n.Given, ",", ""))
}

// SplitFirstName splits given names at the first space into the first
// name and the middle names.
func SplitFirstName(given string) (first, middle string) {
	first, middle, _ = strings.Cut(given, " ")
	return first, strings.TrimSpace(middle)
}

// MaidenName returns the surname of the birth name.
func (f Formatter) MaidenName(ind *records.Individual) string {
	if !f.ShowMaidenName {
		return ""
	}
	n := birthName(ind)
	if n == nil {
		return ""
	}
	return n.Surname
}

// MarriedName returns the surname of the last married name while the
// union fam is not divorced.
func (f Formatter) MarriedName(ind *records.Individual, fam *records.Family) string {
	if !f.ShowMarriedName || fam == nil || fam.IsDivorced() {
		return ""
	}
	n := ind.LastName(records.NameMarried)
	if n == nil {
		return ""
	}
	return n.Surname
}

// FullName is the first name followed by the married name, or the maiden
// name when there is no married name. Used for labels.
func (f Formatter) FullName(ind *records.Individual, fam *records.Family) string {
	last := f.MarriedName(ind, fam)
	if last == "" {
		last = f.MaidenName(ind)
	}
	return strings.TrimSpace(f.FirstName(ind) + " " + last)
}

// BirthDate formats the birth date by its precision. An event recorded
// without date gives "?"; an unparseable date is returned as recorded.
func (f Formatter) BirthDate(ind *records.Individual) string {
	if !f.ShowBirthDate || !ind.IsBorn() {
		return ""
	}
	return formatEvent(ind.Birth)
}

// DeathDate formats the death date, see [Formatter.BirthDate].
func (f Formatter) DeathDate(ind *records.Individual) string {
	if !f.ShowDeathDate || !ind.IsDead() {
		return ""
	}
	return formatEvent(ind.Death)
}

func formatEvent(e records.Event) string {
	if e.Date == "" {
		return "?"
	}
	d, err := records.ParseDate(e.Date)
	if err != nil {
		return e.Date
	}
	return d.String()
}

// Age returns the age at death in whole years when both dates are known.
func (f Formatter) Age(ind *records.Individual) string {
	if !f.ShowAgeForDead {
		return ""
	}
	birth, okB := ind.BirthDate()
	death, okD := ind.DeathDate()
	if !okB || !okD {
		return ""
	}
	age := records.YearsBetween(birth, death)
	if age < 0 {
		return ""
	}
	return strconv.Itoa(age)
}

// Email returns the first email address.
func (f Formatter) Email(ind *records.Individual) string {
	if !f.ShowEmail {
		return ""
	}
	return ind.PrimaryEmail()
}

// Address returns the last address on one line, empty parts collapsed.
func (f Formatter) Address(ind *records.Individual) string {
	if !f.ShowAddress {
		return ""
	}
	return ind.LastAddress().String()
}

// AddressParts returns street1, street2, post, city and country of the
// last address; all empty when addresses are hidden.
func (f Formatter) AddressParts(ind *records.Individual) []string {
	if !f.ShowAddress {
		return make([]string, 5)
	}
	return ind.LastAddress().Parts()
}

// SameAddress reports whether a and b share their last address. The
// partner's address line is left out in that case.
func SameAddress(a, b *records.Individual) bool {
	if a == nil || b == nil {
		return false
	}
	aa, ba := a.LastAddress(), b.LastAddress()
	return !aa.IsZero() && aa == ba
}
