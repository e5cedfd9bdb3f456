package io

import (
	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/records"
)

// Dataset is the serialized form of a record set. The bson tags let the
// mongo source decode documents into the same shapes.
type Dataset struct {
	Individuals []IndividualDoc `json:"individuals" yaml:"individuals"`
	Families    []FamilyDoc     `json:"families" yaml:"families"`
}

// IndividualDoc is the serialized form of a [records.Individual].
type IndividualDoc struct {
	ID             string       `json:"id" yaml:"id" bson:"_id"`
	Sex            string       `json:"sex,omitempty" yaml:"sex,omitempty" bson:"sex,omitempty"`
	Names          []NameDoc    `json:"names,omitempty" yaml:"names,omitempty" bson:"names,omitempty"`
	Birth          *EventDoc    `json:"birth,omitempty" yaml:"birth,omitempty" bson:"birth,omitempty"`
	Death          *EventDoc    `json:"death,omitempty" yaml:"death,omitempty" bson:"death,omitempty"`
	Addresses      []AddressDoc `json:"addresses,omitempty" yaml:"addresses,omitempty" bson:"addresses,omitempty"`
	Emails         []string     `json:"emails,omitempty" yaml:"emails,omitempty" bson:"emails,omitempty"`
	SpouseFamilies []string     `json:"spouse_families,omitempty" yaml:"spouse_families,omitempty" bson:"spouse_families,omitempty"`
	ChildFamilies  []string     `json:"child_families,omitempty" yaml:"child_families,omitempty" bson:"child_families,omitempty"`
}

// NameDoc is the serialized form of a [records.Name].
type NameDoc struct {
	Given   string `json:"given,omitempty" yaml:"given,omitempty" bson:"given,omitempty"`
	Surname string `json:"surname,omitempty" yaml:"surname,omitempty" bson:"surname,omitempty"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty" bson:"type,omitempty"`
}

// EventDoc is the serialized form of a [records.Event].
type EventDoc struct {
	Occurred bool   `json:"occurred,omitempty" yaml:"occurred,omitempty" bson:"occurred,omitempty"`
	Date     string `json:"date,omitempty" yaml:"date,omitempty" bson:"date,omitempty"`
}

// AddressDoc is the serialized form of a [records.Address].
type AddressDoc struct {
	Street1 string `json:"street1,omitempty" yaml:"street1,omitempty" bson:"street1,omitempty"`
	Street2 string `json:"street2,omitempty" yaml:"street2,omitempty" bson:"street2,omitempty"`
	Post    string `json:"post,omitempty" yaml:"post,omitempty" bson:"post,omitempty"`
	City    string `json:"city,omitempty" yaml:"city,omitempty" bson:"city,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty" bson:"country,omitempty"`
}

// FamilyDoc is the serialized form of a [records.Family].
type FamilyDoc struct {
	ID           string   `json:"id" yaml:"id" bson:"_id"`
	Husband      string   `json:"husband,omitempty" yaml:"husband,omitempty" bson:"husband,omitempty"`
	Wife         string   `json:"wife,omitempty" yaml:"wife,omitempty" bson:"wife,omitempty"`
	Children     []string `json:"children,omitempty" yaml:"children,omitempty" bson:"children,omitempty"`
	Status       string   `json:"status,omitempty" yaml:"status,omitempty" bson:"status,omitempty"`
	MarriageDate string   `json:"marriage_date,omitempty" yaml:"marriage_date,omitempty" bson:"marriage_date,omitempty"`
}

// Individual converts the document to a record.
func (d IndividualDoc) Individual() records.Individual {
	ind := records.Individual{
		ID:             d.ID,
		Sex:            records.ParseSex(d.Sex),
		Birth:          d.Birth.event(),
		Death:          d.Death.event(),
		Emails:         d.Emails,
		SpouseFamilies: d.SpouseFamilies,
		ChildFamilies:  d.ChildFamilies,
	}
	for _, n := range d.Names {
		ind.Names = append(ind.Names, records.Name{Given: n.Given, Surname: n.Surname, Type: records.ParseNameType(n.Type)})
	}
	for _, a := range d.Addresses {
		ind.Addresses = append(ind.Addresses, records.Address(a))
	}
	return ind
}

func (e *EventDoc) event() records.Event {
	if e == nil {
		return records.Event{}
	}
	return records.Event{Occurred: e.Occurred || e.Date != "", Date: e.Date}
}

// Family converts the document to a record. It fails with INVALID_RECORD
// for an unknown status.
func (d FamilyDoc) Family() (records.Family, error) {
	f := records.Family{
		ID:           d.ID,
		Husband:      d.Husband,
		Wife:         d.Wife,
		Children:     d.Children,
		MarriageDate: d.MarriageDate,
	}
	switch {
	case d.Status != "":
		st, ok := records.ParseStatus(d.Status)
		if !ok {
			return f, errors.New(errors.ErrCodeInvalidRecord,
				"family %s: invalid status %q (must be married, divorced or unmarried)", d.ID, d.Status)
		}
		f.Status = st
	case d.MarriageDate != "":
		f.Status = records.StatusMarried
	}
	return f, nil
}

// NewIndividualDoc converts a record to its document form.
func NewIndividualDoc(ind *records.Individual) IndividualDoc {
	d := IndividualDoc{
		ID:             ind.ID,
		Birth:          newEventDoc(ind.Birth),
		Death:          newEventDoc(ind.Death),
		Emails:         ind.Emails,
		SpouseFamilies: ind.SpouseFamilies,
		ChildFamilies:  ind.ChildFamilies,
	}
	if ind.Sex != records.SexUnknown {
		d.Sex = ind.Sex.String()
	}
	for _, n := range ind.Names {
		nd := NameDoc{Given: n.Given, Surname: n.Surname}
		if n.Type == records.NameMarried {
			nd.Type = n.Type.String()
		}
		d.Names = append(d.Names, nd)
	}
	for _, a := range ind.Addresses {
		d.Addresses = append(d.Addresses, AddressDoc(a))
	}
	return d
}

func newEventDoc(e records.Event) *EventDoc {
	if !e.Occurred && e.Date == "" {
		return nil
	}
	if e.Date != "" {
		return &EventDoc{Date: e.Date}
	}
	return &EventDoc{Occurred: true}
}

// NewFamilyDoc converts a record to its document form.
func NewFamilyDoc(f *records.Family) FamilyDoc {
	return FamilyDoc{
		ID:           f.ID,
		Husband:      f.Husband,
		Wife:         f.Wife,
		Children:     f.Children,
		Status:       f.Status.String(),
		MarriageDate: f.MarriageDate,
	}
}

// Store loads the dataset into a new store.
func (ds Dataset) Store() (*records.MemoryStore, error) {
	s := records.NewMemoryStore()
	for _, d := range ds.Individuals {
		if err := s.AddIndividual(d.Individual()); err != nil {
			return nil, err
		}
	}
	for _, d := range ds.Families {
		f, err := d.Family()
		if err != nil {
			return nil, err
		}
		if err := s.AddFamily(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewDataset converts a store to a dataset, keeping insertion order.
func NewDataset(s *records.MemoryStore) Dataset {
	var ds Dataset
	for _, ind := range s.Individuals() {
		ds.Individuals = append(ds.Individuals, NewIndividualDoc(ind))
	}
	for _, f := range s.Families() {
		ds.Families = append(ds.Families, NewFamilyDoc(f))
	}
	return ds
}
