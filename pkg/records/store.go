package records

import (
	"sort"

	"github.com/matzehuels/familytree/pkg/errors"
)

// Store is the read-only lookup surface the tree builder consumes.
//
// Lookups never fail: a missing record is reported through the ok/has
// results. [Store.FamilyOfParents] is the one query that can detect an
// inconsistent record set.
type Store interface {
	HasIndividual(id string) bool
	Individual(id string) (*Individual, bool)
	HasFamily(id string) bool
	Family(id string) (*Family, bool)

	// FamiliesAsParent returns the families in which id is husband or wife,
	// in insertion order.
	FamiliesAsParent(id string) []*Family

	// FamiliesAsChild returns the families listing id as a child, in
	// insertion order.
	FamiliesAsChild(id string) []*Family

	// FamilyOfParents returns the single family whose parents are id1 and
	// id2 (in either slot). It returns nil, nil when there is none and an
	// AMBIGUOUS_FAMILY error when the pair shares more than one.
	FamilyOfParents(id1, id2 string) (*Family, error)
}

// MemoryStore is an in-memory [Store].
//
// The zero value is not usable; create one with [NewMemoryStore].
type MemoryStore struct {
	individuals map[string]*Individual
	families    map[string]*Family
	indOrder    []string
	famOrder    []string

	asParent map[string][]*Family
	asChild  map[string][]*Family
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		individuals: make(map[string]*Individual),
		families:    make(map[string]*Family),
		asParent:    make(map[string][]*Family),
		asChild:     make(map[string][]*Family),
	}
}

// AddIndividual stores a copy of ind. It fails with INVALID_RECORD for an
// invalid id and DUPLICATE_ID when the id is already taken.
func (s *MemoryStore) AddIndividual(ind Individual) error {
	if err := errors.ValidateID("individual", ind.ID); err != nil {
		return err
	}
	if _, dup := s.individuals[ind.ID]; dup {
		return errors.New(errors.ErrCodeDuplicateID, "individual %s already exists", ind.ID)
	}
	s.individuals[ind.ID] = &ind
	s.indOrder = append(s.indOrder, ind.ID)
	return nil
}

// AddFamily stores a copy of f and indexes it by parent and child ids. It
// fails with INVALID_RECORD for an invalid id and DUPLICATE_ID when the id
// is already taken.
func (s *MemoryStore) AddFamily(f Family) error {
	if err := errors.ValidateID("family", f.ID); err != nil {
		return err
	}
	if _, dup := s.families[f.ID]; dup {
		return errors.New(errors.ErrCodeDuplicateID, "family %s already exists", f.ID)
	}
	fam := &f
	s.families[f.ID] = fam
	s.famOrder = append(s.famOrder, f.ID)

	for _, p := range fam.Parents() {
		s.asParent[p] = append(s.asParent[p], fam)
	}
	seen := make(map[string]bool, len(fam.Children))
	for _, c := range fam.Children {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		s.asChild[c] = append(s.asChild[c], fam)
	}
	return nil
}

// HasIndividual reports whether an individual with id exists.
func (s *MemoryStore) HasIndividual(id string) bool {
	_, ok := s.individuals[id]
	return ok
}

// Individual returns the individual with id.
func (s *MemoryStore) Individual(id string) (*Individual, bool) {
	ind, ok := s.individuals[id]
	return ind, ok
}

// HasFamily reports whether a family with id exists.
func (s *MemoryStore) HasFamily(id string) bool {
	_, ok := s.families[id]
	return ok
}

// Family returns the family with id.
func (s *MemoryStore) Family(id string) (*Family, bool) {
	f, ok := s.families[id]
	return f, ok
}

// FamiliesAsParent returns the families naming id as husband or wife, in
// insertion order.
func (s *MemoryStore) FamiliesAsParent(id string) []*Family { return s.asParent[id] }

// FamiliesAsChild returns the families listing id as a child.
func (s *MemoryStore) FamiliesAsChild(id string) []*Family { return s.asChild[id] }

// FamilyOfParents returns the one family with both id1 and id2 as parents,
// nil when there is none. A pair sharing several families is an
// AMBIGUOUS_FAMILY error.
func (s *MemoryStore) FamilyOfParents(id1, id2 string) (*Family, error) {
	var found *Family
	for _, f := range s.asParent[id1] {
		if !f.HasParent(id2) || (id1 == id2 && f.Husband != f.Wife) {
			continue
		}
		if found != nil {
			return nil, errors.New(errors.ErrCodeAmbiguousFamily,
				"individuals %s and %s share more than one family (%s, %s)", id1, id2, found.ID, f.ID)
		}
		found = f
	}
	return found, nil
}

// Individuals returns all individuals in insertion order.
func (s *MemoryStore) Individuals() []*Individual {
	out := make([]*Individual, len(s.indOrder))
	for i, id := range s.indOrder {
		out[i] = s.individuals[id]
	}
	return out
}

// Families returns all families in insertion order.
func (s *MemoryStore) Families() []*Family {
	out := make([]*Family, len(s.famOrder))
	for i, id := range s.famOrder {
		out[i] = s.families[id]
	}
	return out
}

// Len returns the number of individuals and families.
func (s *MemoryStore) Len() (individuals, families int) {
	return len(s.individuals), len(s.families)
}

// Reference is a dangling link found by [MemoryStore.Dangling].
type Reference struct {
	From  string // id of the record holding the link
	Field string // "spouse_families", "child_families", "husband", "wife" or "children"
	To    string // id that does not resolve
}

// Dangling lists links that point at records missing from the store,
// sorted by From, Field and To.
func (s *MemoryStore) Dangling() []Reference {
	var refs []Reference
	for _, ind := range s.individuals {
		for _, id := range ind.SpouseFamilies {
			if id != "" && !s.HasFamily(id) {
				refs = append(refs, Reference{ind.ID, "spouse_families", id})
			}
		}
		for _, id := range ind.ChildFamilies {
			if id != "" && !s.HasFamily(id) {
				refs = append(refs, Reference{ind.ID, "child_families", id})
			}
		}
	}
	for _, f := range s.families {
		if f.Husband != "" && !s.HasIndividual(f.Husband) {
			refs = append(refs, Reference{f.ID, "husband", f.Husband})
		}
		if f.Wife != "" && !s.HasIndividual(f.Wife) {
			refs = append(refs, Reference{f.ID, "wife", f.Wife})
		}
		for _, c := range f.Children {
			if c != "" && !s.HasIndividual(c) {
				refs = append(refs, Reference{f.ID, "children", c})
			}
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		a, b := refs[i], refs[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.Field != b.Field {
			return a.Field < b.Field
		}
		return a.To < b.To
	})
	return refs
}
