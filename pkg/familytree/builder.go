package familytree

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/records"
)

// DefaultMaxDepth is the generation limit used when none is configured.
const DefaultMaxDepth = 512

// Builder turns records into descendant trees.
type Builder struct {
	store    records.Store
	logger   *log.Logger
	maxDepth int
	title    string
}

// Option configures a [Builder].
type Option func(*Builder)

// WithLogger sets the logger that receives build warnings.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMaxDepth limits the number of generations below the root. Values
// below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.maxDepth = n
		}
	}
}

// WithTitle sets the title of built trees. Without it the title is
// "Descendants of <root name>".
func WithTitle(title string) Option {
	return func(b *Builder) { b.title = title }
}

// NewBuilder returns a Builder reading from store.
func NewBuilder(store records.Store, opts ...Option) *Builder {
	b := &Builder{
		store:    store,
		logger:   log.Default(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns the descendant tree of rootID. It fails only when rootID
// is not in the store (code INDIVIDUAL_NOT_FOUND).
func (b *Builder) Build(rootID string) (*Tree, error) {
	root, ok := b.store.Individual(rootID)
	if !ok {
		return nil, errors.New(errors.ErrCodeIndividualNotFound,
			"failed to build family tree: individual %s does not exist", rootID)
	}

	title := b.title
	if title == "" {
		title = fmt.Sprintf("Descendants of %s", root.DisplayName())
	}
	t := &Tree{
		ID:     uuid.NewString(),
		Title:  title,
		RootID: rootID,
	}

	bs := &buildState{Builder: b, tree: t, path: make(map[string]bool)}
	t.roots = bs.expandIndividual(root, 0)

	b.logger.Debug("built family tree",
		"root", rootID,
		"nodes", t.NodeCount(),
		"generations", t.Depth(),
		"warnings", len(t.warnings))
	return t, nil
}

// buildState is the per-call state of Build.
type buildState struct {
	*Builder
	tree *Tree
	path map[string]bool // individuals on the current ancestry path
}

func (s *buildState) warn(w Warning) {
	s.tree.warnings = append(s.tree.warnings, w)
	s.logger.Warn(w.String())
}

// expandIndividual returns one node per union of ind that can be
// expanded, or a single lone node when there is none.
func (s *buildState) expandIndividual(ind *records.Individual, depth int) []*Node {
	s.path[ind.ID] = true
	defer delete(s.path, ind.ID)

	var nodes []*Node
	for _, famID := range ind.SpouseFamilies {
		if famID == "" {
			continue
		}
		fam, ok := s.store.Family(famID)
		if !ok {
			s.warn(Warning{Kind: WarnMissingFamily, Subject: ind.ID, Ref: famID})
			continue
		}
		if n := s.expandUnion(ind, fam, depth); n != nil {
			nodes = append(nodes, n)
		}
	}
	if len(nodes) == 0 {
		nodes = append(nodes, loneNode(ind))
	}
	return nodes
}

// expandUnion creates the node for ind within fam and expands the
// children. It returns nil when a parent is missing or ind is not one of
// the parents.
func (s *buildState) expandUnion(ind *records.Individual, fam *records.Family, depth int) *Node {
	husband, ok := s.member(fam, fam.Husband)
	if !ok {
		return nil
	}
	wife, ok := s.member(fam, fam.Wife)
	if !ok {
		return nil
	}

	n := &Node{family: fam}
	switch ind.ID {
	case fam.Husband:
		n.primary, n.partner, n.slot = husband, wife, SlotHusband
	case fam.Wife:
		n.primary, n.partner, n.slot = wife, husband, SlotWife
	default:
		s.warn(Warning{Kind: WarnNotMember, Subject: fam.ID, Ref: ind.ID})
		return nil
	}

	if len(fam.Children) > 0 && depth+1 >= s.maxDepth {
		s.warn(Warning{Kind: WarnMaxDepth, Subject: fam.ID, Ref: ind.ID})
		return n
	}
	for _, childID := range fam.Children {
		child, ok := s.store.Individual(childID)
		if !ok {
			s.warn(Warning{Kind: WarnMissingChild, Subject: fam.ID, Ref: childID})
			continue
		}
		if s.path[childID] {
			s.warn(Warning{Kind: WarnCycle, Subject: fam.ID, Ref: childID})
			continue
		}
		n.children = append(n.children, s.expandIndividual(child, depth+1)...)
	}
	return n
}

// member resolves a parent slot. An empty id is an absent parent and
// resolves to nil.
func (s *buildState) member(fam *records.Family, id string) (*records.Individual, bool) {
	if id == "" {
		return nil, true
	}
	ind, ok := s.store.Individual(id)
	if !ok {
		s.warn(Warning{Kind: WarnMissingSpouse, Subject: fam.ID, Ref: id})
		return nil, false
	}
	return ind, true
}

func loneNode(ind *records.Individual) *Node {
	slot := SlotHusband
	if ind.Sex == records.SexFemale {
		slot = SlotWife
	}
	return &Node{primary: ind, slot: slot}
}
