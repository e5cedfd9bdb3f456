package cache

// ScopedKeyer wraps a Keyer with a prefix, so that several servers or
// record databases can share one cache without colliding:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "genealogy:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DatasetKey generates a prefixed dataset key.
func (k *ScopedKeyer) DatasetKey(source string) string {
	return k.prefix + k.inner.DatasetKey(source)
}

// ReportKey generates a prefixed report key.
func (k *ScopedKeyer) ReportKey(datasetHash string, opts ReportKeyOpts) string {
	return k.prefix + k.inner.ReportKey(datasetHash, opts)
}
