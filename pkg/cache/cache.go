// Package cache stores loaded datasets and rendered reports.
//
// # Backends
//
//   - [NullCache]: stores nothing, the default
//   - [FileCache]: one JSON file per entry, for CLI runs
//   - [RedisCache]: shared cache for API servers
//
// # Keys
//
// A [Keyer] derives entry keys. Dataset keys name a record source, report
// keys hash everything that affects the output: the dataset content, the
// root, the format and every print option. [NewScopedKeyer] prefixes keys
// so several deployments can share one Redis.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and true, or false on a miss. Expired
	// and unreadable entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// Default entry lifetimes.
const (
	DatasetTTL = 10 * time.Minute
	ReportTTL  = 24 * time.Hour
)

// ReportKeyOpts are the inputs besides the dataset that change a report.
type ReportKeyOpts struct {
	RootID   string `json:"root"`
	Format   string `json:"format"`
	Title    string `json:"title,omitempty"`
	Sort     bool   `json:"sort"`
	Order    string `json:"order,omitempty"`
	MaxDepth int    `json:"max_depth,omitempty"`
	// Print holds the renderer options; it is hashed as JSON.
	Print any `json:"print,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// DatasetKey names the cached copy of a record source.
	DatasetKey(source string) string
	// ReportKey names a rendered report of the dataset with hash datasetHash.
	ReportKey(datasetHash string, opts ReportKeyOpts) string
}

// DefaultKeyer is the unscoped [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DatasetKey returns "dataset:<source>".
func (DefaultKeyer) DatasetKey(source string) string {
	return "dataset:" + source
}

// ReportKey returns "report:<sha256>" over the dataset hash and opts.
func (DefaultKeyer) ReportKey(datasetHash string, opts ReportKeyOpts) string {
	return hashKey("report", datasetHash, opts)
}
