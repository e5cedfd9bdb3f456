package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/familytree/pkg/cache"
	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/familytree/ordering"
	fio "github.com/matzehuels/familytree/pkg/io"
	"github.com/matzehuels/familytree/pkg/observability"
	"github.com/matzehuels/familytree/pkg/records"
	"github.com/matzehuels/familytree/pkg/source"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	// ReportTTL is the lifetime of cached reports; zero never expires.
	ReportTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:     c,
		Keyer:     keyer,
		Logger:    logger,
		ReportTTL: cache.ReportTTL,
	}
}

// Execute runs the complete load → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	loadStart := time.Now()
	store, hash, hit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	loadTime := time.Since(loadStart)

	result, err := r.Report(ctx, store, hash, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime
	result.CacheInfo.DatasetHit = hit
	return result, nil
}

// Report builds and renders one report from an already loaded store. hash
// is the store's [DatasetHash]; it keys the report cache.
func (r *Runner) Report(ctx context.Context, store *records.MemoryStore, hash string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{Store: store, DatasetHash: hash}
	result.Stats.Individuals, result.Stats.Families = store.Len()

	key := r.Keyer.ReportKey(hash, opts.ReportKeyOpts())
	if !opts.Refresh {
		if entry, ok := r.cachedReport(ctx, key); ok {
			result.TreeID = entry.TreeID
			result.Warnings = entry.Warnings
			result.Report = entry.Data
			result.Stats.Nodes = entry.Nodes
			result.CacheInfo.ReportHit = true
			opts.Logger.Debug("report from cache", "root", opts.RootID, "format", opts.Format)
			return result, nil
		}
	}

	buildStart := time.Now()
	tree, err := r.Build(ctx, store, opts)
	if err != nil {
		return nil, err
	}
	result.Tree = tree
	result.TreeID = tree.ID
	result.Stats.Nodes = tree.NodeCount()
	result.Stats.BuildTime = time.Since(buildStart)
	for _, w := range tree.Warnings() {
		result.Warnings = append(result.Warnings, w.String())
	}

	renderStart := time.Now()
	data, err := r.Render(ctx, tree, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Report = data
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered report",
		"root", opts.RootID,
		"format", opts.Format,
		"nodes", result.Stats.Nodes,
		"warnings", len(result.Warnings),
		"duration", result.Stats.BuildTime+result.Stats.RenderTime)

	r.storeReport(ctx, key, reportEntry{
		TreeID:   result.TreeID,
		Nodes:    result.Stats.Nodes,
		Warnings: result.Warnings,
		Data:     data,
	})
	return result, nil
}

// =============================================================================
// Stages
// =============================================================================

// LoadWithCacheInfo loads opts.Source and reports whether the dataset came
// from the cache. Only MongoDB sources are cached; files are always read.
// Transient database errors are retried with backoff.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*records.MemoryStore, string, bool, error) {
	if opts.Source == "" {
		return nil, "", false, errors.New(errors.ErrCodeInvalidInput, "record source is required")
	}
	r.applyLogger(&opts)
	loader := source.Open(opts.Source, opts.Database)
	_, isFile := loader.(source.File)
	key := r.Keyer.DatasetKey(loader.Name())

	if !isFile && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if store, err := fio.ReadJSON(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "dataset")
				return store, cache.Hash(data), true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "dataset")
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, loader.Name())
	start := time.Now()
	var store *records.MemoryStore
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		store, err = loader.Load(ctx)
		if cache.IsRetryable(err) {
			opts.Logger.Warn("load failed, retrying", "source", loader.Name(), "error", err)
		}
		return err
	})
	individuals := 0
	if store != nil {
		individuals, _ = store.Len()
	}
	hooks.OnLoadComplete(ctx, loader.Name(), individuals, time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}

	var buf bytes.Buffer
	if err := fio.WriteJSON(store, &buf); err != nil {
		return nil, "", false, fmt.Errorf("serialize dataset: %w", err)
	}
	if !isFile {
		if err := r.Cache.Set(ctx, key, buf.Bytes(), cache.DatasetTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "dataset", buf.Len())
		}
	}

	n, f := store.Len()
	opts.Logger.Info("loaded records", "source", loader.Name(), "individuals", n, "families", f, "duration", time.Since(start))
	return store, cache.Hash(buf.Bytes()), false, nil
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards
// the hash and cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*records.MemoryStore, error) {
	store, _, _, err := r.LoadWithCacheInfo(ctx, opts)
	return store, err
}

// Build constructs the tree of opts.RootID and sorts it when opts.Sort is
// set.
func (r *Runner) Build(ctx context.Context, store records.Store, opts Options) (*familytree.Tree, error) {
	if err := opts.ValidateForBuild(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, opts.RootID)
	start := time.Now()

	b := familytree.NewBuilder(store,
		familytree.WithLogger(opts.Logger),
		familytree.WithMaxDepth(opts.MaxDepth),
		familytree.WithTitle(opts.Title))
	tree, err := b.Build(opts.RootID)
	if err == nil && opts.Sort {
		dir, _ := ordering.ParseDirection(opts.Order)
		ordering.Sort(tree, ordering.Comparator{Direction: dir})
	}

	nodes, warnings := 0, 0
	if tree != nil {
		nodes, warnings = tree.NodeCount(), len(tree.Warnings())
	}
	hooks.OnBuildComplete(ctx, opts.RootID, nodes, warnings, time.Since(start), err)
	return tree, err
}

// Render writes tree in opts.Format.
func (r *Runner) Render(ctx context.Context, tree *familytree.Tree, opts Options) ([]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()
	data, err := Render(tree, opts)
	hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err)
	return data, err
}

// DatasetHash returns the content hash of a store, as used in report keys.
func DatasetHash(store *records.MemoryStore) (string, error) {
	var buf bytes.Buffer
	if err := fio.WriteJSON(store, &buf); err != nil {
		return "", err
	}
	return cache.Hash(buf.Bytes()), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// =============================================================================
// Report Cache
// =============================================================================

type reportEntry struct {
	TreeID   string   `json:"tree_id"`
	Nodes    int      `json:"nodes"`
	Warnings []string `json:"warnings,omitempty"`
	Data     []byte   `json:"data"`
}

func (r *Runner) cachedReport(ctx context.Context, key string) (reportEntry, bool) {
	var entry reportEntry
	data, hit, err := r.Cache.Get(ctx, key)
	if err == nil && hit && json.Unmarshal(data, &entry) == nil {
		observability.Cache().OnCacheHit(ctx, "report")
		return entry, true
	}
	observability.Cache().OnCacheMiss(ctx, "report")
	return entry, false
}

func (r *Runner) storeReport(ctx context.Context, key string, entry reportEntry) {
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.ReportTTL); err != nil {
		r.Logger.Debug("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "report", len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
