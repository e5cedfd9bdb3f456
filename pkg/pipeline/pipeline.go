// Package pipeline runs the load → build → render pipeline for family
// tree reports.
//
// The same Runner serves the CLI and the HTTP API, so both produce byte
// identical reports for the same options.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a record set from a file or MongoDB
//  2. Build: construct the descendant tree of the root and optionally
//     sort siblings
//  3. Render: write the tree in one of the report formats
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Caching
//
// Datasets loaded from MongoDB are cached under their source name.
// Rendered reports are cached under a hash of the dataset content and every
// option that affects the output, so a changed record or print switch
// never serves a stale report.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source: "family.json",
//	    RootID: "I1",
//	    Format: render.FormatText,
//	})
//	os.Stdout.Write(result.Report)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/familytree/pkg/cache"
	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/familytree/ordering"
	"github.com/matzehuels/familytree/pkg/records"
	"github.com/matzehuels/familytree/pkg/render"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one report.
type Options struct {
	// Load options
	Source   string `json:"source,omitempty"`   // file path or mongodb:// URI
	Database string `json:"database,omitempty"` // MongoDB database
	Refresh  bool   `json:"refresh,omitempty"`  // bypass the dataset and report caches

	// Build options
	RootID   string `json:"root"`
	Title    string `json:"title,omitempty"`
	MaxDepth int    `json:"max_depth,omitempty"`
	Sort     bool   `json:"sort,omitempty"`
	Order    string `json:"order,omitempty"`

	// Render options
	Format    string         `json:"format,omitempty"`
	Print     render.Options `json:"print"`
	CSVLevels bool           `json:"csv_levels,omitempty"`
	Detailed  bool           `json:"detailed,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Store is the loaded record set.
	Store *records.MemoryStore

	// DatasetHash is the content hash of the record set.
	DatasetHash string

	// Tree is the built tree; nil when the report came from the cache.
	Tree *familytree.Tree

	// TreeID identifies the build that produced Report.
	TreeID string

	// Warnings lists the references skipped while building.
	Warnings []string

	// Report is the rendered output.
	Report []byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Individuals int
	Families    int
	Nodes       int
	LoadTime    time.Duration
	BuildTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	DatasetHit bool
	ReportHit  bool
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in format, order, depth and print options.
func (o *Options) SetDefaults() {
	if o.Format == "" {
		o.Format = render.FormatText
	}
	if o.Order == "" {
		o.Order = ordering.OldestFirst.String()
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = familytree.DefaultMaxDepth
	}
	if o.Print == (render.Options{}) {
		o.Print = render.DefaultOptions()
	}
}

// ValidateForBuild checks the build options.
func (o *Options) ValidateForBuild() error {
	if o.RootID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "root id is required")
	}
	if o.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max depth must not be negative")
	}
	_, err := ordering.ParseDirection(o.Order)
	return err
}

// ValidateForRender checks the output format.
func (o *Options) ValidateForRender() error {
	return errors.ValidateFormat(o.Format, render.Formats)
}

// ValidateAndSetDefaults applies defaults and validates everything except
// the source.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	if err := o.ValidateForBuild(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// ReportKeyOpts returns cache key options for the rendered report.
func (o *Options) ReportKeyOpts() cache.ReportKeyOpts {
	return cache.ReportKeyOpts{
		RootID:   o.RootID,
		Format:   o.Format,
		Title:    o.Title,
		Sort:     o.Sort,
		Order:    o.Order,
		MaxDepth: o.MaxDepth,
		Print: struct {
			render.Options
			CSVLevels bool
			Detailed  bool
		}{o.Print, o.CSVLevels, o.Detailed},
	}
}
