// Package config loads the optional familytree TOML configuration.
//
// A configuration file only needs the keys it changes; everything else
// keeps the defaults of [Default]:
//
//	[report]
//	format = "html"
//	sort = true
//	order = "youngest"
//
//	[print]
//	show_address = false
//	show_divorced_without_children = false
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "1h"
//
// Unknown keys are rejected so that typos do not silently fall back to a
// default.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/familytree"
	"github.com/matzehuels/familytree/pkg/familytree/ordering"
	"github.com/matzehuels/familytree/pkg/render"
)

const appName = "familytree"

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config is the complete configuration.
type Config struct {
	Report Report `toml:"report"`
	Print  Print  `toml:"print"`
	Build  Build  `toml:"build"`
	Cache  Cache  `toml:"cache"`
	Mongo  Mongo  `toml:"mongo"`
	Server Server `toml:"server"`
}

// Report selects what is rendered.
type Report struct {
	Title  string `toml:"title"`
	Format string `toml:"format"`
	Sort   bool   `toml:"sort"`
	Order  string `toml:"order"`
}

// Print holds the show/hide switches of the reports.
type Print struct {
	ShowID                      bool `toml:"show_id"`
	ShowGender                  bool `toml:"show_gender"`
	ShowRelationship            bool `toml:"show_relationship"`
	ShowEmail                   bool `toml:"show_email"`
	ShowAddress                 bool `toml:"show_address"`
	ShowAgeForDead              bool `toml:"show_age_for_dead"`
	ShowBirthDate               bool `toml:"show_birth_date"`
	ShowDeathDate               bool `toml:"show_death_date"`
	ShowFirstName               bool `toml:"show_first_name"`
	ShowMaidenName              bool `toml:"show_maiden_name"`
	ShowMarriedName             bool `toml:"show_married_name"`
	ShowDivorcedWithChildren    bool `toml:"show_divorced_with_children"`
	ShowDivorcedWithoutChildren bool `toml:"show_divorced_without_children"`
	// CSVLevels adds the L_n generation columns to CSV reports.
	CSVLevels bool `toml:"csv_levels"`
	// Detailed adds email and address to diagram boxes.
	Detailed bool `toml:"detailed"`
}

// Build limits tree construction.
type Build struct {
	MaxDepth int `toml:"max_depth"`
}

// Cache selects the cache backend.
type Cache struct {
	Backend   string `toml:"backend"`
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
	RedisDB   int    `toml:"redis_db"`
	Namespace string `toml:"namespace"`
	TTL       string `toml:"ttl"`
}

// Mongo is the optional record database.
type Mongo struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Server configures "familytree serve".
type Server struct {
	Addr string `toml:"addr"`
	// Source is the record file or mongodb:// URI served by the API.
	Source string `toml:"source"`
}

// Default shows every field and caches reports on disk.
func Default() Config {
	opts := render.DefaultOptions()
	return Config{
		Report: Report{Format: render.FormatText, Order: ordering.OldestFirst.String()},
		Print: Print{
			ShowID:                      opts.ShowID,
			ShowGender:                  opts.ShowGender,
			ShowRelationship:            opts.ShowRelationship,
			ShowEmail:                   opts.ShowEmail,
			ShowAddress:                 opts.ShowAddress,
			ShowAgeForDead:              opts.ShowAgeForDead,
			ShowBirthDate:               opts.ShowBirthDate,
			ShowDeathDate:               opts.ShowDeathDate,
			ShowFirstName:               opts.ShowFirstName,
			ShowMaidenName:              opts.ShowMaidenName,
			ShowMarriedName:             opts.ShowMarriedName,
			ShowDivorcedWithChildren:    opts.Policy.ShowDivorcedWithChildren,
			ShowDivorcedWithoutChildren: opts.Policy.ShowDivorcedWithoutChildren,
		},
		Build:  Build{MaxDepth: familytree.DefaultMaxDepth},
		Cache:  Cache{Backend: CacheFile, TTL: "24h"},
		Server: Server{Addr: ":8080"},
	}
}

// Load reads path over the defaults. A missing file at the default path
// is not an error; a missing file given explicitly is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %s", path, undecoded[0])
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerations and limits.
func (c Config) Validate() error {
	if err := errors.ValidateFormat(c.Report.Format, render.Formats); err != nil {
		return err
	}
	if _, err := ordering.ParseDirection(c.Report.Order); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case CacheNone, CacheFile:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend %q: want none, file or redis", c.Cache.Backend)
	}
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	if c.Build.MaxDepth < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "build.max_depth must be positive")
	}
	return nil
}

// CacheTTL parses Cache.TTL; empty means no expiry.
func (c Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "cache.ttl %q: want a duration like 30m", c.Cache.TTL)
	}
	return d, nil
}

// RenderOptions converts the [print] section.
func (c Config) RenderOptions() render.Options {
	p := c.Print
	return render.Options{
		ShowID:           p.ShowID,
		ShowGender:       p.ShowGender,
		ShowRelationship: p.ShowRelationship,
		ShowEmail:        p.ShowEmail,
		ShowAddress:      p.ShowAddress,
		ShowAgeForDead:   p.ShowAgeForDead,
		ShowBirthDate:    p.ShowBirthDate,
		ShowDeathDate:    p.ShowDeathDate,
		ShowFirstName:    p.ShowFirstName,
		ShowMaidenName:   p.ShowMaidenName,
		ShowMarriedName:  p.ShowMarriedName,
		Policy: familytree.PrintPolicy{
			ShowDivorcedWithChildren:    p.ShowDivorcedWithChildren,
			ShowDivorcedWithoutChildren: p.ShowDivorcedWithoutChildren,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/familytree/config.toml, falling
// back to ~/.config.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns Cache.Dir or $XDG_CACHE_HOME/familytree, falling back
// to ~/.cache/familytree.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
