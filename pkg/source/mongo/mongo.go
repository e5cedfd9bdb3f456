// Package mongo loads record sets from a MongoDB database.
//
// Individuals and families live in two collections, "individuals" and
// "families", one document per record. Documents use the field names of
// the JSON dataset format, with the record id stored as _id:
//
//	{"_id": "I1", "sex": "M", "names": [{"given": "Hans"}], "spouse_families": ["F1"]}
//	{"_id": "F1", "husband": "I1", "wife": "I2", "children": ["I3"], "status": "married"}
//
// Documents are read in _id order so repeated loads build identical
// stores.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/familytree/pkg/cache"
	"github.com/matzehuels/familytree/pkg/errors"
	fio "github.com/matzehuels/familytree/pkg/io"
	"github.com/matzehuels/familytree/pkg/records"
)

const (
	DefaultDatabase = "genealogy"
	DefaultTimeout  = 30 * time.Second

	IndividualsCollection = "individuals"
	FamiliesCollection    = "families"
)

// Config selects the deployment and database to read from.
type Config struct {
	URI      string
	Database string
	// Timeout bounds a whole Load, including connecting.
	Timeout time.Duration
}

func (c *Config) setDefaults() {
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate reports a missing URI.
func (c Config) Validate() error {
	if c.URI == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "mongo uri is required")
	}
	return nil
}

// Source is a loader bound to one database.
type Source struct {
	cfg Config
}

// New returns a Source for cfg, filling in defaults.
func New(cfg Config) *Source {
	cfg.setDefaults()
	return &Source{cfg: cfg}
}

// Name identifies the source without credentials.
func (s *Source) Name() string { return "mongo:" + s.cfg.Database }

// Load connects, reads both collections and disconnects.
func (s *Source) Load(ctx context.Context) (*records.MemoryStore, error) {
	return Load(ctx, s.cfg)
}

// Load reads all individuals and families of cfg.Database into a new
// store. Duplicate and invalid ids fail the load like they do for files.
// Network errors and timeouts are marked with [cache.Retryable].
func Load(ctx context.Context, cfg Config) (*records.MemoryStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := driver.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, transient(fmt.Errorf("connect: %w", err))
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.Database)
	var ds fio.Dataset
	if err := readAll(ctx, db.Collection(IndividualsCollection), &ds.Individuals); err != nil {
		return nil, err
	}
	if err := readAll(ctx, db.Collection(FamiliesCollection), &ds.Families); err != nil {
		return nil, err
	}
	return ds.Store()
}

func readAll(ctx context.Context, coll *driver.Collection, out any) error {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return transient(fmt.Errorf("find %s: %w", coll.Name(), err))
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return nil
}

func transient(err error) error {
	if driver.IsNetworkError(err) || driver.IsTimeout(err) {
		return cache.Retryable(err)
	}
	return err
}

// Documents converts a store into the documents Load expects, for seeding
// a database.
func Documents(s *records.MemoryStore) (individuals, families []any) {
	ds := fio.NewDataset(s)
	for _, d := range ds.Individuals {
		individuals = append(individuals, d)
	}
	for _, d := range ds.Families {
		families = append(families, d)
	}
	return individuals, families
}

// Seed replaces both collections of cfg.Database with the records of s.
func Seed(ctx context.Context, cfg Config, s *records.MemoryStore) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.setDefaults()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := driver.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.Database)
	inds, fams := Documents(s)
	for name, docs := range map[string][]any{IndividualsCollection: inds, FamiliesCollection: fams} {
		coll := db.Collection(name)
		if err := coll.Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
		if len(docs) == 0 {
			continue
		}
		if _, err := coll.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("insert %s: %w", name, err)
		}
	}
	return nil
}
