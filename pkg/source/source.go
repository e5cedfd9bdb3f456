// Package source loads record sets into a [records.MemoryStore].
//
// A [Loader] hides where records come from. [File] reads the JSON and
// YAML datasets of the io package; the mongo subpackage reads from a
// MongoDB database. Loaders are resolved from a location string with
// [Open]:
//
//	l := source.Open("mongodb://localhost:27017", "genealogy")
//	store, err := l.Load(ctx)
//
// Any location that is not a mongodb:// or mongodb+srv:// URI is treated
// as a file path.
package source

import (
	"context"
	"strings"

	fio "github.com/matzehuels/familytree/pkg/io"
	"github.com/matzehuels/familytree/pkg/records"
	"github.com/matzehuels/familytree/pkg/source/mongo"
)

// Loader loads a complete record set.
type Loader interface {
	Load(ctx context.Context) (*records.MemoryStore, error)
	// Name identifies the source in logs and cache keys.
	Name() string
}

// File loads a JSON or YAML dataset from disk.
type File struct {
	Path string
}

// Load reads the file. ctx is only checked before reading.
func (f File) Load(ctx context.Context) (*records.MemoryStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fio.Import(f.Path)
}

func (f File) Name() string { return "file:" + f.Path }

// IsMongoURI reports whether location names a MongoDB deployment.
func IsMongoURI(location string) bool {
	return strings.HasPrefix(location, "mongodb://") || strings.HasPrefix(location, "mongodb+srv://")
}

// Open returns the loader for location. database is only used for
// MongoDB locations; empty means [mongo.DefaultDatabase].
func Open(location, database string) Loader {
	if IsMongoURI(location) {
		return mongo.New(mongo.Config{URI: location, Database: database})
	}
	return File{Path: location}
}
