package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/records"
)

// WriteJSON encodes the store as an indented JSON record set.
// The output can be re-imported with [ReadJSON].
func WriteJSON(s *records.MemoryStore, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDataset(s)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes the store as a YAML record set.
func WriteYAML(s *records.MemoryStore, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDataset(s)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// Export writes the store to path, choosing the encoder by extension like
// [Import].
func Export(s *records.MemoryStore, path string) error {
	write := WriteJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
	case ".yaml", ".yml":
		write = WriteYAML
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"unsupported record file %s (must be .json, .yaml or .yml)", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(s, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
