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

// ReadJSON decodes a JSON record set from r into a new store.
//
// ReadJSON returns an error if the JSON is malformed, a record has an
// invalid or duplicate id, or a family has an unknown status. Record
// errors carry the codes of [records.MemoryStore.AddIndividual] and
// [records.MemoryStore.AddFamily]. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*records.MemoryStore, error) {
	var ds Dataset
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ds); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
	}
	return ds.Store()
}

// ReadYAML decodes a YAML record set from r, see [ReadJSON].
func ReadYAML(r io.Reader) (*records.MemoryStore, error) {
	var ds Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml")
	}
	return ds.Store()
}

// Import reads the record set at path, choosing the decoder by file
// extension: .json, or .yaml / .yml.
func Import(path string) (*records.MemoryStore, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ImportJSON(path)
	case ".yaml", ".yml":
		return ImportYAML(path)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat,
		"unsupported record file %s (must be .json, .yaml or .yml)", path)
}

// ImportJSON reads a JSON file at path, see [ReadJSON].
func ImportJSON(path string) (*records.MemoryStore, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ImportYAML reads a YAML file at path, see [ReadYAML].
func ImportYAML(path string) (*records.MemoryStore, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
