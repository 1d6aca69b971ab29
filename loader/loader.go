// Package loader builds machine definitions from TOML, YAML and JSON documents.
//
// Every format keeps the order in which states are written, which becomes
// the order reported by Machine.States.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/librescoot/undofsm"
)

// Format identifies a definition document format
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: extension '%s'", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// FromBytes parses a definition document
func FromBytes(data []byte, format Format) (*undofsm.Definition, error) {
	if len(data) == 0 {
		return nil, ErrNoSourceData
	}

	var (
		cfg undofsm.Config
		err error
	)
	switch format {
	case FormatTOML:
		cfg, err = parseTOML(data)
	case FormatYAML, FormatJSON:
		// JSON is a subset of YAML; the YAML node tree keeps key order.
		cfg, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return cfg.Definition(), nil
}

// FromReader reads a whole definition document from r
func FromReader(r io.Reader, format Format) (*undofsm.Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	return FromBytes(data, format)
}

// FromFile loads a definition from disk, choosing the format by extension
func FromFile(path string) (*undofsm.Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file '%s': %w", path, err)
	}

	def, err := FromBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}
