package gpx

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// Resolve expands a possibly-wildcarded input pattern to a single concrete
// path. When several files match, the first in lexical order wins. A plain
// path resolves to itself only if the file exists.
func Resolve(pattern string) (string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid input pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoInput, pattern)
	}
	return matches[0], nil
}

// Load resolves pattern and decodes the matched file into a Document.
// Resolution failures carry the ErrNoInput kind, malformed XML the ErrParse
// kind.
func Load(pattern string) (*Document, error) {
	path, err := Resolve(pattern)
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile decodes a single GPX file without pattern resolution.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoInput, path)
	}
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return &doc, nil
}
