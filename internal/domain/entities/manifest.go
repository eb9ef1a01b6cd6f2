package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Manifest is the parsed description of one extension. The decoded metadata
// object is kept as-is so that rules can distinguish a missing key from a
// key that is present but null. Unknown fields are ignored.
type Manifest struct {
	Name     string
	metadata map[string]any
}

// ParseFailure describes a description file that could not be decoded.
// It replaces the Manifest for that candidate; no rules run against it.
type ParseFailure struct {
	Name    string
	Details string
}

func (f *ParseFailure) Error() string {
	return f.Details
}

// ParseManifest decodes a raw extension description. The name is derived by
// the caller from the file path, never from the content. Parsing is total:
// it returns either a Manifest or a ParseFailure, it never panics.
func ParseManifest(name string, raw []byte) (*Manifest, *ParseFailure) {
	decoder := json.NewDecoder(bytes.NewReader(raw))

	var metadata map[string]any
	if err := decoder.Decode(&metadata); err != nil {
		return nil, &ParseFailure{
			Name:    name,
			Details: fmt.Sprintf("failed to parse '%s': %v", name, err),
		}
	}

	// A bare "null" document decodes into a nil map without an error.
	if metadata == nil {
		return nil, &ParseFailure{
			Name:    name,
			Details: fmt.Sprintf("failed to parse '%s': document is not a JSON object", name),
		}
	}

	var trailing any
	if err := decoder.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, &ParseFailure{
			Name:    name,
			Details: fmt.Sprintf("failed to parse '%s': unexpected data after the document", name),
		}
	}

	return &Manifest{Name: name, metadata: metadata}, nil
}

// Has reports whether the metadata key is present, even with a null value.
func (m *Manifest) Has(key string) bool {
	_, ok := m.metadata[key]
	return ok
}

// IsSet reports whether the metadata key is present and non-null.
func (m *Manifest) IsSet(key string) bool {
	value, ok := m.metadata[key]
	return ok && value != nil
}

// String returns the metadata value as a string, or "" when the key is
// absent or not a string.
func (m *Manifest) String(key string) string {
	value, ok := m.metadata[key].(string)
	if !ok {
		return ""
	}
	return value
}

// Category returns the declared classification string.
func (m *Manifest) Category() string { return m.String("category") }

// SCMURL returns the declared source-control location.
func (m *Manifest) SCMURL() string { return m.String("scm_url") }

// SCMRevision returns the declared revision pin, or "" for the default branch.
func (m *Manifest) SCMRevision() string { return m.String("scm_revision") }

// Depends returns the declared dependency names in declaration order.
// Entries that are not strings are skipped.
func (m *Manifest) Depends() []string {
	raw, ok := m.metadata["depends"].([]any)
	if !ok {
		return nil
	}

	depends := make([]string, 0, len(raw))
	for _, entry := range raw {
		if name, isString := entry.(string); isString {
			depends = append(depends, name)
		}
	}
	return depends
}
