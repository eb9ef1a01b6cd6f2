//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"encoding/json"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
)

// ManifestBuilder helps create test manifests with a fluent interface.
// It assembles the metadata object and runs it through the real parser so
// the built manifest behaves exactly like a parsed description file.
type ManifestBuilder struct {
	*testkit.BaseBuilder
	name     string
	metadata map[string]any
}

// NewManifestBuilder creates a new manifest builder with sensible defaults.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "SlicerTestExtension",
		metadata: map[string]any{
			"category": "Segmentation",
			"scm_url":  "https://github.com/org/SlicerTestExtension",
		},
	}
}

// WithName sets the extension name.
func (b *ManifestBuilder) WithName(name string) *ManifestBuilder {
	b.name = name
	return b
}

// WithCategory sets the category metadata value.
func (b *ManifestBuilder) WithCategory(category string) *ManifestBuilder {
	b.metadata["category"] = category
	return b
}

// WithSCMURL sets the scm_url metadata value.
func (b *ManifestBuilder) WithSCMURL(scmURL string) *ManifestBuilder {
	b.metadata["scm_url"] = scmURL
	return b
}

// WithSCMRevision sets the scm_revision metadata value.
func (b *ManifestBuilder) WithSCMRevision(revision string) *ManifestBuilder {
	b.metadata["scm_revision"] = revision
	return b
}

// WithDepends sets the depends metadata value.
func (b *ManifestBuilder) WithDepends(depends ...string) *ManifestBuilder {
	entries := make([]any, 0, len(depends))
	for _, dependency := range depends {
		entries = append(entries, dependency)
	}
	b.metadata["depends"] = entries
	return b
}

// WithNullKey sets a metadata key to an explicit null value.
func (b *ManifestBuilder) WithNullKey(key string) *ManifestBuilder {
	b.metadata[key] = nil
	return b
}

// WithoutKey removes a metadata key entirely.
func (b *ManifestBuilder) WithoutKey(key string) *ManifestBuilder {
	delete(b.metadata, key)
	return b
}

// Build creates the manifest (satisfies testkit.Builder interface).
func (b *ManifestBuilder) Build() interface{} {
	return b.BuildManifest()
}

// BuildManifest creates the manifest with a concrete return type.
func (b *ManifestBuilder) BuildManifest() *entities.Manifest {
	raw, err := json.Marshal(b.metadata)
	if err != nil {
		panic(err)
	}
	manifest, parseFailure := entities.ParseManifest(b.name, raw)
	if parseFailure != nil {
		panic(parseFailure.Details)
	}
	return manifest
}

// BuildJSON returns the raw description text for the builder state.
func (b *ManifestBuilder) BuildJSON() []byte {
	raw, err := json.Marshal(b.metadata)
	if err != nil {
		panic(err)
	}
	return raw
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "SlicerTestExtension"
	b.metadata = map[string]any{
		"category": "Segmentation",
		"scm_url":  "https://github.com/org/SlicerTestExtension",
	}
	return b
}

// Clone creates a deep copy of the ManifestBuilder.
func (b *ManifestBuilder) Clone() testkit.Builder {
	metadata := make(map[string]any, len(b.metadata))
	for key, value := range b.metadata {
		metadata[key] = value
	}
	return &ManifestBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		metadata:    metadata,
	}
}
