package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rios0rios0/extcheck/internal/domain/repositories"
)

const descriptionExtension = ".json"

// ManifestSource reads extension description files from the filesystem.
type ManifestSource struct{}

// NewManifestSource creates the filesystem-backed manifest source.
func NewManifestSource() repositories.ManifestSource {
	return &ManifestSource{}
}

// List returns the description file paths in a directory, sorted by name.
// Non-regular entries and files without the .json extension are skipped.
func (s *ManifestSource) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list description files in %q: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), descriptionExtension) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Read returns the candidate name derived from the file stem and the raw
// description text.
func (s *ManifestSource) Read(path string) (string, []byte, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	raw, err := os.ReadFile(path)
	if err != nil {
		return name, nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return name, raw, nil
}
