package entities

import (
	"os"
	"path/filepath"
)

// RepoContent is a fetched repository working tree. It owns a temporary
// directory that must be released with Close once the rules are done with
// it.
type RepoContent struct {
	Dir     string
	entries map[string]struct{}
	cleanup func() error
}

// NewRepoContent wraps a working tree directory. The entries are the names
// found at the repository root; cleanup releases the directory and may be
// nil.
func NewRepoContent(dir string, entries []string, cleanup func() error) *RepoContent {
	index := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		index[entry] = struct{}{}
	}
	return &RepoContent{Dir: dir, entries: index, cleanup: cleanup}
}

// HasFile reports whether a file with the given name exists at the
// repository root.
func (c *RepoContent) HasFile(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// ReadFile reads a file at the repository root.
func (c *RepoContent) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(c.Dir, name))
}

// Close releases the working tree directory.
func (c *RepoContent) Close() error {
	if c.cleanup == nil {
		return nil
	}
	return c.cleanup()
}
