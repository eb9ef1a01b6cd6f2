package repositories

import "github.com/rios0rios0/extcheck/internal/domain/entities"

// ManifestSource supplies raw extension description text. The engine only
// consumes this narrow interface; reading from a filesystem is an
// infrastructure concern.
type ManifestSource interface {
	// List returns the description file paths found in a directory,
	// sorted by name.
	List(dir string) ([]string, error)

	// Read returns the candidate name (derived from the file stem) and
	// the raw description text.
	Read(path string) (name string, raw []byte, err error)
}

// LayoutRepository polices the index repository layout.
type LayoutRepository interface {
	// Scan returns the unexpected top-level files and directories under
	// the index root, judged against the policy allow-lists.
	Scan(root string, policy *entities.Policy) ([]string, error)
}
