package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
	"github.com/rios0rios0/extcheck/internal/domain/repositories"
)

// LayoutRepository scans the index repository root for unexpected entries.
type LayoutRepository struct{}

// NewLayoutRepository creates the filesystem-backed layout scanner.
func NewLayoutRepository() repositories.LayoutRepository {
	return &LayoutRepository{}
}

// Scan returns the unexpected top-level files and directories under root,
// judged against the policy allow-lists.
func (r *LayoutRepository) Scan(root string, policy *entities.Policy) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan index root %q: %w", root, err)
	}

	allowedDirectories := toSet(policy.AllowedDirectories)
	allowedFiles := toSet(policy.AllowedFiles)
	allowedExtensions := toSet(policy.AllowedExtensions)

	var unexpected []string
	for _, entry := range entries {
		if entry.IsDir() {
			if _, ok := allowedDirectories[entry.Name()]; !ok {
				unexpected = append(unexpected, entry.Name())
			}
			continue
		}
		if _, ok := allowedFiles[entry.Name()]; ok {
			continue
		}
		if _, ok := allowedExtensions[filepath.Ext(entry.Name())]; ok {
			continue
		}
		unexpected = append(unexpected, entry.Name())
	}
	return unexpected, nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}
