//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/extcheck/internal/domain/entities"
)

// StubLayoutRepository implements repositories.LayoutRepository with a
// fixed answer.
type StubLayoutRepository struct {
	Unexpected []string
	ScanErr    error

	ScannedRoots []string
}

func (s *StubLayoutRepository) Scan(root string, _ *entities.Policy) ([]string, error) {
	s.ScannedRoots = append(s.ScannedRoots, root)
	if s.ScanErr != nil {
		return nil, s.ScanErr
	}
	return s.Unexpected, nil
}
