//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
)

// SpyRepoContentRepository implements repositories.RepoContentRepository as
// a configurable spy. Configure Contents with scm_url -> root entries (or
// FetchErr for a typed failure), then inspect the call tracking fields.
type SpyRepoContentRepository struct {
	Contents map[string][]string
	FetchErr error

	mu           sync.Mutex
	FetchedURLs  []string
	FetchedRevs  []string
	ClosedCount  int
}

func (s *SpyRepoContentRepository) Fetch(
	_ context.Context,
	scmURL, revision string,
) (*entities.RepoContent, error) {
	s.mu.Lock()
	s.FetchedURLs = append(s.FetchedURLs, scmURL)
	s.FetchedRevs = append(s.FetchedRevs, revision)
	s.mu.Unlock()

	if s.FetchErr != nil {
		return nil, s.FetchErr
	}

	entries := s.Contents[scmURL]
	return entities.NewRepoContent("", entries, func() error {
		s.mu.Lock()
		s.ClosedCount++
		s.mu.Unlock()
		return nil
	}), nil
}

// Closed returns how many fetched working trees were released.
func (s *SpyRepoContentRepository) Closed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ClosedCount
}
