//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// SpyManifestSource implements repositories.ManifestSource over an
// in-memory file map. Configure Files with path -> raw content; an
// optional per-read latency simulates slow storage for ordering tests.
type SpyManifestSource struct {
	Files       map[string][]byte
	ListErr     error
	ReadErr     error
	ReadLatency func(path string) time.Duration

	mu        sync.Mutex
	ReadPaths []string
}

func (s *SpyManifestSource) List(dir string) ([]string, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}

	var paths []string
	for path := range s.Files {
		if filepath.Dir(path) == filepath.Clean(dir) && strings.HasSuffix(path, ".json") {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *SpyManifestSource) Read(path string) (string, []byte, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if s.ReadLatency != nil {
		time.Sleep(s.ReadLatency(path))
	}

	s.mu.Lock()
	s.ReadPaths = append(s.ReadPaths, path)
	s.mu.Unlock()

	if s.ReadErr != nil {
		return name, nil, s.ReadErr
	}

	raw, ok := s.Files[path]
	if !ok {
		return name, nil, fmt.Errorf("file not found: %s", path)
	}
	return name, raw, nil
}
