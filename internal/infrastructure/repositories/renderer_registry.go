package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/extcheck/internal/domain/repositories"
)

// RendererRegistry manages all registered report renderer implementations.
type RendererRegistry struct {
	renderers map[string]domainRepos.ReportRenderer
}

// NewRendererRegistry creates an empty renderer registry.
func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{
		renderers: make(map[string]domainRepos.ReportRenderer),
	}
}

// Register adds a renderer under its name.
func (r *RendererRegistry) Register(renderer domainRepos.ReportRenderer) {
	r.renderers[renderer.Name()] = renderer
}

// Get returns the renderer for the given output format.
func (r *RendererRegistry) Get(name string) (domainRepos.ReportRenderer, error) {
	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %q (supported: %v)", name, r.Names())
	}
	return renderer, nil
}

// Names returns the sorted list of registered renderer names.
func (r *RendererRegistry) Names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
