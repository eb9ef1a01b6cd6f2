package entities

import (
	"fmt"
	"strings"
)

// DependencyError reports a declared dependency that does not resolve to
// any parsed manifest in the corpus.
type DependencyError struct {
	Dependency string
	RequiredBy []string
}

func (e DependencyError) Message() string {
	return fmt.Sprintf(
		"%s extension is not found. It is required by extension: %s.",
		e.Dependency, strings.Join(e.RequiredBy, ", "),
	)
}

// ValidateDependencies builds the required-by index over the corpus in one
// pass and reports every dependency name that never appears as a parsed
// manifest. Requesters are listed in first-seen order. A manifest depending
// on itself is not rejected here: the name always resolves.
func ValidateDependencies(manifests []*Manifest) []DependencyError {
	available := make(map[string]struct{}, len(manifests))
	requiredBy := make(map[string][]string)
	var order []string

	for _, manifest := range manifests {
		available[manifest.Name] = struct{}{}
		for _, dependency := range manifest.Depends() {
			if _, seen := requiredBy[dependency]; !seen {
				order = append(order, dependency)
			}
			requiredBy[dependency] = append(requiredBy[dependency], manifest.Name)
		}
	}

	var errors []DependencyError
	for _, dependency := range order {
		if _, found := available[dependency]; found {
			continue
		}
		errors = append(errors, DependencyError{
			Dependency: dependency,
			RequiredBy: requiredBy[dependency],
		})
	}
	return errors
}
