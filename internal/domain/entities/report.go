package entities

// CheckResult is the per-manifest outcome of the validation pipeline.
// Failures holds the coalesced failure messages: duplicate message strings
// for the same manifest collapse to one, first-seen order preserved.
// SCMURL carries the declared repository location so that renderers can
// link failing extensions to their source.
type CheckResult struct {
	Name        string
	SCMURL      string
	ParseFailed bool
	Outcomes    []RuleOutcome
	Failures    []string
}

// NewCheckResult builds the result for a successfully parsed manifest from
// its rule outcomes.
func NewCheckResult(name string, outcomes []RuleOutcome) CheckResult {
	var failures []string
	seen := make(map[string]struct{})
	for _, outcome := range outcomes {
		if outcome.Passed {
			continue
		}
		if _, duplicate := seen[outcome.Message]; duplicate {
			continue
		}
		seen[outcome.Message] = struct{}{}
		failures = append(failures, outcome.Message)
	}
	return CheckResult{Name: name, Outcomes: outcomes, Failures: failures}
}

// NewParseFailureResult builds the result for a manifest that failed to
// parse. Rule evaluation is skipped for such candidates.
func NewParseFailureResult(failure *ParseFailure) CheckResult {
	return CheckResult{
		Name:        failure.Name,
		ParseFailed: true,
		Failures:    []string{failure.Details},
	}
}

// FailedByCategory groups this result's failed outcomes by rule category.
func (r CheckResult) FailedByCategory() map[RuleCategory][]RuleOutcome {
	grouped := make(map[RuleCategory][]RuleOutcome)
	for _, outcome := range r.Outcomes {
		if outcome.Passed {
			continue
		}
		grouped[outcome.Category] = append(grouped[outcome.Category], outcome)
	}
	return grouped
}

// HasFailureIn reports whether any outcome in the given category failed.
func (r CheckResult) HasFailureIn(category RuleCategory) bool {
	for _, outcome := range r.Outcomes {
		if !outcome.Passed && outcome.Category == category {
			return true
		}
	}
	return false
}

// CategoryStat is one row of the per-check pass/fail table: how many
// extensions passed and failed the rules of one category.
type CategoryStat struct {
	Category RuleCategory
	Pass     int
	Fail     int
}

// Report aggregates one full run: per-manifest results in input order,
// dangling-dependency errors, and collaborator-reported structural errors.
// It is built once, rendered once, and discarded.
type Report struct {
	Results                []CheckResult
	DependencyErrors       []DependencyError
	StructuralErrors       []string
	DependencyCheckedCount int
}

// NewReport builds a report. Construction never fails; an empty corpus
// yields an all-pass report with zero counts.
func NewReport(
	results []CheckResult,
	dependencyErrors []DependencyError,
	structuralErrors []string,
) *Report {
	return &Report{
		Results:          results,
		DependencyErrors: dependencyErrors,
		StructuralErrors: structuralErrors,
	}
}

// TotalFailures is the single source of truth for the process exit code:
// the sum of coalesced per-manifest failures, dependency errors, and
// structural errors.
func (r *Report) TotalFailures() int {
	total := len(r.DependencyErrors) + len(r.StructuralErrors)
	for _, result := range r.Results {
		total += len(result.Failures)
	}
	return total
}

// ExtensionsWithFailures counts the manifests that had at least one failure.
func (r *Report) ExtensionsWithFailures() int {
	count := 0
	for _, result := range r.Results {
		if len(result.Failures) > 0 {
			count++
		}
	}
	return count
}

// ManifestFailures counts the coalesced per-manifest failures, excluding
// dependency and structural errors.
func (r *Report) ManifestFailures() int {
	total := 0
	for _, result := range r.Results {
		total += len(result.Failures)
	}
	return total
}

// CategoryStats builds the pass/fail table rows, one per rule category, in
// order of first appearance across the evaluated rules.
func (r *Report) CategoryStats() []CategoryStat {
	var order []RuleCategory
	seen := make(map[RuleCategory]struct{})
	for _, result := range r.Results {
		for _, outcome := range result.Outcomes {
			if _, ok := seen[outcome.Category]; !ok {
				seen[outcome.Category] = struct{}{}
				order = append(order, outcome.Category)
			}
		}
	}

	stats := make([]CategoryStat, 0, len(order))
	for _, category := range order {
		stat := CategoryStat{Category: category}
		for _, result := range r.Results {
			if result.HasFailureIn(category) {
				stat.Fail++
			} else {
				stat.Pass++
			}
		}
		stats = append(stats, stat)
	}
	return stats
}
