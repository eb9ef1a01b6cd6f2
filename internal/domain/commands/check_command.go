package commands

import (
	"context"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
	"github.com/rios0rios0/extcheck/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/extcheck/internal/infrastructure/repositories"
)

// Check is the interface for the validation command.
type Check interface {
	Execute(ctx context.Context, policy *entities.Policy, opts CheckOptions) (*entities.Report, error)
}

// CheckOptions holds runtime options for a single validation run.
type CheckOptions struct {
	FilePaths       []string // Description files to validate, in input order
	DependencyDir   string   // When set, cross-check the dependency graph over this corpus
	LayoutDir       string   // When set, scan this index root for unexpected files
	WithRepoContent bool     // Fetch repository working trees for the content rules
	Verbose         bool
}

// CheckCommand orchestrates the full validation flow: fan the candidates
// out to a bounded worker pool, run the dependency-graph pass over the
// corpus, scan the index layout, and merge everything into one report.
type CheckCommand struct {
	source         repositories.ManifestSource
	layout         repositories.LayoutRepository
	contentFactory infraRepos.RepoContentFactory
}

// NewCheckCommand creates a new CheckCommand with the given collaborators.
func NewCheckCommand(
	source repositories.ManifestSource,
	layout repositories.LayoutRepository,
	contentFactory infraRepos.RepoContentFactory,
) *CheckCommand {
	return &CheckCommand{
		source:         source,
		layout:         layout,
		contentFactory: contentFactory,
	}
}

// indexedResult carries one worker's result back to the orchestrator
// together with the candidate's original input index.
type indexedResult struct {
	index  int
	result entities.CheckResult
}

// Execute runs the validation pipeline and builds the report. Failures
// found while validating are data inside the report; the returned error is
// reserved for broken run inputs (an unreadable corpus or index root).
func (it *CheckCommand) Execute(
	ctx context.Context,
	policy *entities.Policy,
	opts CheckOptions,
) (*entities.Report, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	rules := entities.NewRuleSet(opts.WithRepoContent)

	var content repositories.RepoContentRepository
	if opts.WithRepoContent {
		content = it.contentFactory(policy)
	}

	results := it.runChecks(ctx, policy, rules, content, opts.FilePaths)

	dependencyErrors, dependencyCount, err := it.checkDependencies(opts.DependencyDir)
	if err != nil {
		return nil, err
	}

	structuralErrors, err := it.scanLayout(opts.LayoutDir, policy)
	if err != nil {
		return nil, err
	}

	report := entities.NewReport(results, dependencyErrors, structuralErrors)
	report.DependencyCheckedCount = dependencyCount
	return report, nil
}

// runChecks validates every candidate independently on a bounded worker
// pool. Workers hand their results back over a channel; only the
// orchestrator writes the result slice, re-sequenced by input index, so
// the final ordering matches the input ordering regardless of completion
// order.
func (it *CheckCommand) runChecks(
	ctx context.Context,
	policy *entities.Policy,
	rules []entities.Rule,
	content repositories.RepoContentRepository,
	filePaths []string,
) []entities.CheckResult {
	if len(filePaths) == 0 {
		return nil
	}

	jobs := make(chan int)
	outcomes := make(chan indexedResult)

	var wg sync.WaitGroup
	for worker := 0; worker < policy.Workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				outcomes <- indexedResult{
					index:  index,
					result: it.checkOne(ctx, policy, rules, content, filePaths[index]),
				}
			}
		}()
	}

	go func() {
		for index := range filePaths {
			jobs <- index
		}
		close(jobs)
		wg.Wait()
		close(outcomes)
	}()

	results := make([]entities.CheckResult, len(filePaths))
	for outcome := range outcomes {
		results[outcome.index] = outcome.result
	}
	return results
}

// checkOne runs the parse-then-rules pipeline for a single candidate.
func (it *CheckCommand) checkOne(
	ctx context.Context,
	policy *entities.Policy,
	rules []entities.Rule,
	content repositories.RepoContentRepository,
	filePath string,
) entities.CheckResult {
	name, raw, err := it.source.Read(filePath)
	if err != nil {
		return entities.NewParseFailureResult(&entities.ParseFailure{
			Name:    name,
			Details: err.Error(),
		})
	}

	manifest, parseFailure := entities.ParseManifest(name, raw)
	if parseFailure != nil {
		return entities.NewParseFailureResult(parseFailure)
	}

	logger.Debugf("Checking %s", name)

	ruleCtx := &entities.RuleContext{Policy: policy}
	if content != nil && manifest.SCMURL() != "" {
		repoContent, fetchErr := content.Fetch(ctx, manifest.SCMURL(), manifest.SCMRevision())
		if fetchErr != nil {
			logger.Debugf("Repository fetch failed for %s: %v", name, fetchErr)
			ruleCtx.ContentErr = fetchErr
		} else {
			ruleCtx.Content = repoContent
			defer func() {
				if closeErr := repoContent.Close(); closeErr != nil {
					logger.Warnf("Failed to release working tree for %s: %v", name, closeErr)
				}
			}()
		}
	}

	outcomes := make([]entities.RuleOutcome, 0, len(rules))
	for _, rule := range rules {
		outcomes = append(outcomes, rule.Apply(manifest, ruleCtx))
	}

	result := entities.NewCheckResult(name, outcomes)
	result.SCMURL = manifest.SCMURL()
	return result
}

// checkDependencies parses the full corpus and reports every dangling
// dependency. Parse failures are excluded from the available set but do
// not prevent their dependents from being checked.
func (it *CheckCommand) checkDependencies(dir string) ([]entities.DependencyError, int, error) {
	if dir == "" {
		return nil, 0, nil
	}

	paths, err := it.source.List(dir)
	if err != nil {
		return nil, 0, err
	}

	manifests := make([]*entities.Manifest, 0, len(paths))
	for _, path := range paths {
		name, raw, readErr := it.source.Read(path)
		if readErr != nil {
			logger.Warnf("Skipping %s: %v", path, readErr)
			continue
		}
		manifest, parseFailure := entities.ParseManifest(name, raw)
		if parseFailure != nil {
			logger.Warn(parseFailure.Details)
			continue
		}
		manifests = append(manifests, manifest)
	}

	return entities.ValidateDependencies(manifests), len(manifests), nil
}

func (it *CheckCommand) scanLayout(dir string, policy *entities.Policy) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	return it.layout.Scan(dir, policy)
}
