package entities

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

var supportedSchemes = []string{"git", "https"}

// namePrefixVariations are the renames suggested when a repository name
// does not follow the naming convention.
var namePrefixVariations = []string{"Slicer-", "Slicer_", "SlicerExtension-", "SlicerExtension_"}

// projectPattern matches the first project(<name> ...) declaration of a
// build descriptor, case-insensitively, up to the first whitespace or
// parenthesis.
var projectPattern = regexp.MustCompile(`(?i)project\s*\(\s*([^\s()]+)`)

const buildDescriptorName = "CMakeLists.txt"

// NewRuleSet returns the content rules in their stable evaluation order.
// The repository rules are only part of the set when repository working
// trees are being fetched; without them the set matches the plain checks.
func NewRuleSet(withRepoContent bool) []Rule {
	rules := []Rule{
		{
			Name:         "check-category",
			Category:     CategoryRuleCategory,
			RequiredKeys: []string{"category"},
			Body:         checkCategory,
		},
		{
			Name:         "check-scm-url-syntax",
			Category:     SCMURLRuleCategory,
			RequiredKeys: []string{"scm_url"},
			Body:         checkSCMURLSyntax,
		},
		{
			Name:         "check-repository-name",
			Category:     RepoNameRuleCategory,
			RequiredKeys: []string{"scm_url"},
			Body:         checkRepositoryName,
		},
	}

	if withRepoContent {
		rules = append(rules,
			Rule{
				Name:         "check-build-descriptor",
				Category:     RepoContentRuleCategory,
				RequiredKeys: []string{"scm_url"},
				Body:         checkBuildDescriptor,
			},
			Rule{
				Name:         "check-license",
				Category:     LicenseRuleCategory,
				RequiredKeys: []string{"scm_url"},
				Body:         checkLicense,
			},
		)
	}

	return rules
}

func checkCategory(manifest *Manifest, ctx *RuleContext) error {
	category := manifest.Category()
	if !ctx.Policy.IsCategoryAllowed(category) {
		return fmt.Errorf(
			"category is '%s' but it should be any of %v",
			category, ctx.Policy.Categories,
		)
	}
	return nil
}

func checkSCMURLSyntax(manifest *Manifest, _ *RuleContext) error {
	scmURL := manifest.SCMURL()
	if !strings.Contains(scmURL, "://") {
		return errors.New("scm_url does not match scheme://host/path")
	}

	scheme, _, _ := strings.Cut(scmURL, "://")
	scheme = strings.ToLower(scheme)
	for _, supported := range supportedSchemes {
		if scheme == supported {
			return nil
		}
	}
	return fmt.Errorf(
		"scm_url scheme is '%s' but it should be any of %v",
		scheme, supportedSchemes,
	)
}

func checkRepositoryName(manifest *Manifest, ctx *RuleContext) error {
	repoName := RepositoryShortName(manifest.SCMURL())

	if ctx.Policy.IsRepositoryNameException(repoName) {
		return nil
	}

	if strings.Contains(strings.ToLower(repoName), "slicer") {
		return nil
	}

	variations := make([]string, 0, len(namePrefixVariations))
	for _, prefix := range namePrefixVariations {
		variations = append(variations, prefix+repoName)
	}

	return fmt.Errorf(
		"extension repository name is '%s'. Please, consider changing it to 'Slicer%s' or any of these variations %v",
		repoName, repoName, variations,
	)
}

// RepositoryShortName derives a repository's short name from the last path
// segment of its source-control URL, stripping any trailing archive
// extension such as ".git".
func RepositoryShortName(scmURL string) string {
	segment := scmURL
	if parsed, err := url.Parse(scmURL); err == nil && parsed.Path != "" {
		segment = parsed.Path
	}
	segment = path.Base(segment)
	return strings.TrimSuffix(segment, path.Ext(segment))
}

func checkBuildDescriptor(manifest *Manifest, ctx *RuleContext) error {
	if ctx.Content == nil {
		return repoContentUnavailable(ctx)
	}

	if !ctx.Content.HasFile(buildDescriptorName) {
		return fmt.Errorf("no build descriptor (%s) found in repository root", buildDescriptorName)
	}

	raw, err := ctx.Content.ReadFile(buildDescriptorName)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", buildDescriptorName, err)
	}

	match := projectPattern.FindSubmatch(raw)
	if match == nil {
		return fmt.Errorf("no project() declaration found in %s", buildDescriptorName)
	}

	projectName := strings.Trim(string(match[1]), `"'`)
	if projectName != manifest.Name {
		return fmt.Errorf(
			"project name is '%s' but the extension name is '%s'",
			projectName, manifest.Name,
		)
	}
	return nil
}

func checkLicense(_ *Manifest, ctx *RuleContext) error {
	if ctx.Content == nil {
		return repoContentUnavailable(ctx)
	}

	for _, name := range ctx.Policy.LicenseFileNames {
		if ctx.Content.HasFile(name) {
			return nil
		}
	}
	return fmt.Errorf(
		"no license file found in repository root, expected one of %v",
		ctx.Policy.LicenseFileNames,
	)
}

func repoContentUnavailable(ctx *RuleContext) error {
	if ctx.ContentErr != nil {
		return fmt.Errorf("repository contents unavailable: %w", ctx.ContentErr)
	}
	return errors.New("repository contents unavailable")
}
