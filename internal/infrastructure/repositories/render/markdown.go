package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
)

// categorySections maps each rule category to its issue heading, in the
// fixed order the report lists them.
var categorySections = []struct {
	category entities.RuleCategory
	heading  string
}{
	{entities.CategoryRuleCategory, "Category Issues"},
	{entities.SCMURLRuleCategory, "SCM URL Issues"},
	{entities.RepoNameRuleCategory, "Repository Name Issues"},
	{entities.RepoContentRuleCategory, "Repository Content Issues"},
	{entities.LicenseRuleCategory, "License Issues"},
	{entities.OtherRuleCategory, "Other Issues"},
}

// categoryRowLabels maps each rule category to its check-table row label.
var categoryRowLabels = map[entities.RuleCategory]string{
	entities.CategoryRuleCategory:    "Category Check",
	entities.SCMURLRuleCategory:      "SCM URL Syntax",
	entities.RepoNameRuleCategory:    "Repository Name",
	entities.RepoContentRuleCategory: "Repository Content",
	entities.LicenseRuleCategory:     "License",
	entities.OtherRuleCategory:       "Other",
}

// BuildMarkdown renders a report as a markdown document: a summary with
// pass/fail counts, the structure issues, the per-extension issues grouped
// by rule category, and the check-type pass/fail table.
func BuildMarkdown(report *entities.Report, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("# Extension Description Files Validation Report\n\n")
	fmt.Fprintf(&b, "**Generated on:** %s\n\n",
		generatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))

	writeSummary(&b, report)
	writeStructureIssues(&b, report)
	writeExtensionIssues(&b, report)
	writeDependencyIssues(&b, report)
	writeCheckTable(&b, report)

	return b.String()
}

func writeSummary(b *strings.Builder, report *entities.Report) {
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(b, "- **Total extensions checked:** %d\n", len(report.Results))
	fmt.Fprintf(b, "- **Extensions with errors:** %d\n", report.ExtensionsWithFailures())
	fmt.Fprintf(b, "- **Total validation errors:** %d\n", report.ManifestFailures())
	fmt.Fprintf(b, "- **Dependency errors:** %d\n", len(report.DependencyErrors))
	fmt.Fprintf(b, "- **Filename validation errors:** %d\n", len(report.StructuralErrors))
	b.WriteString("\n")

	if report.TotalFailures() == 0 {
		b.WriteString(":white_check_mark: **All validations passed!**\n\n")
	} else {
		b.WriteString(":x: **Validation issues found**\n\n")
	}
}

func writeStructureIssues(b *strings.Builder, report *entities.Report) {
	if len(report.StructuralErrors) == 0 {
		return
	}

	b.WriteString("## Repository Structure Issues\n\n")
	b.WriteString("The following unexpected files or directories were found:\n\n")
	for _, unexpected := range report.StructuralErrors {
		fmt.Fprintf(b, "- :x: `%s`\n", unexpected)
	}
	b.WriteString("\n")
}

func writeExtensionIssues(b *strings.Builder, report *entities.Report) {
	if report.ExtensionsWithFailures() == 0 {
		return
	}

	b.WriteString("## Extension Validation Issues\n\n")
	for _, result := range report.Results {
		if len(result.Failures) == 0 {
			continue
		}

		fmt.Fprintf(b, "### %s\n\n", result.Name)

		if link := repositoryLink(result.SCMURL); link != "" {
			fmt.Fprintf(b, "**Repository:** [%s](%s)\n\n", link, link)
		}

		if result.ParseFailed {
			for _, failure := range result.Failures {
				fmt.Fprintf(b, "- :x: %s\n", failure)
			}
			b.WriteString("\n")
			continue
		}

		grouped := result.FailedByCategory()
		for _, section := range categorySections {
			outcomes := grouped[section.category]
			if len(outcomes) == 0 {
				continue
			}
			fmt.Fprintf(b, "**%s:**\n", section.heading)
			for _, outcome := range outcomes {
				fmt.Fprintf(b, "- :x: %s\n", outcome.Message)
			}
			b.WriteString("\n")
		}
	}
}

// repositoryLink normalizes a source-control URL into a browsable one:
// git and SSH locations become https and a trailing ".git" is stripped.
func repositoryLink(scmURL string) string {
	link := scmURL
	switch {
	case strings.HasPrefix(link, "git://"):
		link = "https://" + strings.TrimPrefix(link, "git://")
	case strings.HasPrefix(link, "git@"):
		link = "https://" + strings.ReplaceAll(strings.TrimPrefix(link, "git@"), ":", "/")
	}
	return strings.TrimSuffix(link, ".git")
}

func writeDependencyIssues(b *strings.Builder, report *entities.Report) {
	if len(report.DependencyErrors) == 0 {
		return
	}

	b.WriteString("## Extension Dependency Issues\n\n")
	for _, dependencyError := range report.DependencyErrors {
		fmt.Fprintf(b, "- :x: %s\n", dependencyError.Message())
	}
	b.WriteString("\n")
}

func writeCheckTable(b *strings.Builder, report *entities.Report) {
	b.WriteString("## Validation Check Results\n\n")
	b.WriteString("| Check Type | :white_check_mark: Pass | :x: Fail |\n")
	b.WriteString("|------------|---------|---------|\n")

	for _, stat := range report.CategoryStats() {
		label, ok := categoryRowLabels[stat.Category]
		if !ok {
			label = string(stat.Category)
		}
		fmt.Fprintf(b, "| %s | %d | %d |\n", label, stat.Pass, stat.Fail)
	}

	filenamePass, filenameFail := 1, 0
	if len(report.StructuralErrors) > 0 {
		filenamePass, filenameFail = 0, 1
	}
	fmt.Fprintf(b, "| Filename Validation | %d | %d |\n", filenamePass, filenameFail)
	b.WriteString("\n")
}
