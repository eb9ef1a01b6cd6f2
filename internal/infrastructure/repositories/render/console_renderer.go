package render

import (
	"fmt"
	"io"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
	"github.com/rios0rios0/extcheck/internal/domain/repositories"
)

// ConsoleRenderer writes the flat console listing: each failing extension
// with its failures, the dependency and layout findings, and the total.
type ConsoleRenderer struct{}

// NewConsoleRenderer creates the plain console renderer.
func NewConsoleRenderer() repositories.ReportRenderer {
	return &ConsoleRenderer{}
}

func (r *ConsoleRenderer) Name() string { return "console" }

func (r *ConsoleRenderer) Render(report *entities.Report, sink io.Writer) error {
	for _, result := range report.Results {
		if len(result.Failures) == 0 {
			continue
		}
		fmt.Fprintf(sink, "%s.json\n", result.Name)
		for _, failure := range result.Failures {
			fmt.Fprintf(sink, "  %s\n", failure)
		}
	}

	fmt.Fprintf(sink, "Checked content of %d description files.\n", len(report.Results))

	if report.DependencyCheckedCount > 0 {
		fmt.Fprintf(sink, "Checked dependency between %d extensions.\n",
			report.DependencyCheckedCount)
	}
	for _, dependencyError := range report.DependencyErrors {
		fmt.Fprintln(sink, dependencyError.Message())
	}

	if len(report.StructuralErrors) > 0 {
		fmt.Fprintln(sink, "Filename validation failed:")
		for _, unexpected := range report.StructuralErrors {
			fmt.Fprintf(sink, "  %s\n", unexpected)
		}
	}

	fmt.Fprintf(sink, "Total errors found in extension descriptions: %d\n",
		report.TotalFailures())
	return nil
}
