package controllers

import (
	"context"
	"io"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/extcheck/internal/domain/commands"
	infraRepos "github.com/rios0rios0/extcheck/internal/infrastructure/repositories"
)

const markdownExtension = ".md"

// CheckController handles the root command: validate the given description
// files, render the report, and translate the failure count into the
// process exit status.
type CheckController struct {
	command   commands.Check
	renderers *infraRepos.RendererRegistry
}

// NewCheckController creates a new CheckController.
func NewCheckController(
	command commands.Check,
	renderers *infraRepos.RendererRegistry,
) *CheckController {
	return &CheckController{command: command, renderers: renderers}
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("output-format", "console",
		"Report format (console, markdown, pretty)")
	cmd.Flags().String("output-file", "",
		"Write the report to this file instead of stdout")
	cmd.Flags().StringP("check-dependencies", "d", "",
		"Cross-check the dependency graph over all description files in this folder")
	cmd.Flags().Bool("check-repositories", false,
		"Clone each repository to verify its build descriptor and license")
	cmd.Flags().String("check-layout", "",
		"Scan this index root for unexpected files")
}

// Execute runs the validation and exits with the failure count (or a
// binary status when requested).
func (it *CheckController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	outputFormat, _ := cmd.Flags().GetString("output-format")
	outputFile, _ := cmd.Flags().GetString("output-file")
	dependencyDir, _ := cmd.Flags().GetString("check-dependencies")
	layoutDir, _ := cmd.Flags().GetString("check-layout")
	withRepoContent, _ := cmd.Flags().GetBool("check-repositories")
	verbose, _ := cmd.Flags().GetBool("verbose")
	binaryStatus, _ := cmd.Flags().GetBool("binary-status")

	policy := resolvePolicy(cmd)

	// Renderer and sink problems are caller configuration mistakes: they
	// are fatal before any validation work starts.
	renderer, err := it.renderers.Get(outputFormat)
	if err != nil {
		logger.Fatalf("Invalid output format: %v", err)
	}
	if outputFile != "" && outputFormat == "markdown" &&
		!strings.HasSuffix(outputFile, markdownExtension) {
		logger.Fatalf("Report file must have the %s extension", markdownExtension)
	}

	sink, closeSink := it.openSink(outputFile)
	defer closeSink()

	report, err := it.command.Execute(ctx, policy, commands.CheckOptions{
		FilePaths:       args,
		DependencyDir:   dependencyDir,
		LayoutDir:       layoutDir,
		WithRepoContent: withRepoContent,
		Verbose:         verbose,
	})
	if err != nil {
		logger.Fatalf("Validation run failed: %v", err)
	}

	if renderErr := renderer.Render(report, sink); renderErr != nil {
		logger.Fatalf("Failed to render report: %v", renderErr)
	}
	if outputFile != "" {
		logger.Infof("Report written to %s", outputFile)
	}

	exitWithFailures(report.TotalFailures(), binaryStatus)
}

func (it *CheckController) openSink(outputFile string) (io.Writer, func()) {
	if outputFile == "" {
		return os.Stdout, func() {}
	}

	file, err := os.Create(outputFile)
	if err != nil {
		logger.Fatalf("Invalid output file %q: %v", outputFile, err)
	}
	return file, func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warnf("Failed to close %q: %v", outputFile, closeErr)
		}
	}
}
