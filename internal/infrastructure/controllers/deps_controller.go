package controllers

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/extcheck/internal/domain/commands"
	"github.com/rios0rios0/extcheck/internal/domain/entities"
	infraRepos "github.com/rios0rios0/extcheck/internal/infrastructure/repositories"
)

// DepsController handles the "deps" subcommand: cross-check the dependency
// graph over a corpus directory without validating individual files.
type DepsController struct {
	command   commands.Check
	renderers *infraRepos.RendererRegistry
}

// NewDepsController creates a new DepsController.
func NewDepsController(
	command commands.Check,
	renderers *infraRepos.RendererRegistry,
) *DepsController {
	return &DepsController{command: command, renderers: renderers}
}

// GetBind returns the Cobra command metadata for the deps controller.
func (it *DepsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "deps <folder>",
		Short: "Cross-check extension dependencies",
		Long: `Cross-check the declared dependency graph over all extension
description files in a folder. Every dependency must resolve to another
description file present in the corpus; a dangling dependency is reported
together with every extension that requires it.`,
	}
}

// Execute runs the dependency check and exits with the failure count.
func (it *DepsController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	if len(args) != 1 {
		logger.Error("Expected exactly one folder argument")
		os.Exit(1)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	binaryStatus, _ := cmd.Flags().GetBool("binary-status")
	policy := resolvePolicy(cmd)

	report, err := it.command.Execute(ctx, policy, commands.CheckOptions{
		DependencyDir: args[0],
		Verbose:       verbose,
	})
	if err != nil {
		logger.Fatalf("Dependency check failed: %v", err)
	}

	renderer, err := it.renderers.Get("console")
	if err != nil {
		logger.Fatalf("Invalid output format: %v", err)
	}
	if renderErr := renderer.Render(report, os.Stdout); renderErr != nil {
		logger.Fatalf("Failed to render report: %v", renderErr)
	}

	exitWithFailures(report.TotalFailures(), binaryStatus)
}
