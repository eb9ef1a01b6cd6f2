package controllers

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/extcheck/internal/domain/commands"
	"github.com/rios0rios0/extcheck/internal/domain/entities"
)

// LayoutController handles the "layout" subcommand: scan the index root
// for files and directories outside the maintained allow-lists.
type LayoutController struct {
	command commands.Check
}

// NewLayoutController creates a new LayoutController.
func NewLayoutController(command commands.Check) *LayoutController {
	return &LayoutController{command: command}
}

// GetBind returns the Cobra command metadata for the layout controller.
func (it *LayoutController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "layout <folder>",
		Short: "Check the index repository layout",
		Long: `Look for unexpected files in the index repository root. Only
description files, the maintained configuration files, and the allowed
directories may live there.`,
	}
}

// Execute runs the layout scan and exits with the failure count.
func (it *LayoutController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	if len(args) != 1 {
		logger.Error("Expected exactly one folder argument")
		os.Exit(1)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	binaryStatus, _ := cmd.Flags().GetBool("binary-status")
	policy := resolvePolicy(cmd)

	fmt.Println("Looking for unexpected files")

	report, err := it.command.Execute(ctx, policy, commands.CheckOptions{
		LayoutDir: args[0],
		Verbose:   verbose,
	})
	if err != nil {
		logger.Fatalf("Layout check failed: %v", err)
	}

	for _, unexpected := range report.StructuralErrors {
		fmt.Println(unexpected)
	}

	if len(report.StructuralErrors) > 0 {
		fmt.Println("Looking for unexpected files - failed")
	} else {
		fmt.Println("Looking for unexpected files - done")
	}

	exitWithFailures(report.TotalFailures(), binaryStatus)
}
