package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/extcheck/internal"
	"github.com/rios0rios0/extcheck/internal/infrastructure/controllers"
)

func buildRootCommand(checkController *controllers.CheckController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "extcheck [files...]",
		Short: "Extension description file validator",
		Long: `Validates extension description files against the index policy and
cross-checks the declared dependency graph.

Each description file must satisfy the naming, category, and source-control
conventions; every declared dependency must resolve to another description
file present in the corpus. The exit status is the total failure count, so
callers can rely on an exact zero for clean runs.

Usage modes:
  extcheck A.json B.json                 Validate specific description files
  extcheck -d . *.json                   Validate files and cross-check dependencies
  extcheck deps /path/to/index           Dependency check only
  extcheck layout /path/to/index         Index layout check only`,
		Args: cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			checkController.Execute(command, args)
			return nil
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().String("policy", "",
		"Path to a YAML policy file (default: built-in policy)")
	cmd.PersistentFlags().Bool("binary-status", false,
		"Exit with 0/1 instead of the failure count")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	checkController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	checkController := injectCheckController()
	cobraRoot := buildRootCommand(checkController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'extcheck': %s", err)
	}
}
