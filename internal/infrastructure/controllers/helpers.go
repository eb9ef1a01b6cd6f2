package controllers

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/extcheck/internal/domain/entities"
)

// resolvePolicy loads the policy file named by the --policy flag, falling
// back to the built-in defaults. A broken policy file is a caller
// configuration mistake and aborts before any validation work.
func resolvePolicy(cmd *cobra.Command) *entities.Policy {
	path, _ := cmd.Flags().GetString("policy")
	if path == "" {
		return entities.DefaultPolicy()
	}

	policy, err := entities.LoadPolicy(path)
	if err != nil {
		logger.Fatalf("Failed to load policy: %v", err)
	}
	logger.Debugf("Using policy file: %s", path)
	return policy
}

// exitWithFailures translates the total failure count into the process
// exit status. Callers rely on an exact zero for clean runs; with the
// binary convention any failure maps to 1.
func exitWithFailures(failures int, binary bool) {
	if failures == 0 {
		return
	}
	if binary {
		os.Exit(1)
	}
	os.Exit(failures)
}
