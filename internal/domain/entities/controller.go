package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra command metadata a controller exposes.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is implemented by the CLI controllers that back each command.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}
