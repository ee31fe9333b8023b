package entities

import "github.com/spf13/cobra"

// ControllerBind is the Cobra metadata a controller exposes.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller binds a use case to a CLI subcommand.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
