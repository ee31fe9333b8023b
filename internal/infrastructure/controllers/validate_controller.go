package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/buildcfg/internal/domain/commands"
	"github.com/rios0rios0/buildcfg/internal/domain/entities"
)

// ValidateController handles the "validate" subcommand.
type ValidateController struct {
	command commands.Validate
}

// NewValidateController creates a new ValidateController.
func NewValidateController(command commands.Validate) *ValidateController {
	return &ValidateController{command: command}
}

// GetBind returns the Cobra command metadata for the validate controller.
func (it *ValidateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "validate [document]",
		Short: "Check a build document without emitting it",
		Long: `Run the full resolution pipeline and exit non-zero on the first
parse, resolution or validation error. Nothing is written on success.`,
	}
}

// Execute runs the validation.
func (it *ValidateController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts, err := resolveOptions(cmd, args, settings)
	if err != nil {
		return err
	}

	return it.command.Execute(context.Background(), opts)
}
