package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"
)

// Validate is the interface for the validate command.
type Validate interface {
	Execute(ctx context.Context, opts ResolveOptions) error
}

// ValidateCommand runs the resolve pipeline and only reports the outcome.
type ValidateCommand struct {
	resolve Resolve
}

// NewValidateCommand creates a new ValidateCommand.
func NewValidateCommand(resolve Resolve) *ValidateCommand {
	return &ValidateCommand{resolve: resolve}
}

// Execute returns nil when the document resolves and validates.
func (it *ValidateCommand) Execute(ctx context.Context, opts ResolveOptions) error {
	project, err := it.resolve.Execute(ctx, opts)
	if err != nil {
		return err
	}

	logger.Infof("%s is valid (%s)", opts.DocumentPath, project.Config.ApplicationID)
	return nil
}
