//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/buildcfg/internal/domain/commands"
)

// StubValidateCommand is a stub implementation of commands.Validate.
type StubValidateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.ResolveOptions
}

var _ commands.Validate = (*StubValidateCommand)(nil)

func (s *StubValidateCommand) Execute(_ context.Context, opts commands.ResolveOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
