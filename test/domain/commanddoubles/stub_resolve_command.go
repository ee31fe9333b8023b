//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/buildcfg/internal/domain/commands"
	"github.com/rios0rios0/buildcfg/internal/domain/entities"
)

// StubResolveCommand is a stub implementation of commands.Resolve.
type StubResolveCommand struct {
	ExecuteCallCount int
	Project          *entities.Project
	ExecuteErr       error
	LastOpts         commands.ResolveOptions
}

var _ commands.Resolve = (*StubResolveCommand)(nil)

func (s *StubResolveCommand) Execute(
	_ context.Context,
	opts commands.ResolveOptions,
) (*entities.Project, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return s.Project, nil
}
