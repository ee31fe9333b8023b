//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buildcfg/internal/domain/commands"
	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/test/domain/commanddoubles"
	"github.com/rios0rios0/buildcfg/test/domain/entitybuilders"
)

func TestValidateCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should succeed when the project resolves", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubResolveCommand{Project: entitybuilders.NewProjectBuilder().BuildProject()}
		cmd := commands.NewValidateCommand(stub)
		opts := commands.ResolveOptions{DocumentPath: "build.gradle.kts", Format: "gradle"}

		// when
		err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, opts, stub.LastOpts)
	})

	t.Run("should return the pipeline error unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		failure := &entities.ValidationError{Reasons: []string{"minSdk (34) must not exceed targetSdk (33)"}}
		stub := &commanddoubles.StubResolveCommand{ExecuteErr: failure}
		cmd := commands.NewValidateCommand(stub)

		// when
		err := cmd.Execute(context.Background(), commands.ResolveOptions{DocumentPath: "build.gradle.kts"})

		// then
		assert.Same(t, failure, err)
	})
}
