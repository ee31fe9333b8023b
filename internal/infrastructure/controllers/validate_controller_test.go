//go:build unit

package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/internal/infrastructure/controllers"
	"github.com/rios0rios0/buildcfg/test/domain/commanddoubles"
)

func TestValidateController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the document and flags to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubValidateCommand{}
		controller := controllers.NewValidateController(stub)
		cmd := newCobraCommand(t, "")
		require.NoError(t, cmd.Flags().Set("verbose", "true"))

		// when
		err := controller.Execute(cmd, []string{"build.hcl"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "build.hcl", stub.LastOpts.DocumentPath)
		assert.True(t, stub.LastOpts.Verbose)
	})

	t.Run("should return validation failures", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubValidateCommand{
			ExecuteErr: &entities.ValidationError{Reasons: []string{"applicationId is required"}},
		}
		controller := controllers.NewValidateController(stub)
		cmd := newCobraCommand(t, "")

		// when
		err := controller.Execute(cmd, []string{"build.hcl"})

		// then
		assert.Equal(t, entities.ExitValidation, entities.ExitCode(err))
	})

	t.Run("should fail when the settings file is invalid", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubValidateCommand{}
		controller := controllers.NewValidateController(stub)
		cmd := newCobraCommand(t, "output:\n  format: toml\n")

		// when
		err := controller.Execute(cmd, []string{"build.hcl"})

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})
}
