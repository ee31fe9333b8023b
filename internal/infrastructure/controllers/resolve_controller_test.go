//go:build unit

package controllers_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/internal/infrastructure/controllers"
	infraRepos "github.com/rios0rios0/buildcfg/internal/infrastructure/repositories"
	"github.com/rios0rios0/buildcfg/internal/infrastructure/repositories/output"
	"github.com/rios0rios0/buildcfg/test/domain/commanddoubles"
	"github.com/rios0rios0/buildcfg/test/domain/entitybuilders"
)

func newWriterRegistry() *infraRepos.WriterRegistry {
	reg := infraRepos.NewWriterRegistry()
	reg.Register(output.NewYAMLProjectWriterRepository())
	reg.Register(output.NewJSONProjectWriterRepository())
	return reg
}

// newCobraCommand mirrors the persistent flags registered by the root command.
func newCobraCommand(t *testing.T, settings string) *cobra.Command {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), ".buildcfg.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(settings), 0o600))

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", cfgFile, "")
	cmd.Flags().String("descriptor", "", "")
	cmd.Flags().String("format", "", "")
	cmd.Flags().Bool("verbose", false, "")
	return cmd
}

func TestResolveController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should write YAML to stdout by default", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubResolveCommand{Project: entitybuilders.NewProjectBuilder().BuildProject()}
		controller := controllers.NewResolveController(stub, newWriterRegistry())
		cmd := newCobraCommand(t, "format: gradle\n")
		controller.AddFlags(cmd)
		var out bytes.Buffer
		cmd.SetOut(&out)

		// when
		err := controller.Execute(cmd, []string{"android/app/build.gradle.kts"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "android/app/build.gradle.kts", stub.LastOpts.DocumentPath)
		assert.Equal(t, "gradle", stub.LastOpts.Format)
		assert.Contains(t, out.String(), "applicationId: com.example.app")
	})

	t.Run("should let flags override the settings file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubResolveCommand{Project: entitybuilders.NewProjectBuilder().BuildProject()}
		controller := controllers.NewResolveController(stub, newWriterRegistry())
		cmd := newCobraCommand(t, `
document: from-settings.yaml
format: yaml
descriptor:
  path: settings.properties
  values:
    flutter.minSdkVersion: "24"
exclusions:
  - group: androidx.window
`)
		controller.AddFlags(cmd)
		require.NoError(t, cmd.Flags().Set("format", "gradle"))
		require.NoError(t, cmd.Flags().Set("descriptor", "flag.properties"))
		require.NoError(t, cmd.Flags().Set("output-format", "json"))
		var out bytes.Buffer
		cmd.SetOut(&out)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		opts := stub.LastOpts
		assert.Equal(t, "from-settings.yaml", opts.DocumentPath)
		assert.Equal(t, "gradle", opts.Format)
		assert.Equal(t, "flag.properties", opts.DescriptorPath)
		assert.Equal(t, "24", opts.DescriptorValues["flutter.minSdkVersion"])
		assert.Equal(t, []entities.DependencyExclusion{{Group: "androidx.window"}}, opts.Exclusions)
		assert.Contains(t, out.String(), `"applicationId": "com.example.app"`)
	})

	t.Run("should write to the output file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubResolveCommand{Project: entitybuilders.NewProjectBuilder().BuildProject()}
		controller := controllers.NewResolveController(stub, newWriterRegistry())
		cmd := newCobraCommand(t, "")
		controller.AddFlags(cmd)
		target := filepath.Join(t.TempDir(), "resolved.yaml")
		require.NoError(t, cmd.Flags().Set("output", target))

		// when
		err := controller.Execute(cmd, []string{"build.gradle.kts"})

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(target)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "defaultConfig:")
	})

	t.Run("should fail without a document", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubResolveCommand{}
		controller := controllers.NewResolveController(stub, newWriterRegistry())
		cmd := newCobraCommand(t, "")
		controller.AddFlags(cmd)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, controllers.ErrNoDocument)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should return pipeline errors without writing", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubResolveCommand{ExecuteErr: &entities.ParseError{Reason: "malformed YAML"}}
		controller := controllers.NewResolveController(stub, newWriterRegistry())
		cmd := newCobraCommand(t, "")
		controller.AddFlags(cmd)
		var out bytes.Buffer
		cmd.SetOut(&out)

		// when
		err := controller.Execute(cmd, []string{"build.yaml"})

		// then
		assert.Equal(t, entities.ExitParse, entities.ExitCode(err))
		assert.Empty(t, out.String())
	})

	t.Run("should fail on an unknown output format", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubResolveCommand{Project: entitybuilders.NewProjectBuilder().BuildProject()}
		controller := controllers.NewResolveController(stub, newWriterRegistry())
		cmd := newCobraCommand(t, "")
		controller.AddFlags(cmd)
		require.NoError(t, cmd.Flags().Set("output-format", "toml"))

		// when
		err := controller.Execute(cmd, []string{"build.gradle.kts"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})
}

func TestResolveController_GetBind(t *testing.T) {
	t.Parallel()

	t.Run("should expose the resolve subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewResolveController(&commanddoubles.StubResolveCommand{}, newWriterRegistry())

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "resolve [document]", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})
}
