//go:build unit

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buildcfg/internal/infrastructure/controllers"
	infraRepos "github.com/rios0rios0/buildcfg/internal/infrastructure/repositories"
	"github.com/rios0rios0/buildcfg/internal/infrastructure/repositories/output"
	"github.com/rios0rios0/buildcfg/test/domain/commanddoubles"
	"github.com/rios0rios0/buildcfg/test/domain/entitybuilders"
)

func newRootCommand(t *testing.T, settings string) (*bytes.Buffer, *commanddoubles.StubResolveCommand, func(...string) error) {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), ".buildcfg.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(settings), 0o600))

	writers := infraRepos.NewWriterRegistry()
	writers.Register(output.NewYAMLProjectWriterRepository())
	stub := &commanddoubles.StubResolveCommand{Project: entitybuilders.NewProjectBuilder().BuildProject()}
	root := buildRootCommand(controllers.NewResolveController(stub, writers))

	var out bytes.Buffer
	root.SetOut(&out)
	run := func(args ...string) error {
		root.SetArgs(append([]string{"--config", cfgFile}, args...))
		return root.Execute()
	}
	return &out, stub, run
}

func TestBuildRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the document named in the settings file", func(t *testing.T) {
		t.Parallel()

		// given
		out, stub, run := newRootCommand(t, "document: android/app/build.gradle.kts\n")

		// when
		err := run()

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "android/app/build.gradle.kts", stub.LastOpts.DocumentPath)
		assert.Contains(t, out.String(), "applicationId: com.example.app")
	})

	t.Run("should resolve the document given as argument", func(t *testing.T) {
		t.Parallel()

		// given
		_, stub, run := newRootCommand(t, "")

		// when
		err := run("build.yaml")

		// then
		require.NoError(t, err)
		assert.Equal(t, "build.yaml", stub.LastOpts.DocumentPath)
	})

	t.Run("should show help when no document is known", func(t *testing.T) {
		t.Parallel()

		// given
		out, stub, run := newRootCommand(t, "")

		// when
		err := run()

		// then
		require.NoError(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
		assert.Contains(t, out.String(), "Usage:")
	})
}
