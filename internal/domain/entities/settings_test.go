//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), ".buildcfg.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))
	return cfgFile
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should load a valid settings file", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := writeSettings(t, `
document: android/app/build.gradle.kts
format: gradle
descriptor:
  path: android/local.properties
  values:
    flutter.minSdkVersion: "24"
exclusions:
  - group: androidx.window
    module: window-java
output:
  format: json
  path: build/config.json
`)

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "android/app/build.gradle.kts", settings.Document)
		assert.Equal(t, "gradle", settings.Format)
		assert.Equal(t, "android/local.properties", settings.Descriptor.Path)
		assert.Equal(t, "24", settings.Descriptor.Values["flutter.minSdkVersion"])
		assert.Equal(t, []entities.DependencyExclusion{{Group: "androidx.window", Module: "window-java"}}, settings.Exclusions)
		assert.Equal(t, entities.OutputFormatJSON, settings.Output.Format)
		assert.Equal(t, "build/config.json", settings.Output.Path)
	})

	t.Run("should expand env vars in paths", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_BUILDCFG_ROOT", "/work/app")
		cfgFile := writeSettings(t, "document: ${TEST_BUILDCFG_ROOT}/build.gradle.kts\n")

		// when
		settings, err := entities.NewSettings(cfgFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/work/app/build.gradle.kts", settings.Document)
	})

	t.Run("should fail for nonexistent settings file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail for invalid YAML", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := writeSettings(t, "{{{{invalid yaml")

		// when
		_, err := entities.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should fail when an exclusion has no group", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := writeSettings(t, "exclusions:\n  - module: window\n")

		// when
		_, err := entities.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exclusions[0].group is required")
	})

	t.Run("should fail on an unsupported output format", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := writeSettings(t, "output:\n  format: toml\n")

		// when
		_, err := entities.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `output.format "toml" is not supported`)
	})

	t.Run("should fail on a descriptor value outside the framework namespace", func(t *testing.T) {
		t.Parallel()

		// given
		cfgFile := writeSettings(t, "descriptor:\n  values:\n    sdk.dir: /opt/android\n")

		// when
		_, err := entities.NewSettings(cfgFile)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "descriptor.values.sdk.dir must start with")
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("should return error when no config file exists", func(t *testing.T) {
		// given
		tmpDir := t.TempDir()
		t.Setenv("HOME", tmpDir)
		t.Chdir(tmpDir)

		// when
		path, err := entities.FindConfigFile()

		// then
		require.Error(t, err)
		assert.Empty(t, path)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("should find .buildcfg.yaml in current directory", func(t *testing.T) {
		// given
		tmpDir := t.TempDir()
		t.Setenv("HOME", tmpDir)
		t.Chdir(tmpDir)
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".buildcfg.yaml"), []byte("format: yaml"), 0o600))

		// when
		path, err := entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, ".buildcfg.yaml", path)
	})

	t.Run("should find buildcfg.yml under configs", func(t *testing.T) {
		// given
		tmpDir := t.TempDir()
		t.Setenv("HOME", tmpDir)
		t.Chdir(tmpDir)
		require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "configs"), 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "configs", "buildcfg.yml"), []byte("format: yaml"), 0o600))

		// when
		path, err := entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("configs", "buildcfg.yml"), path)
	})
}
