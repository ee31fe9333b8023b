//go:build unit

package properties_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/internal/infrastructure/repositories/properties"
)

const sampleDescriptor = `sdk.dir=/opt/android-sdk
flutter.sdk=/opt/flutter
flutter.buildMode=release
flutter.versionName=1.0.0
flutter.versionCode=1
flutter.minSdkVersion=21
flutter.targetSdkVersion=34
flutter.compileSdkVersion=35
`

func TestPropertiesDescriptorRepository_Locate(t *testing.T) {
	t.Parallel()

	t.Run("should find the descriptor beside the document", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		descriptor := filepath.Join(root, properties.DescriptorFileName)
		require.NoError(t, os.WriteFile(descriptor, []byte(sampleDescriptor), 0o600))
		repo := properties.NewPropertiesDescriptorRepository()

		// when
		located := repo.Locate(filepath.Join(root, "build.gradle.kts"))

		// then
		assert.Equal(t, descriptor, located)
	})

	t.Run("should find the descriptor one directory up", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		app := filepath.Join(root, "app")
		require.NoError(t, os.Mkdir(app, 0o750))
		descriptor := filepath.Join(root, properties.DescriptorFileName)
		require.NoError(t, os.WriteFile(descriptor, []byte(sampleDescriptor), 0o600))
		repo := properties.NewPropertiesDescriptorRepository()

		// when
		located := repo.Locate(filepath.Join(app, "build.gradle.kts"))

		// then
		assert.Equal(t, descriptor, located)
	})

	t.Run("should return empty when there is no descriptor", func(t *testing.T) {
		t.Parallel()

		// given
		repo := properties.NewPropertiesDescriptorRepository()

		// when
		located := repo.Locate(filepath.Join(t.TempDir(), "app", "build.gradle.kts"))

		// then
		assert.Empty(t, located)
	})
}

func TestPropertiesDescriptorRepository_Load(t *testing.T) {
	t.Parallel()

	t.Run("should read every key", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), properties.DescriptorFileName)
		require.NoError(t, os.WriteFile(path, []byte(sampleDescriptor), 0o600))
		repo := properties.NewPropertiesDescriptorRepository()

		// when
		descriptor, err := repo.Load(context.Background(), path)

		// then
		require.NoError(t, err)
		assert.Equal(t, path, descriptor.Source)
		value, ok := descriptor.Lookup(entities.DescriptorMinSdkKey)
		assert.True(t, ok)
		assert.Equal(t, "21", value)
		value, _ = descriptor.Lookup("sdk.dir")
		assert.Equal(t, "/opt/android-sdk", value)
	})

	t.Run("should read Java properties syntax literally", func(t *testing.T) {
		t.Parallel()

		// given
		content := "! generated by the framework tooling\n" +
			"# do not edit\n" +
			"sdk.dir=/home/$USER/android-sdk\n" +
			"flutter.minSdkVersion 23\n" +
			"flutter.versionName: 1.0.0 #beta\n" +
			"flutter.buildMode = release\n"
		path := filepath.Join(t.TempDir(), properties.DescriptorFileName)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		repo := properties.NewPropertiesDescriptorRepository()

		// when
		descriptor, err := repo.Load(context.Background(), path)

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"sdk.dir":               "/home/$USER/android-sdk",
			"flutter.minSdkVersion": "23",
			"flutter.versionName":   "1.0.0 #beta",
			"flutter.buildMode":     "release",
		}, descriptor.Values)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		repo := properties.NewPropertiesDescriptorRepository()

		// when
		_, err := repo.Load(context.Background(), filepath.Join(t.TempDir(), properties.DescriptorFileName))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read descriptor")
	})
}
