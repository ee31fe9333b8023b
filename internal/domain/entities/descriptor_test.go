//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
)

func TestExternalDescriptor(t *testing.T) {
	t.Parallel()

	t.Run("should treat blank values as missing", func(t *testing.T) {
		t.Parallel()

		// given
		descriptor := entities.NewExternalDescriptor("local.properties", map[string]string{"flutter.versionName": "  "})

		// when
		_, ok := descriptor.Lookup("flutter.versionName")

		// then
		assert.False(t, ok)
	})

	t.Run("should be safe to look up on a nil descriptor", func(t *testing.T) {
		t.Parallel()

		// given
		var descriptor *entities.ExternalDescriptor

		// when
		_, ok := descriptor.Lookup("flutter.minSdkVersion")

		// then
		assert.False(t, ok)
	})

	t.Run("should let overlay values win", func(t *testing.T) {
		t.Parallel()

		// given
		descriptor := entities.NewExternalDescriptor("local.properties", map[string]string{
			"flutter.minSdkVersion": "21",
			"flutter.versionCode":   "1",
		})

		// when
		merged := descriptor.Overlay("settings", map[string]string{"flutter.minSdkVersion": "24"})

		// then
		require.NotNil(t, merged)
		assert.Equal(t, "local.properties", merged.Source)
		value, _ := merged.Lookup("flutter.minSdkVersion")
		assert.Equal(t, "24", value)
		value, _ = merged.Lookup("flutter.versionCode")
		assert.Equal(t, "1", value)
		assert.Equal(t, "21", descriptor.Values["flutter.minSdkVersion"])
	})

	t.Run("should build a descriptor from overlay values alone", func(t *testing.T) {
		t.Parallel()

		// given
		var descriptor *entities.ExternalDescriptor

		// when
		merged := descriptor.Overlay("settings", map[string]string{"flutter.minSdkVersion": "24"})

		// then
		require.NotNil(t, merged)
		assert.Equal(t, "settings", merged.Source)
	})

	t.Run("should stay nil when nothing is known", func(t *testing.T) {
		t.Parallel()

		// given
		var descriptor *entities.ExternalDescriptor

		// when
		merged := descriptor.Overlay("settings", nil)

		// then
		assert.Nil(t, merged)
	})
}
