//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
)

// BuildConfigBuilder helps create test build configurations with a fluent interface.
type BuildConfigBuilder struct {
	*testkit.BaseBuilder
	applicationID     string
	minSdk            int
	targetSdk         int
	compileSdk        int
	versionCode       int
	versionName       string
	multiDexEnabled   bool
	desugaringEnabled bool
	refs              map[string]string
}

// NewBuildConfigBuilder creates a new build config builder with sensible defaults.
func NewBuildConfigBuilder() *BuildConfigBuilder {
	b := &BuildConfigBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.defaults()
	return b
}

func (b *BuildConfigBuilder) defaults() {
	b.applicationID = "com.example.app"
	b.minSdk = 21
	b.targetSdk = 33
	b.compileSdk = 33
	b.versionCode = 1
	b.versionName = "1.0.0"
	b.multiDexEnabled = false
	b.desugaringEnabled = false
	b.refs = nil
}

// WithApplicationID sets the application ID.
func (b *BuildConfigBuilder) WithApplicationID(id string) *BuildConfigBuilder {
	b.applicationID = id
	return b
}

// WithSdks sets minSdk, targetSdk and compileSdk at once.
func (b *BuildConfigBuilder) WithSdks(minSdk, targetSdk, compileSdk int) *BuildConfigBuilder {
	b.minSdk = minSdk
	b.targetSdk = targetSdk
	b.compileSdk = compileSdk
	return b
}

// WithVersion sets the version code and name.
func (b *BuildConfigBuilder) WithVersion(code int, name string) *BuildConfigBuilder {
	b.versionCode = code
	b.versionName = name
	return b
}

// WithMultiDex toggles multidex.
func (b *BuildConfigBuilder) WithMultiDex(enabled bool) *BuildConfigBuilder {
	b.multiDexEnabled = enabled
	return b
}

// WithDesugaring toggles core library desugaring.
func (b *BuildConfigBuilder) WithDesugaring(enabled bool) *BuildConfigBuilder {
	b.desugaringEnabled = enabled
	return b
}

// WithRef binds a field to a descriptor key.
func (b *BuildConfigBuilder) WithRef(field, key string) *BuildConfigBuilder {
	if b.refs == nil {
		b.refs = make(map[string]string)
	}
	b.refs[field] = key
	return b
}

// Build creates the build config (satisfies testkit.Builder interface).
func (b *BuildConfigBuilder) Build() interface{} {
	return b.BuildConfig()
}

// BuildConfig creates the build config with a concrete return type.
func (b *BuildConfigBuilder) BuildConfig() entities.BuildConfig {
	var refs map[string]string
	if b.refs != nil {
		refs = make(map[string]string, len(b.refs))
		for k, v := range b.refs {
			refs[k] = v
		}
	}
	return entities.BuildConfig{
		ApplicationID:     b.applicationID,
		MinSdk:            b.minSdk,
		TargetSdk:         b.targetSdk,
		CompileSdk:        b.compileSdk,
		VersionCode:       b.versionCode,
		VersionName:       b.versionName,
		MultiDexEnabled:   b.multiDexEnabled,
		DesugaringEnabled: b.desugaringEnabled,
		Refs:              refs,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *BuildConfigBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.defaults()
	return b
}

// Clone creates a deep copy of the BuildConfigBuilder.
func (b *BuildConfigBuilder) Clone() testkit.Builder {
	clone := *b
	clone.BaseBuilder = b.BaseBuilder.Clone().(*testkit.BaseBuilder)
	if b.refs != nil {
		clone.refs = make(map[string]string, len(b.refs))
		for k, v := range b.refs {
			clone.refs[k] = v
		}
	}
	return &clone
}
