//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
)

// ProjectBuilder helps create test projects with a fluent interface.
type ProjectBuilder struct {
	*testkit.BaseBuilder
	source         string
	plugins        []string
	config         entities.BuildConfig
	buildTypes     map[string]entities.BuildTypeConfig
	signingConfigs []string
	exclusions     []entities.DependencyExclusion
	dependencies   []entities.DependencySpec
}

// NewProjectBuilder creates a new project builder with a valid default config.
func NewProjectBuilder() *ProjectBuilder {
	b := &ProjectBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.defaults()
	return b
}

func (b *ProjectBuilder) defaults() {
	b.source = "build.gradle.kts"
	b.plugins = []string{
		entities.PluginAndroidApplication,
		entities.PluginKotlinAndroid,
		entities.PluginFlutter,
	}
	b.config = NewBuildConfigBuilder().BuildConfig()
	b.buildTypes = map[string]entities.BuildTypeConfig{
		entities.BuildTypeRelease: {SigningConfigRef: entities.DefaultSigningConfig},
		entities.BuildTypeDebug:   {},
	}
	b.signingConfigs = nil
	b.exclusions = nil
	b.dependencies = nil
}

// WithSource sets the document path.
func (b *ProjectBuilder) WithSource(source string) *ProjectBuilder {
	b.source = source
	return b
}

// WithPlugins replaces the plugin list.
func (b *ProjectBuilder) WithPlugins(plugins ...string) *ProjectBuilder {
	b.plugins = plugins
	return b
}

// WithConfig sets the default build configuration.
func (b *ProjectBuilder) WithConfig(config entities.BuildConfig) *ProjectBuilder {
	b.config = config
	return b
}

// WithBuildType sets one build variant.
func (b *ProjectBuilder) WithBuildType(name string, buildType entities.BuildTypeConfig) *ProjectBuilder {
	b.buildTypes[name] = buildType
	return b
}

// WithSigningConfigs declares signing config names.
func (b *ProjectBuilder) WithSigningConfigs(names ...string) *ProjectBuilder {
	b.signingConfigs = names
	return b
}

// WithExclusion appends a dependency exclusion.
func (b *ProjectBuilder) WithExclusion(group, module string) *ProjectBuilder {
	b.exclusions = append(b.exclusions, entities.DependencyExclusion{Group: group, Module: module})
	return b
}

// WithDependency appends a dependency.
func (b *ProjectBuilder) WithDependency(scope entities.DependencyScope, coordinate string) *ProjectBuilder {
	b.dependencies = append(b.dependencies, entities.DependencySpec{Coordinate: coordinate, Scope: scope})
	return b
}

// Build creates the project (satisfies testkit.Builder interface).
func (b *ProjectBuilder) Build() interface{} {
	return b.BuildProject()
}

// BuildProject creates the project with a concrete return type.
func (b *ProjectBuilder) BuildProject() *entities.Project {
	buildTypes := make(map[string]entities.BuildTypeConfig, len(b.buildTypes))
	for name, buildType := range b.buildTypes {
		buildTypes[name] = buildType
	}
	return &entities.Project{
		Source:         b.source,
		Plugins:        append([]string(nil), b.plugins...),
		Config:         b.config,
		BuildTypes:     buildTypes,
		SigningConfigs: append([]string(nil), b.signingConfigs...),
		Exclusions:     append([]entities.DependencyExclusion(nil), b.exclusions...),
		Dependencies:   append([]entities.DependencySpec(nil), b.dependencies...),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ProjectBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.defaults()
	return b
}

// Clone creates a deep copy of the ProjectBuilder.
func (b *ProjectBuilder) Clone() testkit.Builder {
	clone := &ProjectBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		source:         b.source,
		plugins:        append([]string(nil), b.plugins...),
		config:         b.config,
		buildTypes:     make(map[string]entities.BuildTypeConfig, len(b.buildTypes)),
		signingConfigs: append([]string(nil), b.signingConfigs...),
		exclusions:     append([]entities.DependencyExclusion(nil), b.exclusions...),
		dependencies:   append([]entities.DependencySpec(nil), b.dependencies...),
	}
	for name, buildType := range b.buildTypes {
		clone.buildTypes[name] = buildType
	}
	return clone
}
