package yamldoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/internal/domain/repositories"
)

const (
	documentName = "yaml"
	nullTag      = "!!null"
)

var errNotScalar = errors.New("expected a single value, not a list or mapping")

// YAMLDocumentRepository implements repositories.DocumentRepository for
// build documents written in YAML.
type YAMLDocumentRepository struct{}

// NewYAMLDocumentRepository creates a new YAML document reader.
func NewYAMLDocumentRepository() repositories.DocumentRepository {
	return &YAMLDocumentRepository{}
}

func (r *YAMLDocumentRepository) Name() string { return documentName }

// Detect returns true for .yaml and .yml files.
func (r *YAMLDocumentRepository) Detect(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// rawDocument mirrors the YAML layout. Scalars that need validation are kept
// as nodes so errors can point at the offending line.
type rawDocument struct {
	Plugins      []string                       `yaml:"plugins"`
	Android      rawAndroid                     `yaml:"android"`
	Exclusions   []entities.DependencyExclusion `yaml:"exclusions"`
	Dependencies []rawDependency                `yaml:"dependencies"`
}

type rawAndroid struct {
	Namespace      string                  `yaml:"namespace"`
	CompileSdk     yaml.Node               `yaml:"compileSdk"`
	CompileOptions rawCompileOptions       `yaml:"compileOptions"`
	DefaultConfig  rawDefaultConfig        `yaml:"defaultConfig"`
	SigningConfigs []string                `yaml:"signingConfigs"`
	BuildTypes     map[string]rawBuildType `yaml:"buildTypes"`
}

type rawCompileOptions struct {
	JavaVersion           string `yaml:"javaVersion"`
	CoreLibraryDesugaring bool   `yaml:"coreLibraryDesugaring"`
}

type rawDefaultConfig struct {
	ApplicationID   string    `yaml:"applicationId"`
	MinSdk          yaml.Node `yaml:"minSdk"`
	TargetSdk       yaml.Node `yaml:"targetSdk"`
	VersionCode     yaml.Node `yaml:"versionCode"`
	VersionName     yaml.Node `yaml:"versionName"`
	MultiDexEnabled bool      `yaml:"multiDexEnabled"`
}

type rawBuildType struct {
	Minify          bool     `yaml:"minify"`
	ShrinkResources bool     `yaml:"shrinkResources"`
	ProguardFiles   []string `yaml:"proguardFiles"`
	SigningConfig   string   `yaml:"signingConfig"`
}

type rawDependency struct {
	Coordinate yaml.Node `yaml:"coordinate"`
	Scope      yaml.Node `yaml:"scope"`
}

// Load reads and parses a YAML build document.
func (r *YAMLDocumentRepository) Load(_ context.Context, path string) (*entities.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %q: %w", path, err)
	}

	logger.Debugf("[yaml] Parsing %s", path)
	return Parse(data, path)
}

// Parse converts YAML content into a project. source names the content in errors.
func Parse(data []byte, source string) (*entities.Project, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var raw rawDocument
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &entities.ParseError{Source: source, Reason: "document is empty"}
		}
		return nil, &entities.ParseError{Source: source, Reason: "malformed YAML", Err: err}
	}

	project := entities.NewProject(source)
	project.Plugins = raw.Plugins
	project.Namespace = raw.Android.Namespace
	project.JavaVersion = raw.Android.CompileOptions.JavaVersion
	project.SigningConfigs = raw.Android.SigningConfigs
	project.Exclusions = raw.Exclusions

	config, err := buildConfig(raw.Android, source)
	if err != nil {
		return nil, err
	}
	project.Config = config

	for name, buildType := range raw.Android.BuildTypes {
		project.BuildTypes[name] = entities.BuildTypeConfig{
			Minify:           buildType.Minify,
			ShrinkResources:  buildType.ShrinkResources,
			ProguardFiles:    buildType.ProguardFiles,
			SigningConfigRef: buildType.SigningConfig,
		}
	}

	for i, exclusion := range project.Exclusions {
		if exclusion.Group == "" {
			return nil, &entities.ParseError{
				Source: source,
				Field:  fmt.Sprintf("exclusions[%d].group", i),
				Reason: "required key is missing",
			}
		}
	}

	for i, dep := range raw.Dependencies {
		spec, depErr := dependency(dep, i, source)
		if depErr != nil {
			return nil, depErr
		}
		project.Dependencies = append(project.Dependencies, spec)
	}

	if requiredErr := entities.CheckRequired(project); requiredErr != nil {
		return nil, requiredErr
	}
	return project, nil
}

func buildConfig(android rawAndroid, source string) (entities.BuildConfig, error) {
	defaults := android.DefaultConfig
	config := entities.BuildConfig{
		ApplicationID:     defaults.ApplicationID,
		MultiDexEnabled:   defaults.MultiDexEnabled,
		DesugaringEnabled: android.CompileOptions.CoreLibraryDesugaring,
	}

	sdkFields := []struct {
		field string
		node  yaml.Node
	}{
		{entities.FieldCompileSdk, android.CompileSdk},
		{entities.FieldMinSdk, defaults.MinSdk},
		{entities.FieldTargetSdk, defaults.TargetSdk},
	}
	for _, sdk := range sdkFields {
		raw, err := scalar(source, sdk.field, sdk.node)
		if err != nil {
			return config, err
		}
		if config, err = entities.ApplySdkValue(config, sdk.field, raw); err != nil {
			return config, fieldError(source, sdk.field, sdk.node, err)
		}
	}

	code, err := scalar(source, entities.FieldVersionCode, defaults.VersionCode)
	if err != nil {
		return config, err
	}
	if config, err = entities.ApplyVersionCode(config, code); err != nil {
		return config, fieldError(source, entities.FieldVersionCode, defaults.VersionCode, err)
	}

	name, err := scalar(source, entities.FieldVersionName, defaults.VersionName)
	if err != nil {
		return config, err
	}
	if config, err = entities.ApplyVersionName(config, name); err != nil {
		return config, fieldError(source, entities.FieldVersionName, defaults.VersionName, err)
	}
	return config, nil
}

// scalar returns the text of node. An absent or null node is "".
func scalar(source, field string, node yaml.Node) (string, error) {
	switch {
	case node.Kind == 0:
		return "", nil
	case node.Kind != yaml.ScalarNode:
		return "", fieldError(source, field, node, errNotScalar)
	case node.Tag == nullTag:
		return "", nil
	}
	return node.Value, nil
}

func dependency(dep rawDependency, index int, source string) (entities.DependencySpec, error) {
	field := fmt.Sprintf("dependencies[%d]", index)
	coordinate, err := scalar(source, field+".coordinate", dep.Coordinate)
	if err != nil {
		return entities.DependencySpec{}, err
	}
	if _, err = entities.ParseCoordinate(coordinate); err != nil {
		return entities.DependencySpec{}, fieldError(source, field+".coordinate", dep.Coordinate, err)
	}

	scopeName, err := scalar(source, field+".scope", dep.Scope)
	if err != nil {
		return entities.DependencySpec{}, err
	}
	if scopeName == "" {
		scopeName = string(entities.ScopeImplementation)
	}
	scope, err := entities.ParseDependencyScope(scopeName)
	if err != nil {
		return entities.DependencySpec{}, fieldError(source, field+".scope", dep.Scope, err)
	}
	return entities.DependencySpec{Coordinate: coordinate, Scope: scope}, nil
}

func fieldError(source, field string, node yaml.Node, err error) error {
	return &entities.ParseError{
		Source: source,
		Line:   node.Line,
		Field:  field,
		Reason: "malformed value",
		Err:    err,
	}
}
