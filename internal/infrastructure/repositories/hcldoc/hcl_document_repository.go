package hcldoc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/internal/domain/repositories"
)

const documentName = "hcl"

// descriptorAttributes are the attributes reachable as flutter.<name> in a document.
//
//nolint:gochecknoglobals // read-only lookup table
var descriptorAttributes = []string{
	"minSdkVersion",
	"targetSdkVersion",
	"compileSdkVersion",
	"versionCode",
	"versionName",
}

// HCLDocumentRepository implements repositories.DocumentRepository for
// build documents written in HCL.
type HCLDocumentRepository struct{}

// NewHCLDocumentRepository creates a new HCL document reader.
func NewHCLDocumentRepository() repositories.DocumentRepository {
	return &HCLDocumentRepository{}
}

func (r *HCLDocumentRepository) Name() string { return documentName }

// Detect returns true for .hcl files.
func (r *HCLDocumentRepository) Detect(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".hcl")
}

type rawDocument struct {
	Plugins      []string        `hcl:"plugins,optional"`
	Android      *rawAndroid     `hcl:"android,block"`
	Exclusions   []rawExclusion  `hcl:"exclude,block"`
	Dependencies []rawDependency `hcl:"dependency,block"`
}

type rawAndroid struct {
	Namespace      string             `hcl:"namespace,optional"`
	CompileSdk     hcl.Expression     `hcl:"compile_sdk,optional"`
	SigningConfigs []string           `hcl:"signing_configs,optional"`
	CompileOptions *rawCompileOptions `hcl:"compile_options,block"`
	DefaultConfig  *rawDefaultConfig  `hcl:"default_config,block"`
	BuildTypes     []rawBuildType     `hcl:"build_type,block"`
}

type rawCompileOptions struct {
	JavaVersion           string `hcl:"java_version,optional"`
	CoreLibraryDesugaring bool   `hcl:"core_library_desugaring,optional"`
}

type rawDefaultConfig struct {
	ApplicationID   string         `hcl:"application_id,optional"`
	MinSdk          hcl.Expression `hcl:"min_sdk,optional"`
	TargetSdk       hcl.Expression `hcl:"target_sdk,optional"`
	VersionCode     hcl.Expression `hcl:"version_code,optional"`
	VersionName     hcl.Expression `hcl:"version_name,optional"`
	MultiDexEnabled bool           `hcl:"multi_dex_enabled,optional"`
}

type rawBuildType struct {
	Name            string   `hcl:"name,label"`
	Minify          bool     `hcl:"minify,optional"`
	ShrinkResources bool     `hcl:"shrink_resources,optional"`
	ProguardFiles   []string `hcl:"proguard_files,optional"`
	SigningConfig   string   `hcl:"signing_config,optional"`
}

type rawExclusion struct {
	Group  string `hcl:"group"`
	Module string `hcl:"module,optional"`
}

type rawDependency struct {
	Scope      string         `hcl:"scope,label"`
	Coordinate hcl.Expression `hcl:"coordinate"`
}

// Load reads and parses an HCL build document.
func (r *HCLDocumentRepository) Load(_ context.Context, path string) (*entities.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %q: %w", path, err)
	}

	logger.Debugf("[hcl] Parsing %s", path)
	return Parse(data, path)
}

// Parse converts HCL content into a project. source names the content in errors.
func Parse(data []byte, source string) (*entities.Project, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, source)
	if diags.HasErrors() {
		return nil, &entities.ParseError{Source: source, Line: firstLine(diags), Reason: "malformed HCL", Err: diags}
	}

	evalCtx := descriptorEvalContext()

	var raw rawDocument
	if decodeDiags := gohcl.DecodeBody(file.Body, evalCtx, &raw); decodeDiags.HasErrors() {
		return nil, &entities.ParseError{
			Source: source, Line: firstLine(decodeDiags), Reason: "invalid document structure", Err: decodeDiags,
		}
	}

	project := entities.NewProject(source)
	project.Plugins = raw.Plugins

	if raw.Android != nil {
		if err := applyAndroid(project, raw.Android, evalCtx); err != nil {
			return nil, err
		}
	}

	for _, exclusion := range raw.Exclusions {
		project.Exclusions = append(project.Exclusions, entities.DependencyExclusion{
			Group:  exclusion.Group,
			Module: exclusion.Module,
		})
	}

	for i, dep := range raw.Dependencies {
		spec, err := dependency(dep, i, source, evalCtx)
		if err != nil {
			return nil, err
		}
		project.Dependencies = append(project.Dependencies, spec)
	}

	if err := entities.CheckRequired(project); err != nil {
		return nil, err
	}
	return project, nil
}

func applyAndroid(project *entities.Project, android *rawAndroid, evalCtx *hcl.EvalContext) error {
	project.Namespace = android.Namespace
	project.SigningConfigs = android.SigningConfigs

	config := entities.BuildConfig{}
	if android.CompileOptions != nil {
		project.JavaVersion = android.CompileOptions.JavaVersion
		config.DesugaringEnabled = android.CompileOptions.CoreLibraryDesugaring
	}

	fields := []scalarField{
		{entities.FieldCompileSdk, android.CompileSdk, sdkApplier(entities.FieldCompileSdk)},
	}
	if defaults := android.DefaultConfig; defaults != nil {
		config.ApplicationID = defaults.ApplicationID
		config.MultiDexEnabled = defaults.MultiDexEnabled
		fields = append(fields,
			scalarField{entities.FieldMinSdk, defaults.MinSdk, sdkApplier(entities.FieldMinSdk)},
			scalarField{entities.FieldTargetSdk, defaults.TargetSdk, sdkApplier(entities.FieldTargetSdk)},
			scalarField{entities.FieldVersionCode, defaults.VersionCode, entities.ApplyVersionCode},
			scalarField{entities.FieldVersionName, defaults.VersionName, entities.ApplyVersionName},
		)
	}

	for _, field := range fields {
		value, err := evalString(field.expr, evalCtx)
		if err == nil {
			config, err = field.apply(config, value)
		}
		if err != nil {
			return &entities.ParseError{
				Source: project.Source,
				Line:   exprLine(field.expr),
				Field:  field.name,
				Reason: "malformed value",
				Err:    err,
			}
		}
	}
	project.Config = config

	for _, buildType := range android.BuildTypes {
		project.BuildTypes[buildType.Name] = entities.BuildTypeConfig{
			Minify:           buildType.Minify,
			ShrinkResources:  buildType.ShrinkResources,
			ProguardFiles:    buildType.ProguardFiles,
			SigningConfigRef: buildType.SigningConfig,
		}
	}
	return nil
}

// applyFunc stores a raw scalar into the build configuration.
type applyFunc func(entities.BuildConfig, string) (entities.BuildConfig, error)

type scalarField struct {
	name  string
	expr  hcl.Expression
	apply applyFunc
}

func sdkApplier(field string) applyFunc {
	return func(config entities.BuildConfig, raw string) (entities.BuildConfig, error) {
		return entities.ApplySdkValue(config, field, raw)
	}
}

func dependency(
	dep rawDependency,
	index int,
	source string,
	evalCtx *hcl.EvalContext,
) (entities.DependencySpec, error) {
	field := fmt.Sprintf("dependency[%d]", index)

	scope, err := entities.ParseDependencyScope(dep.Scope)
	if err != nil {
		return entities.DependencySpec{}, &entities.ParseError{
			Source: source, Line: exprLine(dep.Coordinate), Field: field + ".scope", Reason: "malformed value", Err: err,
		}
	}

	coordinate, err := evalString(dep.Coordinate, evalCtx)
	if err == nil {
		_, err = entities.ParseCoordinate(coordinate)
	}
	if err != nil {
		return entities.DependencySpec{}, &entities.ParseError{
			Source: source, Line: exprLine(dep.Coordinate), Field: field + ".coordinate", Reason: "malformed value", Err: err,
		}
	}

	return entities.DependencySpec{Coordinate: coordinate, Scope: scope}, nil
}

// descriptorEvalContext exposes flutter.<attr> as a string naming the
// descriptor key, so references survive parsing and are resolved later.
func descriptorEvalContext() *hcl.EvalContext {
	attrs := make(map[string]cty.Value, len(descriptorAttributes))
	for _, name := range descriptorAttributes {
		attrs[name] = cty.StringVal(entities.DescriptorNamespace + "." + name)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			entities.DescriptorNamespace: cty.ObjectVal(attrs),
		},
	}
}

// evalString evaluates expr to a string; a null value yields "".
func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	if expr == nil {
		return "", nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		return "", nil
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("expected a string or number: %w", err)
	}
	if !converted.IsKnown() || converted.IsNull() {
		return "", nil
	}
	return converted.AsString(), nil
}

func exprLine(expr hcl.Expression) int {
	if expr == nil {
		return 0
	}
	return expr.Range().Start.Line
}

func firstLine(diags hcl.Diagnostics) int {
	for _, diag := range diags {
		if diag.Subject != nil {
			return diag.Subject.Start.Line
		}
	}
	return 0
}
