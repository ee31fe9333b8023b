package gradle

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/internal/domain/repositories"
)

const documentName = "gradle"

var (
	assignmentPattern  = regexp.MustCompile(`^([A-Za-z_]\w*)\s*=\s*(.+)$`)
	callPattern        = regexp.MustCompile(`(?s)^([A-Za-z_]\w*)\s*\((.*)\)$`)
	stringPattern      = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
	namedArgPattern    = regexp.MustCompile(`(\w+)\s*=\s*"([^"]*)"`)
	javaVersionPattern = regexp.MustCompile(`^JavaVersion\.VERSION_(\d+(?:_\d+)?)`)
	signingRefPattern  = regexp.MustCompile(`signingConfigs(?:\.getByName\(\s*"([^"]+)"\s*\)|\[\s*"([^"]+)"\s*]|\.(\w+))`)
	namedBlockPattern  = regexp.MustCompile(`^(?:getByName|create|maybeCreate|named|register)\s*\(\s*"([^"]+)"`)
)

// GradleDocumentRepository implements repositories.DocumentRepository for
// the Kotlin DSL subset used by an application module's build.gradle.kts.
type GradleDocumentRepository struct{}

// NewGradleDocumentRepository creates a new Gradle Kotlin DSL reader.
func NewGradleDocumentRepository() repositories.DocumentRepository {
	return &GradleDocumentRepository{}
}

func (r *GradleDocumentRepository) Name() string { return documentName }

// Detect returns true for Kotlin DSL build scripts.
func (r *GradleDocumentRepository) Detect(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gradle.kts")
}

// Load reads and interprets a build.gradle.kts file.
func (r *GradleDocumentRepository) Load(_ context.Context, path string) (*entities.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %q: %w", path, err)
	}

	logger.Debugf("[gradle] Parsing %s", path)
	return Parse(string(data), path)
}

// Parse interprets Kotlin DSL content. source names the content in errors.
func Parse(content, source string) (*entities.Project, error) {
	events, err := tokenize(content, source)
	if err != nil {
		return nil, err
	}

	in := &interpreter{project: entities.NewProject(source), source: source}
	for _, ev := range events {
		if evErr := in.handle(ev); evErr != nil {
			return nil, evErr
		}
	}
	if len(in.stack) > 0 {
		return nil, &entities.ParseError{
			Source: source,
			Reason: fmt.Sprintf("block %q is never closed", strings.Join(in.stack, " > ")),
		}
	}

	if requiredErr := entities.CheckRequired(in.project); requiredErr != nil {
		return nil, requiredErr
	}
	return in.project, nil
}

// interpreter walks the events keeping the stack of enclosing block names.
type interpreter struct {
	project *entities.Project
	source  string
	stack   []string
}

func (in *interpreter) handle(ev event) error {
	switch ev.kind {
	case eventOpen:
		name := blockName(ev.text)
		switch {
		case in.at("android", "buildTypes"):
			if _, ok := in.project.BuildTypes[name]; !ok {
				in.project.BuildTypes[name] = entities.BuildTypeConfig{}
			}
		case in.at("android", "signingConfigs"):
			in.project.SigningConfigs = append(in.project.SigningConfigs, name)
		}
		in.stack = append(in.stack, name)
		return nil
	case eventClose:
		if len(in.stack) == 0 {
			return &entities.ParseError{Source: in.source, Line: ev.line, Reason: "unbalanced '}'"}
		}
		in.stack = in.stack[:len(in.stack)-1]
		return nil
	default:
		return in.statement(ev.text, ev.line)
	}
}

func (in *interpreter) statement(text string, line int) error {
	switch {
	case in.at("plugins"):
		in.plugin(text)
	case in.at("android"):
		return in.android(text, line)
	case in.at("android", "defaultConfig"):
		return in.defaultConfig(text, line)
	case in.at("android", "compileOptions"):
		return in.compileOptions(text, line)
	case len(in.stack) == 3 && in.stack[0] == "android" && in.stack[1] == "buildTypes":
		return in.buildType(in.stack[2], text, line)
	case len(in.stack) > 0 && strings.HasPrefix(in.stack[0], "configurations"):
		return in.exclusion(text, line)
	case in.at("dependencies"):
		return in.dependency(text, line)
	default:
		logger.Debugf("[gradle] %s:%d: ignoring %q", in.source, line, text)
	}
	return nil
}

func (in *interpreter) plugin(text string) {
	name, args, ok := call(text)
	if !ok {
		return
	}
	literals := stringLiterals(args)
	if len(literals) == 0 {
		return
	}
	switch name {
	case "id":
		in.project.Plugins = append(in.project.Plugins, literals[0])
	case "kotlin":
		in.project.Plugins = append(in.project.Plugins, "org.jetbrains.kotlin."+literals[0])
	}
}

func (in *interpreter) android(text string, line int) error {
	key, value, ok := property(text)
	if !ok {
		return nil
	}
	switch key {
	case "namespace":
		in.project.Namespace = value
	case "compileSdk", "compileSdkVersion":
		return in.applyConfig(entities.FieldCompileSdk, line, func(c entities.BuildConfig) (entities.BuildConfig, error) {
			return entities.ApplySdkValue(c, entities.FieldCompileSdk, value)
		})
	}
	return nil
}

func (in *interpreter) defaultConfig(text string, line int) error {
	key, value, ok := property(text)
	if !ok {
		return nil
	}
	config := &in.project.Config
	switch key {
	case "applicationId":
		config.ApplicationID = value
	case "minSdk", "minSdkVersion":
		return in.applyConfig(entities.FieldMinSdk, line, func(c entities.BuildConfig) (entities.BuildConfig, error) {
			return entities.ApplySdkValue(c, entities.FieldMinSdk, value)
		})
	case "targetSdk", "targetSdkVersion":
		return in.applyConfig(entities.FieldTargetSdk, line, func(c entities.BuildConfig) (entities.BuildConfig, error) {
			return entities.ApplySdkValue(c, entities.FieldTargetSdk, value)
		})
	case "versionCode":
		return in.applyConfig(entities.FieldVersionCode, line, func(c entities.BuildConfig) (entities.BuildConfig, error) {
			return entities.ApplyVersionCode(c, value)
		})
	case "versionName":
		return in.applyConfig(entities.FieldVersionName, line, func(c entities.BuildConfig) (entities.BuildConfig, error) {
			return entities.ApplyVersionName(c, value)
		})
	case "multiDexEnabled":
		enabled, err := in.boolean(key, value, line)
		if err != nil {
			return err
		}
		config.MultiDexEnabled = enabled
	}
	return nil
}

func (in *interpreter) compileOptions(text string, line int) error {
	key, value, ok := property(text)
	if !ok {
		return nil
	}
	switch key {
	case "isCoreLibraryDesugaringEnabled", "coreLibraryDesugaringEnabled":
		enabled, err := in.boolean(key, value, line)
		if err != nil {
			return err
		}
		in.project.Config.DesugaringEnabled = enabled
	case "sourceCompatibility", "targetCompatibility":
		if in.project.JavaVersion == "" {
			in.project.JavaVersion = value
		}
	}
	return nil
}

func (in *interpreter) buildType(name, text string, line int) error {
	buildType := in.project.BuildTypes[name]

	if fn, args, ok := call(text); ok && fn == "proguardFiles" {
		buildType.ProguardFiles = append(buildType.ProguardFiles, stringLiterals(args)...)
		in.project.BuildTypes[name] = buildType
		return nil
	}

	key, value, ok := property(text)
	if !ok {
		return nil
	}
	var err error
	switch key {
	case "isMinifyEnabled", "minifyEnabled":
		buildType.Minify, err = in.boolean(key, value, line)
	case "isShrinkResources", "shrinkResources":
		buildType.ShrinkResources, err = in.boolean(key, value, line)
	case "signingConfig":
		buildType.SigningConfigRef = value
	}
	if err != nil {
		return err
	}
	in.project.BuildTypes[name] = buildType
	return nil
}

func (in *interpreter) exclusion(text string, line int) error {
	fn, args, ok := call(text)
	if !ok || fn != "exclude" {
		return nil
	}

	exclusion := entities.DependencyExclusion{}
	for _, match := range namedArgPattern.FindAllStringSubmatch(args, -1) {
		switch match[1] {
		case "group":
			exclusion.Group = match[2]
		case "module":
			exclusion.Module = match[2]
		}
	}
	if exclusion.Group == "" {
		return &entities.ParseError{Source: in.source, Line: line, Field: "exclude", Reason: "group is required"}
	}
	in.project.Exclusions = append(in.project.Exclusions, exclusion)
	return nil
}

func (in *interpreter) dependency(text string, line int) error {
	fn, args, ok := call(text)
	if !ok {
		return nil
	}
	scope, err := entities.ParseDependencyScope(fn)
	if err != nil {
		logger.Debugf("[gradle] %s:%d: skipping %s dependency", in.source, line, fn)
		return nil //nolint:nilerr // other configurations are not part of the model
	}

	literals := stringLiterals(args)
	if len(literals) != 1 || strings.Contains(args, "(") {
		logger.Debugf("[gradle] %s:%d: skipping non-literal dependency %q", in.source, line, text)
		return nil
	}
	if _, parseErr := entities.ParseCoordinate(literals[0]); parseErr != nil {
		return &entities.ParseError{Source: in.source, Line: line, Field: fn, Reason: "malformed coordinate", Err: parseErr}
	}

	in.project.Dependencies = append(in.project.Dependencies, entities.DependencySpec{
		Coordinate: literals[0],
		Scope:      scope,
	})
	return nil
}

func (in *interpreter) applyConfig(
	field string,
	line int,
	apply func(entities.BuildConfig) (entities.BuildConfig, error),
) error {
	config, err := apply(in.project.Config)
	if err != nil {
		return &entities.ParseError{Source: in.source, Line: line, Field: field, Reason: "malformed value", Err: err}
	}
	in.project.Config = config
	return nil
}

func (in *interpreter) boolean(key, value string, line int) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, &entities.ParseError{
			Source: in.source, Line: line, Field: key, Reason: fmt.Sprintf("expected true or false, got %q", value),
		}
	}
	return b, nil
}

// at reports whether the current block path is exactly path.
func (in *interpreter) at(path ...string) bool {
	if len(in.stack) != len(path) {
		return false
	}
	for i := range path {
		if in.stack[i] != path[i] {
			return false
		}
	}
	return true
}

// blockName extracts the name of a block from its header:
// `release` -> release, `getByName("release")` -> release.
func blockName(header string) string {
	if match := namedBlockPattern.FindStringSubmatch(header); match != nil {
		return match[1]
	}
	if idx := strings.IndexAny(header, "(<"); idx >= 0 {
		return strings.TrimSpace(header[:idx])
	}
	return strings.TrimSpace(header)
}

// property parses `key = value` and normalizes the right-hand side.
func property(text string) (string, string, bool) {
	match := assignmentPattern.FindStringSubmatch(text)
	if match == nil {
		if fn, args, ok := call(text); ok && !strings.Contains(args, "(") {
			return fn, value(args), true
		}
		return "", "", false
	}
	return match[1], value(match[2]), true
}

func call(text string) (string, string, bool) {
	match := callPattern.FindStringSubmatch(text)
	if match == nil {
		return "", "", false
	}
	return match[1], match[2], true
}

// value turns a Kotlin expression into the plain value it denotes.
func value(expr string) string {
	expr = strings.TrimSpace(expr)
	expr = strings.TrimSuffix(expr, ".toString()")

	if match := signingRefPattern.FindStringSubmatch(expr); match != nil {
		for _, group := range match[1:] {
			if group != "" {
				return group
			}
		}
	}
	if match := javaVersionPattern.FindStringSubmatch(expr); match != nil {
		return strings.ReplaceAll(match[1], "_", ".")
	}
	if strings.HasPrefix(expr, `"`) && strings.HasSuffix(expr, `"`) && len(expr) >= 2 { //nolint:mnd // quotes
		if unquoted, err := strconv.Unquote(expr); err == nil {
			return unquoted
		}
		return expr[1 : len(expr)-1]
	}
	return expr
}

func stringLiterals(args string) []string {
	matches := stringPattern.FindAllStringSubmatch(args, -1)
	literals := make([]string, 0, len(matches))
	for _, match := range matches {
		literals = append(literals, match[1])
	}
	return literals
}
