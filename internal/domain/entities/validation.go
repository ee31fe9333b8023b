package entities

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
)

// applicationIDPattern accepts reverse-domain identifiers with at least two
// segments, each starting with a letter.
var applicationIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(\.[A-Za-z][A-Za-z0-9_]*)+$`)

// Validate checks the invariants of a single build configuration.
func Validate(config BuildConfig) error {
	return asValidationError(configViolations(config))
}

// ValidateProject checks the build configuration together with its build
// types, signing references, desugaring setup and plugin order. Every
// violation is reported at once.
func ValidateProject(project *Project) error {
	violations := configViolations(project.Config)
	violations = append(violations, buildTypeViolations(project)...)

	if project.Config.DesugaringEnabled && !project.HasDependencyIn(ScopeCoreLibraryDesugaring) {
		violations = append(violations,
			"core library desugaring is enabled but no coreLibraryDesugaring dependency is declared")
	}

	violations = append(violations, pluginOrderViolations(project.Plugins)...)
	return asValidationError(violations)
}

func configViolations(config BuildConfig) []string {
	var violations []string

	switch {
	case config.ApplicationID == "":
		violations = append(violations, "applicationId is required")
	case !applicationIDPattern.MatchString(config.ApplicationID):
		violations = append(violations,
			fmt.Sprintf("applicationId %q is not a reverse-domain identifier", config.ApplicationID))
	}

	if config.MinSdk > config.TargetSdk {
		violations = append(violations,
			fmt.Sprintf("minSdk (%d) must not exceed targetSdk (%d)", config.MinSdk, config.TargetSdk))
	}
	if config.TargetSdk > config.CompileSdk {
		violations = append(violations,
			fmt.Sprintf("targetSdk (%d) must not exceed compileSdk (%d)", config.TargetSdk, config.CompileSdk))
	}

	return violations
}

func buildTypeViolations(project *Project) []string {
	names := make([]string, 0, len(project.BuildTypes))
	for name := range project.BuildTypes {
		names = append(names, name)
	}
	sort.Strings(names)

	var violations []string
	for _, name := range names {
		buildType := project.BuildTypes[name]
		if buildType.ShrinkResources && !buildType.Minify {
			violations = append(violations,
				fmt.Sprintf("buildTypes.%s: shrinkResources requires minify", name))
		}
		ref := buildType.SigningConfigRef
		if ref != "" && ref != DefaultSigningConfig && !slices.Contains(project.SigningConfigs, ref) {
			violations = append(violations,
				fmt.Sprintf("buildTypes.%s: signing config %q is not declared", name, ref))
		}
	}
	return violations
}

func pluginOrderViolations(plugins []string) []string {
	flutterIdx := slices.Index(plugins, PluginFlutter)
	if flutterIdx < 0 {
		return nil
	}

	// each group lists the ids under which the same plugin can be applied
	required := [][]string{
		{PluginAndroidApplication},
		{PluginKotlinAndroid, PluginKotlinAndroidID},
	}

	var violations []string
	for _, ids := range required {
		for _, id := range ids {
			if idx := slices.Index(plugins, id); idx > flutterIdx {
				violations = append(violations,
					fmt.Sprintf("plugin %s must be applied after %s", PluginFlutter, id))
			}
		}
	}
	return violations
}

func asValidationError(violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Reasons: violations}
}
