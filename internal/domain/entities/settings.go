package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the writers.
const (
	OutputFormatYAML = "yaml"
	OutputFormatJSON = "json"
)

// Settings is the optional tool configuration for buildcfg.
type Settings struct {
	Document   string                `yaml:"document"`   // Path to the build document
	Format     string                `yaml:"format"`     // "gradle", "yaml", "hcl"; empty = detect
	Descriptor DescriptorSettings    `yaml:"descriptor"` // Framework descriptor location and overrides
	Exclusions []DependencyExclusion `yaml:"exclusions"` // Applied on top of the document's own
	Output     OutputSettings        `yaml:"output"`
}

// DescriptorSettings points at the framework descriptor.
type DescriptorSettings struct {
	Path   string            `yaml:"path"`   // Inline, ${ENV_VAR}, or relative path
	Values map[string]string `yaml:"values"` // Take precedence over file values
}

// OutputSettings controls where the normalized configuration goes.
type OutputSettings struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a settings file, expanding environment
// variables in path values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Document = expandEnv(settings.Document)
	settings.Descriptor.Path = expandEnv(settings.Descriptor.Path)
	settings.Output.Path = expandEnv(settings.Output.Path)

	if validateErr := validateSettings(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".buildcfg.yaml",
		".buildcfg.yml",
		"buildcfg.yaml",
		"buildcfg.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validateSettings checks for well-formed configuration values.
func validateSettings(settings *Settings) error {
	for i, exclusion := range settings.Exclusions {
		if exclusion.Group == "" {
			return fmt.Errorf("exclusions[%d].group is required", i)
		}
	}

	switch settings.Output.Format {
	case "", OutputFormatYAML, OutputFormatJSON:
	default:
		return fmt.Errorf(
			"output.format %q is not supported (use %s or %s)",
			settings.Output.Format, OutputFormatYAML, OutputFormatJSON,
		)
	}

	for key := range settings.Descriptor.Values {
		if !IsDescriptorRef(key) {
			return fmt.Errorf(
				"descriptor.values.%s must start with %q",
				key, DescriptorNamespace+".",
			)
		}
	}

	return nil
}
