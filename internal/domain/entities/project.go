package entities

// Plugin identifiers with ordering constraints.
const (
	PluginAndroidApplication = "com.android.application"
	PluginKotlinAndroid      = "kotlin-android"
	PluginKotlinAndroidID    = "org.jetbrains.kotlin.android"
	PluginFlutter            = "dev.flutter.flutter-gradle-plugin"
)

// DefaultSigningConfig is always available without being declared.
const DefaultSigningConfig = "debug"

// Project is the whole declarative document after parsing: the default
// build configuration plus everything around it.
type Project struct {
	Source         string                     `json:"source,omitempty"         yaml:"source,omitempty"`
	Plugins        []string                   `json:"plugins,omitempty"        yaml:"plugins,omitempty"`
	Namespace      string                     `json:"namespace,omitempty"      yaml:"namespace,omitempty"`
	JavaVersion    string                     `json:"javaVersion,omitempty"    yaml:"javaVersion,omitempty"`
	Config         BuildConfig                `json:"defaultConfig"            yaml:"defaultConfig"`
	BuildTypes     map[string]BuildTypeConfig `json:"buildTypes,omitempty"     yaml:"buildTypes,omitempty"`
	SigningConfigs []string                   `json:"signingConfigs,omitempty" yaml:"signingConfigs,omitempty"`
	Exclusions     []DependencyExclusion      `json:"exclusions,omitempty"     yaml:"exclusions,omitempty"`
	Dependencies   []DependencySpec           `json:"dependencies,omitempty"   yaml:"dependencies,omitempty"`
}

// NewProject returns an empty project for the given source with both
// standard build types present.
func NewProject(source string) *Project {
	return &Project{
		Source: source,
		BuildTypes: map[string]BuildTypeConfig{
			BuildTypeRelease: {},
			BuildTypeDebug:   {},
		},
	}
}

// CheckRequired reports the keys a document must always carry.
func CheckRequired(project *Project) error {
	if project.Config.ApplicationID == "" {
		return &ParseError{
			Source: project.Source,
			Field:  FieldApplicationID,
			Reason: "required key is missing",
		}
	}
	return nil
}

// HasDependencyIn reports whether at least one dependency is declared in scope.
func (p *Project) HasDependencyIn(scope DependencyScope) bool {
	for _, dep := range p.Dependencies {
		if dep.Scope == scope {
			return true
		}
	}
	return false
}
