package entities

// Field names used in error messages and in BuildConfig.Refs.
const (
	FieldApplicationID = "applicationId"
	FieldMinSdk        = "minSdk"
	FieldTargetSdk     = "targetSdk"
	FieldCompileSdk    = "compileSdk"
	FieldVersionCode   = "versionCode"
	FieldVersionName   = "versionName"
)

// Build type variants every Android project carries.
const (
	BuildTypeRelease = "release"
	BuildTypeDebug   = "debug"
)

// BuildConfig is the default configuration of the application module.
// A zero SDK level means "unset" until ResolveDefaults fills it in.
type BuildConfig struct {
	ApplicationID     string `json:"applicationId"     yaml:"applicationId"`
	MinSdk            int    `json:"minSdk"            yaml:"minSdk"`
	TargetSdk         int    `json:"targetSdk"         yaml:"targetSdk"`
	CompileSdk        int    `json:"compileSdk"        yaml:"compileSdk"`
	VersionCode       int    `json:"versionCode"       yaml:"versionCode"`
	VersionName       string `json:"versionName"       yaml:"versionName"`
	MultiDexEnabled   bool   `json:"multiDexEnabled"   yaml:"multiDexEnabled"`
	DesugaringEnabled bool   `json:"desugaringEnabled" yaml:"desugaringEnabled"`

	// Refs maps a field name to the descriptor key it was explicitly bound to
	// in the document (e.g. minSdk -> flutter.minSdkVersion).
	Refs map[string]string `json:"-" yaml:"-"`
}

// BuildTypeConfig holds the settings of a single build variant.
type BuildTypeConfig struct {
	Minify           bool     `json:"minify"                     yaml:"minify"`
	ShrinkResources  bool     `json:"shrinkResources"            yaml:"shrinkResources"`
	ProguardFiles    []string `json:"proguardFiles,omitempty"    yaml:"proguardFiles,omitempty"`
	SigningConfigRef string   `json:"signingConfigRef,omitempty" yaml:"signingConfigRef,omitempty"`
}

// WithRef returns a copy of the config with field bound to the descriptor key.
func (c BuildConfig) WithRef(field, key string) BuildConfig {
	refs := make(map[string]string, len(c.Refs)+1)
	for k, v := range c.Refs {
		refs[k] = v
	}
	refs[field] = key
	c.Refs = refs
	return c
}

// WithoutRef returns a copy of the config with field no longer bound to the descriptor.
func (c BuildConfig) WithoutRef(field string) BuildConfig {
	if _, ok := c.Refs[field]; !ok {
		return c
	}
	refs := make(map[string]string, len(c.Refs))
	for k, v := range c.Refs {
		if k != field {
			refs[k] = v
		}
	}
	c.Refs = refs
	return c
}
