package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DescriptorNamespace prefixes every key exposed by the framework descriptor.
const DescriptorNamespace = "flutter"

// Default descriptor keys consulted when a field is left unset.
const (
	DescriptorMinSdkKey      = DescriptorNamespace + ".minSdkVersion"
	DescriptorTargetSdkKey   = DescriptorNamespace + ".targetSdkVersion"
	DescriptorCompileSdkKey  = DescriptorNamespace + ".compileSdkVersion"
	DescriptorVersionCodeKey = DescriptorNamespace + ".versionCode"
	DescriptorVersionNameKey = DescriptorNamespace + ".versionName"
)

// platformCodenames maps released platform codenames to their API level.
//
//nolint:gochecknoglobals // read-only lookup table
var platformCodenames = map[string]int{
	"G":               9,
	"I":               14,
	"J":               16,
	"J-MR1":           17,
	"J-MR2":           18,
	"K":               19,
	"L":               21,
	"L-MR1":           22,
	"M":               23,
	"N":               24,
	"N-MR1":           25,
	"O":               26,
	"O-MR1":           27,
	"P":               28,
	"Q":               29,
	"R":               30,
	"S":               31,
	"S-V2":            32,
	"T":               33,
	"TIRAMISU":        33,
	"U":               34,
	"UPSIDEDOWNCAKE":  34,
	"V":               35,
	"VANILLAICECREAM": 35,
	"BAKLAVA":         36,
}

// ParseSdkLevel converts an integer or a platform codename into an API level.
func ParseSdkLevel(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, errors.New("empty SDK level")
	}

	if level, err := strconv.Atoi(value); err == nil {
		if level <= 0 {
			return 0, fmt.Errorf("SDK level must be positive, got %d", level)
		}
		return level, nil
	}

	if level, ok := platformCodenames[strings.ToUpper(value)]; ok {
		return level, nil
	}

	return 0, fmt.Errorf("%q is neither an API level nor a known platform codename", value)
}

// IsDescriptorRef reports whether raw points into the framework descriptor.
func IsDescriptorRef(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), DescriptorNamespace+".")
}

// ApplySdkValue parses raw for the given SDK field and stores it into the
// config, either as a level or as a descriptor reference. The new value
// replaces whichever form was stored before. An empty raw value leaves the
// field unset.
func ApplySdkValue(config BuildConfig, field, raw string) (BuildConfig, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return config, nil
	}
	target, err := sdkTarget(&config, field)
	if err != nil {
		return config, err
	}
	if IsDescriptorRef(value) {
		*target = 0
		return config.WithRef(field, value), nil
	}

	level, err := ParseSdkLevel(value)
	if err != nil {
		return config, err
	}
	*target = level
	return config.WithoutRef(field), nil
}

// sdkTarget points at the SDK level stored under field.
func sdkTarget(config *BuildConfig, field string) (*int, error) {
	switch field {
	case FieldMinSdk:
		return &config.MinSdk, nil
	case FieldTargetSdk:
		return &config.TargetSdk, nil
	case FieldCompileSdk:
		return &config.CompileSdk, nil
	default:
		return nil, fmt.Errorf("%s is not an SDK field", field)
	}
}

// ApplyVersionCode parses raw as versionCode, accepting a descriptor reference.
func ApplyVersionCode(config BuildConfig, raw string) (BuildConfig, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return config, nil
	}
	if IsDescriptorRef(value) {
		config.VersionCode = 0
		return config.WithRef(FieldVersionCode, value), nil
	}

	code, err := ParseVersionCode(value)
	if err != nil {
		return config, err
	}
	config.VersionCode = code
	return config.WithoutRef(FieldVersionCode), nil
}

// ApplyVersionName stores raw as versionName, accepting a descriptor reference.
func ApplyVersionName(config BuildConfig, raw string) (BuildConfig, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return config, nil
	}
	if IsDescriptorRef(value) {
		config.VersionName = ""
		return config.WithRef(FieldVersionName, value), nil
	}
	if strings.ContainsAny(value, "\r\n\t") {
		return config, fmt.Errorf("versionName %q contains control characters", value)
	}
	config.VersionName = value
	return config.WithoutRef(FieldVersionName), nil
}

// ParseVersionCode parses a strictly positive version code.
func ParseVersionCode(raw string) (int, error) {
	code, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", raw)
	}
	if code <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", code)
	}
	return code, nil
}
