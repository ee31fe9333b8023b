package entities

import "fmt"

const descriptorUnavailable = "external descriptor is unavailable and no explicit value is given"

// ResolveDefaults fills unset SDK levels (and, when available, the version
// code and name) from the external descriptor. Fields bound to an explicit
// descriptor key must resolve; unset SDK levels must resolve through their
// default key. The input config is not modified.
func ResolveDefaults(config BuildConfig, descriptor *ExternalDescriptor) (BuildConfig, error) {
	resolved := config
	resolved.Refs = nil

	sdkFields := []struct {
		name       string
		defaultKey string
		target     *int
	}{
		{FieldMinSdk, DescriptorMinSdkKey, &resolved.MinSdk},
		{FieldTargetSdk, DescriptorTargetSdkKey, &resolved.TargetSdk},
		{FieldCompileSdk, DescriptorCompileSdkKey, &resolved.CompileSdk},
	}

	for _, field := range sdkFields {
		if *field.target != 0 {
			continue
		}
		key := keyFor(config, field.name, field.defaultKey)
		raw, err := lookupRequired(descriptor, field.name, key)
		if err != nil {
			return BuildConfig{}, err
		}
		level, parseErr := ParseSdkLevel(raw)
		if parseErr != nil {
			return BuildConfig{}, &ResolutionError{Field: field.name, Key: key, Reason: parseErr.Error()}
		}
		*field.target = level
	}

	if err := resolveVersionCode(config, descriptor, &resolved); err != nil {
		return BuildConfig{}, err
	}
	if err := resolveVersionName(config, descriptor, &resolved); err != nil {
		return BuildConfig{}, err
	}

	return resolved, nil
}

func resolveVersionCode(config BuildConfig, descriptor *ExternalDescriptor, resolved *BuildConfig) error {
	if resolved.VersionCode != 0 {
		return nil
	}

	key, explicit := config.Refs[FieldVersionCode]
	if !explicit {
		key = DescriptorVersionCodeKey
		if _, ok := descriptor.Lookup(key); !ok {
			return nil
		}
	}

	raw, err := lookupRequired(descriptor, FieldVersionCode, key)
	if err != nil {
		return err
	}
	code, parseErr := ParseVersionCode(raw)
	if parseErr != nil {
		return &ResolutionError{Field: FieldVersionCode, Key: key, Reason: parseErr.Error()}
	}
	resolved.VersionCode = code
	return nil
}

func resolveVersionName(config BuildConfig, descriptor *ExternalDescriptor, resolved *BuildConfig) error {
	if resolved.VersionName != "" {
		return nil
	}

	key, explicit := config.Refs[FieldVersionName]
	if !explicit {
		key = DescriptorVersionNameKey
		if _, ok := descriptor.Lookup(key); !ok {
			return nil
		}
	}

	raw, err := lookupRequired(descriptor, FieldVersionName, key)
	if err != nil {
		return err
	}
	resolved.VersionName = raw
	return nil
}

func keyFor(config BuildConfig, field, defaultKey string) string {
	if ref, ok := config.Refs[field]; ok {
		return ref
	}
	return defaultKey
}

func lookupRequired(descriptor *ExternalDescriptor, field, key string) (string, error) {
	if descriptor == nil {
		return "", &ResolutionError{Field: field, Key: key, Reason: descriptorUnavailable}
	}
	raw, ok := descriptor.Lookup(key)
	if !ok {
		return "", &ResolutionError{
			Field:  field,
			Key:    key,
			Reason: fmt.Sprintf("key is not defined in %s", descriptor.Source),
		}
	}
	return raw, nil
}
