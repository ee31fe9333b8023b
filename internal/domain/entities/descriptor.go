package entities

import "strings"

// ExternalDescriptor holds the values published by the UI framework's build
// integration (SDK levels, version code and name). A nil descriptor means
// the framework could not be located.
type ExternalDescriptor struct {
	Source string
	Values map[string]string
}

// NewExternalDescriptor builds a descriptor from a key/value map.
func NewExternalDescriptor(source string, values map[string]string) *ExternalDescriptor {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &ExternalDescriptor{Source: source, Values: copied}
}

// Lookup returns the non-empty value stored under key.
func (d *ExternalDescriptor) Lookup(key string) (string, bool) {
	if d == nil {
		return "", false
	}
	value, ok := d.Values[key]
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

// Overlay returns a new descriptor where values take precedence over d.
// Either side may be nil; the result is nil only when both are empty.
func (d *ExternalDescriptor) Overlay(source string, values map[string]string) *ExternalDescriptor {
	if d == nil && len(values) == 0 {
		return nil
	}

	merged := make(map[string]string)
	base := source
	if d != nil {
		for k, v := range d.Values {
			merged[k] = v
		}
		base = d.Source
	}
	for k, v := range values {
		merged[k] = v
	}
	return &ExternalDescriptor{Source: base, Values: merged}
}
