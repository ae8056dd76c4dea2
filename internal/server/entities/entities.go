// Package entities holds the request payload validators for the
// authentication API. Constructors accept a decoded JSON payload and either
// return a validated value object or fail with a named error that the
// exceptions package translates into a localized client message. Validators
// are pure and run before any I/O.
package entities

// stringProperty extracts a required string property from a raw payload.
// A missing, nil, or empty value fails with errMissing; a value of any other
// type fails with errType.
func stringProperty(payload map[string]any, key string, errMissing, errType error) (string, error) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return "", errMissing
	}
	s, ok := raw.(string)
	if !ok {
		return "", errType
	}
	if s == "" {
		return "", errMissing
	}
	return s, nil
}
