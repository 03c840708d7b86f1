package validator

import (
	"slices"
	"unicode/utf8"
)

// Validator contains a map of validation errors.
type Validator struct {
	Errors map[string]string
}

// New creates a Validator instance with an empty error map.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if the errors map has no entries.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds a validation error to the errors map if no entry for the key already exists.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check add an error message to the map if validation fails.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// PermittedValue checks if a value is in the list of permitted values.
func PermittedValue[T comparable](value T, permittedValues ...T) bool {
	return slices.Contains(permittedValues, value)
}

// ValidUTF8 reports whether value is a well formed UTF-8 string.
func ValidUTF8(value string) bool {
	return utf8.ValidString(value)
}

// MaxRunes reports whether value holds at most n characters.
func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}
