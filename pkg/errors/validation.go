package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// elementNameRegex matches element names usable in scenario files and as
// declaration references.
var elementNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidateElementName validates a view or guide name from a scenario file.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - Must start with a letter or underscore
//   - Maximum length of 128 characters
func ValidateElementName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "element name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "element name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "element name contains invalid control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidName, "element name cannot contain whitespace: %q", name)
		}
	}

	if !elementNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid element name: %q", name)
	}

	return nil
}

// ValidateScenarioPath validates a scenario file path given on the command
// line. Only TOML files are accepted.
func ValidateScenarioPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "scenario path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "scenario path contains invalid characters")
		}
	}

	if !strings.HasSuffix(strings.ToLower(path), ".toml") {
		return New(ErrCodeInvalidInput, "scenario file must have a .toml extension: %q", path)
	}

	return nil
}
