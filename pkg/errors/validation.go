package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateRoomName validates a room name from untrusted plan input.
// It rejects names that could be used for path traversal or injection
// when the name later appears in filenames, SVG text, or report output.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 128 characters
func ValidateRoomName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPlan, "room name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidPlan, "room name too long (max 128 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPlan, "room name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPlan, "room name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// styleNameRegex matches valid architectural style identifiers.
var styleNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidateStyleName validates an architectural style identifier.
// Unknown but well-formed styles are accepted here; the knowledge base
// falls back to its default share table for styles it does not know.
func ValidateStyleName(style string) error {
	if style == "" {
		return New(ErrCodeInvalidStyle, "style cannot be empty")
	}

	if !styleNameRegex.MatchString(style) {
		return New(ErrCodeInvalidStyle, "invalid style name: %q", style)
	}

	return nil
}

// ValidatePath validates a user-supplied file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
