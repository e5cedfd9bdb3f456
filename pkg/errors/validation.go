package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds record identifiers. GEDCOM cross-reference ids are at most
// 22 characters; the extra room covers exports from other tools.
const maxIDLength = 128

// ValidateID validates a record identifier (individual or family).
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters or whitespace
//   - No path separators (ids end up in cache keys and URLs)
//   - Maximum length of 128 characters
func ValidateID(kind, id string) error {
	if id == "" {
		return New(ErrCodeInvalidRecord, "%s id cannot be empty", kind)
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidRecord, "%s id too long (max %d characters): %q", kind, maxIDLength, id[:16]+"...")
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidRecord, "%s id contains invalid characters: %q", kind, id)
		}
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidRecord, "%s id cannot contain path separators: %q", kind, id)
	}

	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed []string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
}
