package errors

import (
	"fmt"

	"mercator-hq/profiles/pkg/profiles/ast"
)

// NewFileMissing creates a file-missing error for the given path.
// The underlying OS error is folded into the message.
func NewFileMissing(path string, cause error) *Error {
	msg := fmt.Sprintf("config file %q does not exist", path)
	if cause != nil {
		msg = fmt.Sprintf("config file %q is not readable: %v", path, cause)
	}
	return &Error{
		Kind:       KindFileMissing,
		Message:    msg,
		Location:   ast.Location{File: path},
		Suggestion: "check the path and file permissions",
	}
}

// NewMalformedLine creates a malformed-line error for a line that is
// neither a profile header nor a key-value pair.
func NewMalformedLine(text string, loc ast.Location) *Error {
	return &Error{
		Kind:       KindMalformedLine,
		Message:    fmt.Sprintf("line %q is neither a profile header nor a key-value pair", text),
		Location:   loc,
		Suggestion: "use '[name]' for profile headers and 'key = value' for entries",
	}
}

// NewOrphanKey creates an orphan-key error for a key-value line that
// precedes any profile header.
func NewOrphanKey(key string, loc ast.Location) *Error {
	return &Error{
		Kind:       KindOrphanKey,
		Message:    fmt.Sprintf("key %q declared before any profile header", key),
		Location:   loc,
		Suggestion: "declare a '[profile]' header before the first key",
	}
}

// NewDuplicateKey creates a duplicate-key error naming profile and key.
func NewDuplicateKey(profile, key string, loc ast.Location) *Error {
	return &Error{
		Kind:     KindDuplicateKey,
		Message:  fmt.Sprintf("duplicate key %q found in profile %q", key, profile),
		Location: loc,
	}
}

// NewProfileNotFound creates a profile-not-found lookup error.
func NewProfileNotFound(profile string) *Error {
	return &Error{
		Kind:    KindProfileNotFound,
		Message: fmt.Sprintf("profile %q not found", profile),
	}
}

// NewKeyNotFound creates a key-not-found lookup error naming both the
// profile and the missing key.
func NewKeyNotFound(profile, key string) *Error {
	return &Error{
		Kind:    KindKeyNotFound,
		Message: fmt.Sprintf("key %q not found in profile %q", key, profile),
	}
}
