package errors

import (
	"errors"
	"fmt"
	"strings"

	"mercator-hq/profiles/pkg/profiles/ast"
)

// Kind categorizes the type of error encountered during loading or lookup.
type Kind string

const (
	KindFileMissing     Kind = "file_missing"      // Path does not exist or is unreadable
	KindMalformedLine   Kind = "malformed_line"    // Line is neither header, key-value, nor comment
	KindOrphanKey       Kind = "orphan_key"        // Key-value line before any profile header
	KindDuplicateKey    Kind = "duplicate_key"     // Same key declared twice within one profile
	KindProfileNotFound Kind = "profile_not_found" // Lookup of an unknown profile
	KindKeyNotFound     Kind = "key_not_found"     // Lookup of an unknown key in a known profile
)

// Sentinel errors for errors.Is matching across kinds.
var (
	// ErrNotFound matches file-missing, profile-not-found, and
	// key-not-found errors.
	ErrNotFound = errors.New("not found")

	// ErrParse matches malformed-line, orphan-key, and duplicate-key
	// errors raised while loading a file.
	ErrParse = errors.New("parse error")
)

// Error represents a rich error with kind, location, and a suggested fix.
// It provides detailed information for debugging configuration issues.
type Error struct {
	Kind       Kind         // Category of error
	Message    string       // Error message
	Location   ast.Location // Source location (file, line)
	Suggestion string       // Suggested fix (optional)
}

// Error implements the error interface.
// It returns a formatted message with location and suggestion.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Kind, e.Message))

	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf("\n  --> %s", e.Location.String()))
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\n  = suggestion: %s", e.Suggestion))
	}

	return sb.String()
}

// Is supports errors.Is matching against the package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindFileMissing ||
			e.Kind == KindProfileNotFound ||
			e.Kind == KindKeyNotFound
	case ErrParse:
		return e.Kind == KindMalformedLine ||
			e.Kind == KindOrphanKey ||
			e.Kind == KindDuplicateKey
	}
	return false
}

// KindOf extracts the error kind from err, unwrapping as needed.
// It returns the empty kind if err is not a profiles error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
