// Package errors provides rich error types for profile configuration
// loading and lookup.
//
// Errors carry a Kind, a source Location, and an optional suggestion to
// help users quickly identify and fix configuration issues.
//
// # Error Kinds
//
// KindFileMissing: path does not exist or is unreadable at load time
//
// KindMalformedLine: a line that is neither header, key-value, nor comment
//
// KindOrphanKey: a key-value line appearing before any profile header
//
// KindDuplicateKey: the same key declared twice within one profile
//
// KindProfileNotFound, KindKeyNotFound: accessor lookups for unknown names
//
// # Basic Usage
//
// Match error categories with the standard errors package:
//
//	_, err := handler.GetValue("prod", "region")
//	if errors.Is(err, profileserrors.ErrNotFound) {
//	    // profile or key missing
//	}
//
// Inspect the exact kind:
//
//	if profileserrors.KindOf(err) == profileserrors.KindDuplicateKey {
//	    // fix the config file
//	}
//
// Parse-time errors (malformed line, orphan key, duplicate key) match the
// ErrParse sentinel and abort the entire load; lookup errors match
// ErrNotFound and are raised per call.
package errors
