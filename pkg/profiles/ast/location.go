package ast

import "fmt"

// Location represents the source location of a document node in the original
// configuration file. It enables precise error reporting with file and line
// information. Profile files are line-oriented, so no column is tracked.
type Location struct {
	File string // Path to the configuration file
	Line int    // Line number (1-based)
}

// String returns a human-readable representation of the location.
// Format: "file:line"
func (l Location) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	if l.Line <= 0 {
		return l.File
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// IsValid returns true if the location has valid file information.
func (l Location) IsValid() bool {
	return l.File != ""
}
