// Package ast provides the document model for parsed profile configuration
// files.
//
// A configuration file is represented as a Document holding an ordered set
// of Profiles, each holding an ordered set of key-value Entries. Both levels
// preserve first-insertion order, which drives deterministic listing and
// rendering. All nodes carry source Location information for precise error
// reporting.
//
// # Core Types
//
// Document: Root node, ordered mapping of profile name to Profile
//
// Profile: Named section, ordered mapping of key to value
//
// Entry: Single key-value pair with its source location
//
// Location: Source location (file, line)
//
// # Basic Usage
//
// Traverse a parsed document:
//
//	doc, err := parser.NewParser().Parse("config.ini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, profile := range doc.Profiles() {
//	    fmt.Println("Profile:", profile.Name)
//	    for _, entry := range profile.Entries() {
//	        fmt.Printf("  %s = %s\n", entry.Key, entry.Value)
//	    }
//	}
//
// Documents are immutable after parsing: GetOrCreate and Append exist for
// the parser's construction phase and are not part of the read API contract.
package ast
