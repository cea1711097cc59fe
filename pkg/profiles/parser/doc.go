// Package parser provides parsing of INI-style profile configuration files
// into ordered documents.
//
// The parser reads profile files (named sections of key-value pairs),
// strips comments and whitespace noise, and constructs typed documents
// that preserve insertion order for deterministic listing and rendering.
//
// # Basic Usage
//
// Parse a configuration file:
//
//	parser := parser.NewParser()
//	doc, err := parser.Parse("config.ini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Profiles:", doc.Names())
//
// Parse from memory:
//
//	data := []byte(`
//	[production]
//	region = eu-west-1   # primary region
//	endpoint = https://api.example.com?v=2
//	`)
//
//	doc, err := parser.ParseBytes(data, "memory://config")
//
// # Configuration
//
// Configure parser behavior:
//
//	parser := parser.NewParser().
//	    WithMaxFileSize(64 * 1024). // 64KB limit
//	    WithPreserveCase(true)      // keep original casing
//
// # Parsing Stages
//
// The parser operates in two stages:
//
// 1. Preprocessing: strip comments ('#' and ';' to end of line), trim
// whitespace, drop blank lines, retaining original line numbers
//
// 2. Line parsing: classify each logical line as a profile header or a
// key-value pair and build the ordered document, detecting malformed
// lines, orphan keys, and duplicate keys
//
// Values are split on the first '=' only, so values may themselves
// contain '='. A re-declared profile header re-opens the existing profile
// and merges further keys into it.
//
// # Error Handling
//
// All errors carry source locations and fix suggestions:
//
//	doc, err := parser.Parse("config.ini")
//	if err != nil {
//	    fmt.Println(err)
//	    // [duplicate_key] duplicate key "region" found in profile "production"
//	    //   --> config.ini:7
//	}
//
// Any error aborts the entire load; no partial document is ever returned.
package parser
