// Package profiles provides the public API for profile-based configuration
// files: INI-style named sections of key-value pairs with comment and
// whitespace tolerance.
//
// # Basic Usage
//
// Load a configuration file and look values up:
//
//	handler, err := profiles.New("config.ini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Profiles:", handler.ListProfiles())
//
//	region, err := handler.GetValue("production", "region")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Render the cleaned configuration back as text:
//
//	fmt.Println(handler.Render())
//
// # Configuration
//
// Handlers are configured with options:
//
//	handler, err := profiles.New("config.ini",
//	    profiles.WithPreserveCase(true),
//	    profiles.WithMaxFileSize(64*1024),
//	    profiles.WithLogger(logger),
//	    profiles.WithMetrics(loaderMetrics),
//	)
//
// # Semantics
//
// Profile names and keys are lowercased at parse time unless case
// preservation is enabled; values keep their original casing. Profiles
// and keys preserve first-insertion order, which drives ListProfiles and
// Render. Duplicate keys within a profile fail the load; re-declaring a
// profile header re-opens the existing profile and merges keys into it.
//
// A load is all-or-nothing: any malformed line, orphan key, or duplicate
// key aborts it, and a failed Reload leaves the previously loaded
// configuration untouched. Lookup errors are per-call and never affect
// the loaded document.
//
// The maps returned by GetProfile and Config are copies; mutating them
// does not affect the handler.
package profiles
