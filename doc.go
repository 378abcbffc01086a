// Package envgroup derives canonical environment-variable names from
// structured identifiers and provides typed, fail-fast access to their values.
//
// Quick Start:
//
//	locations := envgroup.MustNew("LocationsEnv", []string{"Folder", "File"})
//
//	for _, v := range locations.Members() {
//	    fmt.Println(v.Key()) // LOCATIONS_FOLDER, LOCATIONS_FILE
//	}
//
//	folder := locations.Members()[0]
//	path, ok := folder.Lookup()       // typed-result form
//	path = folder.Require()           // panics "No LOCATIONS_FOLDER in .env file" when absent
//	size := envgroup.MustCast[int](locations.Members()[1])
//
// Keys are built by splitting each identifier on capitalization boundaries,
// dropping a trailing "Env" word from the group name, and joining everything
// in upper snake case. A .env loader (or the OS) is expected to populate the
// process environment before any lookup; this package never parses files.
//
// See example_test.go and the groupfile subpackage for manifest-driven
// declarations.
package envgroup
