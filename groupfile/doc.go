// Package groupfile declares envgroup groups from a manifest file.
//
// Manifest shape (same structure in YAML, JSON, and TOML):
//
//	groups:
//	  - name: LocationsEnv
//	    members: [Folder, File, AnotherFile]
//
// Example:
//
//	groups, err := groupfile.Load("envgroups.yaml", groupfile.Options{Required: true})
package groupfile
