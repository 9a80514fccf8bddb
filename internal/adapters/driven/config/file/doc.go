// Package file provides the file-based configuration store for gapi.
//
// Configuration lives in a TOML file, ~/.gapi/config.toml by default.
// Nested tables are exposed as flattened dot-notation keys, so
//
//	[endpoint]
//	drive = "http://localhost:8080/drive/v3/"
//
// is read back with store.GetString("endpoint.drive").
package file
