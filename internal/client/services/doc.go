// Package services implements the resource-resolution layer between the
// interactive CLI and the transport.
//
// The Catalog service maps user input onto API URLs: the collection set is
// discovered once from the API root, listings come from {base}/{collection},
// and single records from {base}/{collection}/{slug}, where the slug is the
// lowercased identifier with spaces replaced by hyphens.
//
// Errors from the transport are logged here and returned as-is; shape
// violations are reported as ErrFormat and a 404 on an item fetch as
// ErrNotFound.
package services
