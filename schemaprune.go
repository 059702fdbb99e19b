// Package schemaprune derives a reduced schema definition from a full
// schema by removing excluded model blocks and scrubbing cross-references
// in one retained model.
package schemaprune

// Version is the current schemaprune release
const Version = "0.3.0"
