// Package testutil provides utilities for testing graft components.
//
// Key components:
//   - NewTestFS: afero MemMapFs behind the types.FS interface
//   - WriteTree / ReadString / ListFiles: declarative stub and host tree setup
//   - FailingFS: error injection for partial-failure scenarios
//
// Usage guidelines:
//   - Most tests should run on NewTestFS for speed and isolation
//   - Only pkg/filesystem and CLI tests need the real filesystem
//   - All test data should be defined inline, not in external files
package testutil
