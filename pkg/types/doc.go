// Package types defines the filesystem abstraction and the typed result
// records shared by the installer components and the CLI.
package types
