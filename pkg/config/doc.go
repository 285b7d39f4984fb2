// Package config loads graft's configuration.
//
// Sources are layered with koanf, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. .graft.toml, graft.toml, .graft.yaml or graft.yaml in the base path
//  3. GRAFT_* environment variables
//  4. overrides passed by the caller (command line flags)
//
// Relative stub roots are resolved against the base path. The result is
// validated before it is returned.
package config
