package types

// SyncResult holds the outcome of copying the stub tree into the host tree.
// Both lists are ordered sets of absolute target paths.
type SyncResult struct {
	Copied  []string `json:"copied" yaml:"copied"`
	Skipped []string `json:"skipped" yaml:"skipped"`
}

// RemovalResult holds the targets deleted by an uninstall.
type RemovalResult struct {
	Removed []string `json:"removed" yaml:"removed"`
}

// EnvFileResult describes what happened to a single env file.
type EnvFileResult struct {
	Path string `json:"path" yaml:"path"`

	// Keys added (install) or removed (uninstall). Empty means no-op.
	Keys []string `json:"keys" yaml:"keys"`

	// Missing is set when the file did not exist and was left alone.
	Missing bool `json:"missing,omitempty" yaml:"missing,omitempty"`

	// Ambiguous lists 1-based line numbers that contain '=' but could not be
	// parsed as KEY=value. They are never modified.
	Ambiguous []int `json:"ambiguous,omitempty" yaml:"ambiguous,omitempty"`
}

// RouteResult describes what happened to the route declaration file.
type RouteResult struct {
	Path string `json:"path" yaml:"path"`

	// Present reports whether the marked block is in the file afterwards.
	Present bool `json:"present" yaml:"present"`

	Created     bool `json:"created,omitempty" yaml:"created,omitempty"`
	ImportAdded bool `json:"importAdded,omitempty" yaml:"importAdded,omitempty"`
	Inserted    bool `json:"inserted,omitempty" yaml:"inserted,omitempty"`
	Removed     bool `json:"removed,omitempty" yaml:"removed,omitempty"`
}

// Command names recorded in Result.Command.
const (
	CommandInstall   = "install"
	CommandUpdate    = "update"
	CommandUninstall = "uninstall"
)

// Result is the aggregate returned by install, update and uninstall.
type Result struct {
	Command string          `json:"command" yaml:"command"`
	Copied  []string        `json:"copied" yaml:"copied"`
	Skipped []string        `json:"skipped" yaml:"skipped"`
	Removed []string        `json:"removed" yaml:"removed"`
	Env     []EnvFileResult `json:"env" yaml:"env"`
	Routes  *RouteResult    `json:"routes,omitempty" yaml:"routes,omitempty"`
}

// EnvKeyCount returns the number of env keys touched across all files.
func (r *Result) EnvKeyCount() int {
	total := 0
	for _, env := range r.Env {
		total += len(env.Keys)
	}
	return total
}

// AppendUnique appends path to list unless it is already present,
// preserving first-seen order.
func AppendUnique(list []string, path string) []string {
	for _, existing := range list {
		if existing == path {
			return list
		}
	}
	return append(list, path)
}
