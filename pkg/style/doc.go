// Package style renders installer results for the terminal.
//
// Styled output uses lipgloss; plain output is used when stdout is not a
// terminal or NO_COLOR is set. JSON and YAML are available for scripts.
package style
