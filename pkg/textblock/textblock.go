// Package textblock holds the line-level helpers shared by the env and route
// patchers. Everything here is pure string manipulation.
package textblock

import (
	"regexp"
	"strings"
)

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// SplitLines splits content on any line ending. Content that is empty or
// only whitespace yields no lines.
func SplitLines(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	return lineBreak.Split(content, -1)
}

// IsBlank reports whether a line holds nothing but whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// TrimTrailingBlank drops blank lines from the end of lines.
func TrimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && IsBlank(lines[end-1]) {
		end--
	}
	return lines[:end]
}

// CollapseBlankRuns limits every run of consecutive blank lines to at most
// max lines. Blank lines are emitted as empty strings.
func CollapseBlankRuns(lines []string, max int) []string {
	out := make([]string, 0, len(lines))
	run := 0
	for _, line := range lines {
		if IsBlank(line) {
			run++
			if run > max {
				continue
			}
			out = append(out, "")
			continue
		}
		run = 0
		out = append(out, line)
	}
	return out
}

// Join renders lines with '\n' and a single trailing newline.
func Join(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

// Normalize collapses blank runs to max, strips trailing blank lines and
// returns content ending in exactly one newline.
func Normalize(content string, max int) string {
	lines := SplitLines(content)
	lines = CollapseBlankRuns(lines, max)
	return Join(TrimTrailingBlank(lines))
}

// HasLine reports whether any line, once trimmed, equals want.
func HasLine(content, want string) bool {
	want = strings.TrimSpace(want)
	for _, line := range SplitLines(content) {
		if strings.TrimSpace(line) == want {
			return true
		}
	}
	return false
}
