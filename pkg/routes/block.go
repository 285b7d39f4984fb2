package routes

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/arthur-debert/graft/pkg/textblock"
)

// Block is the literal text managed in the route file.
type Block struct {
	// Header is the first line of a well formed file, e.g. "<?php"
	Header string

	// Import is a line that must appear once near the top of the file
	Import string

	StartMarker string
	EndMarker   string

	// Body is the text written between the markers
	Body string
}

// Change records what InsertBlock did to the content.
type Change struct {
	ImportAdded bool
	Inserted    bool
}

// Changed reports whether the content was modified.
func (c Change) Changed() bool {
	return c.ImportAdded || c.Inserted
}

// Skeleton is the content used for a file that does not exist yet.
func (b Block) Skeleton() string {
	var lines []string
	if b.Header != "" {
		lines = append(lines, b.Header, "")
	}
	if b.Import != "" {
		lines = append(lines, b.Import, "")
	}
	return textblock.Join(lines)
}

// Marked returns the start marker, body and end marker as one string with no
// trailing newline.
func (b Block) Marked() string {
	body := strings.TrimRight(b.Body, "\r\n")
	return b.StartMarker + "\n" + body + "\n" + b.EndMarker
}

// InsertBlock adds the import line when it is missing and appends the marked
// block when the start marker is not already present. Calling it on its own
// output changes nothing.
func InsertBlock(content string, b Block) (string, Change) {
	var change Change

	if b.Import != "" && !textblock.HasLine(content, b.Import) {
		content = insertImport(content, b)
		change.ImportAdded = true
	}

	if !textblock.HasLine(content, b.StartMarker) {
		trimmed := strings.TrimRightFunc(content, unicode.IsSpace)
		if trimmed == "" {
			content = b.Marked() + "\n"
		} else {
			content = trimmed + "\n\n" + b.Marked() + "\n"
		}
		change.Inserted = true
	}

	return content, change
}

// insertImport places the import right after the header line, separated by
// one blank line on each side. Without a header line both are prepended.
func insertImport(content string, b Block) string {
	lines := textblock.SplitLines(content)

	at := -1
	if b.Header != "" {
		for i, line := range lines {
			if strings.TrimSpace(line) == b.Header {
				at = i
				break
			}
		}
	}

	var out []string
	if at >= 0 {
		out = append(out, lines[:at+1]...)
		lines = lines[at+1:]
	} else if b.Header != "" {
		out = append(out, b.Header)
	}
	if len(out) > 0 {
		out = append(out, "")
	}
	out = append(out, b.Import, "")
	out = append(out, trimLeadingBlank(lines)...)

	return textblock.Join(textblock.TrimTrailingBlank(out))
}

func trimLeadingBlank(lines []string) []string {
	start := 0
	for start < len(lines) && textblock.IsBlank(lines[start]) {
		start++
	}
	return lines[start:]
}

// blockPattern matches the first marked block together with the line break
// and indentation before it and the rest of the end marker's line. The
// indentation of the line after the block is left alone.
func blockPattern(b Block) *regexp.Regexp {
	return regexp.MustCompile(`(?s)\n?[ \t]*` + regexp.QuoteMeta(b.StartMarker) + `.*?` +
		regexp.QuoteMeta(b.EndMarker) + `[ \t]*(\r?\n)?`)
}

// RemoveBlock deletes the first marked block, from the start marker through
// the end marker, and leaves at most one blank line between the remaining
// lines. Content without a complete marker pair is returned unchanged.
func RemoveBlock(content string, b Block) (string, bool) {
	loc := blockPattern(b).FindStringIndex(content)
	if loc == nil {
		return content, false
	}

	stripped := content[:loc[0]] + "\n" + content[loc[1]:]
	return textblock.Normalize(stripped, 1), true
}
