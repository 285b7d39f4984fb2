package envfile

import (
	"regexp"
	"slices"
	"strings"

	"github.com/arthur-debert/graft/pkg/textblock"
)

// maxBlankRun is the longest run of blank lines StripBlock keeps.
const maxBlankRun = 2

var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// Key is a package-owned variable and the default written for it.
type Key struct {
	Name    string
	Default string
}

// Spec is the ordered set of keys owned by the package plus the label of
// the section comment that introduces them.
type Spec struct {
	Label string
	Keys  []Key
}

// SectionLine is the comment line written above the block.
func (s Spec) SectionLine() string {
	return "# " + s.Label
}

// Has reports whether name is one of the package keys.
func (s Spec) Has(name string) bool {
	for _, key := range s.Keys {
		if key.Name == name {
			return true
		}
	}
	return false
}

// Report lists the keys a merge touched and the ambiguous lines it saw.
type Report struct {
	Keys      []string
	Ambiguous []int
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineAssignment
	lineAmbiguous
	lineOther
)

// classifyLine sorts a line into one of the lineKinds and, for assignments,
// returns the key. "export KEY=value" counts as an assignment to KEY.
func classifyLine(line string) (lineKind, string) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return lineBlank, ""
	case strings.HasPrefix(trimmed, "#"):
		return lineComment, ""
	case !strings.Contains(trimmed, "="):
		return lineOther, ""
	}

	lhs, _, _ := strings.Cut(trimmed, "=")
	lhs = strings.TrimSpace(lhs)
	if rest, ok := strings.CutPrefix(lhs, "export "); ok {
		lhs = strings.TrimSpace(rest)
	}

	if !keyPattern.MatchString(lhs) {
		return lineAmbiguous, ""
	}
	return lineAssignment, lhs
}

// AppendBlock appends every spec key missing from content as one block,
// separated from existing content by a single blank line. When nothing is
// missing content is returned unchanged.
func AppendBlock(content string, spec Spec) (string, Report) {
	report := Report{Keys: []string{}}
	lines := textblock.SplitLines(content)

	present := make(map[string]bool)
	for i, line := range lines {
		kind, key := classifyLine(line)
		switch kind {
		case lineAssignment:
			present[key] = true
		case lineAmbiguous:
			report.Ambiguous = append(report.Ambiguous, i+1)
		}
	}

	var block []string
	for _, key := range spec.Keys {
		if present[key.Name] {
			continue
		}
		present[key.Name] = true
		report.Keys = append(report.Keys, key.Name)
		block = append(block, key.Name+"="+key.Default)
	}

	if len(block) == 0 {
		return content, report
	}

	merged := textblock.TrimTrailingBlank(lines)
	if len(merged) > 0 {
		merged = append(merged, "")
	}
	merged = append(merged, spec.SectionLine())
	merged = append(merged, block...)

	return textblock.Join(merged), report
}

// StripBlock removes the section comment and every assignment to a spec key.
// Blank runs longer than two lines are collapsed and the result ends in one
// newline. When nothing matches content is returned unchanged.
func StripBlock(content string, spec Spec) (string, Report) {
	report := Report{Keys: []string{}}
	section := strings.TrimSpace(spec.SectionLine())

	var remaining []string
	dropped := false
	for i, line := range textblock.SplitLines(content) {
		if strings.TrimSpace(line) == section {
			dropped = true
			continue
		}

		kind, key := classifyLine(line)
		if kind == lineAssignment && spec.Has(key) {
			dropped = true
			if !slices.Contains(report.Keys, key) {
				report.Keys = append(report.Keys, key)
			}
			continue
		}
		if kind == lineAmbiguous {
			report.Ambiguous = append(report.Ambiguous, i+1)
		}

		remaining = append(remaining, line)
	}

	if !dropped {
		return content, report
	}

	remaining = textblock.CollapseBlankRuns(remaining, maxBlankRun)
	return textblock.Join(textblock.TrimTrailingBlank(remaining)), report
}
