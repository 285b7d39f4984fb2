package style

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/graft/pkg/errors"
	"github.com/arthur-debert/graft/pkg/types"
	"gopkg.in/yaml.v3"
)

// Renderer turns an operation result into text for the user.
type Renderer interface {
	RenderResult(result *types.Result) string
	RenderError(err error) string
}

// NewRenderer returns the renderer for format. Structured formats are
// handled by RenderStructured instead.
func NewRenderer(format Format, basePath string) Renderer {
	if format == FormatTerminal {
		return NewTerminalRenderer(basePath)
	}
	return NewPlainRenderer(basePath)
}

type lineKind int

const (
	kindTitle lineKind = iota
	kindSuccess
	kindInfo
	kindWarning
	kindMuted
)

type line struct {
	kind lineKind
	text string
}

// summarize lays out a result as a list of typed lines, shared by the
// styled and plain renderers. Paths are shown relative to basePath.
func summarize(result *types.Result, basePath string) []line {
	rel := func(path string) string {
		if r, err := filepath.Rel(basePath, path); err == nil && !strings.HasPrefix(r, "..") {
			return r
		}
		return path
	}

	var lines []line
	add := func(kind lineKind, format string, args ...interface{}) {
		lines = append(lines, line{kind: kind, text: fmt.Sprintf(format, args...)})
	}

	if result.Command == types.CommandUninstall {
		add(kindTitle, "Removing files")
		if len(result.Removed) == 0 {
			add(kindMuted, "No installed files found")
		}
		for _, group := range groupByDir(result.Removed, rel) {
			add(kindSuccess, "Removed %d file(s) from %s/", group.count, group.dir)
		}
	} else {
		add(kindTitle, "Copying files")
		if len(result.Copied) == 0 && len(result.Skipped) == 0 {
			add(kindMuted, "No files to copy")
		}
		for _, group := range groupByDir(result.Copied, rel) {
			add(kindSuccess, "Copied %d file(s) to %s/", group.count, group.dir)
		}
		if len(result.Skipped) > 0 {
			add(kindInfo, "Skipped %d existing file(s), run update to overwrite", len(result.Skipped))
		}
	}

	if len(result.Env) > 0 {
		add(kindTitle, "Environment")
		verb := "added"
		if result.Command == types.CommandUninstall {
			verb = "removed"
		}
		for _, env := range result.Env {
			name := rel(env.Path)
			switch {
			case env.Missing:
				add(kindMuted, "%s not found, skipped", name)
			case len(env.Keys) == 0:
				add(kindMuted, "%s already up to date", name)
			default:
				add(kindSuccess, "%s: %s %d key(s): %s", name, verb, len(env.Keys), strings.Join(env.Keys, ", "))
			}
			for _, n := range env.Ambiguous {
				add(kindWarning, "%s line %d could not be parsed and was left untouched", name, n)
			}
		}
	}

	if result.Routes != nil {
		add(kindTitle, "Routes")
		routes := result.Routes
		name := rel(routes.Path)
		switch {
		case routes.Removed:
			add(kindSuccess, "%s: route block removed", name)
		case routes.Created:
			add(kindSuccess, "%s: created with route block", name)
		case routes.Inserted && routes.ImportAdded:
			add(kindSuccess, "%s: route block and import added", name)
		case routes.Inserted:
			add(kindSuccess, "%s: route block added", name)
		case routes.ImportAdded:
			add(kindSuccess, "%s: import added", name)
		case routes.Present && result.Command == types.CommandUninstall:
			add(kindWarning, "%s: route block found but could not be removed", name)
		case routes.Present:
			add(kindMuted, "%s: route block already present", name)
		default:
			add(kindMuted, "%s: no route block found", name)
		}
	}

	return lines
}

type dirGroup struct {
	dir   string
	count int
}

// groupByDir counts paths per parent directory, in order of first
// appearance.
func groupByDir(paths []string, rel func(string) string) []dirGroup {
	var groups []dirGroup
	index := make(map[string]int)
	for _, path := range paths {
		dir := rel(filepath.Dir(path))
		if i, ok := index[dir]; ok {
			groups[i].count++
			continue
		}
		index[dir] = len(groups)
		groups = append(groups, dirGroup{dir: dir, count: 1})
	}
	return groups
}

// TerminalRenderer renders results with lipgloss styles.
type TerminalRenderer struct {
	basePath string
}

// NewTerminalRenderer creates a TerminalRenderer showing paths relative to
// basePath.
func NewTerminalRenderer(basePath string) *TerminalRenderer {
	return &TerminalRenderer{basePath: basePath}
}

// RenderResult renders a result as styled sections.
func (r *TerminalRenderer) RenderResult(result *types.Result) string {
	var b strings.Builder
	for i, l := range summarize(result, r.basePath) {
		switch l.kind {
		case kindTitle:
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(TitleStyle.Render(l.text))
		case kindSuccess:
			b.WriteString(Indent(SuccessStyle.Render("✓")+" "+NormalStyle.Render(l.text), 1))
		case kindInfo:
			b.WriteString(Indent(InfoStyle.Render("•")+" "+NormalStyle.Render(l.text), 1))
		case kindWarning:
			b.WriteString(Indent(WarningStyle.Render("!")+" "+NormalStyle.Render(l.text), 1))
		case kindMuted:
			b.WriteString(Indent(MutedStyle.Render("○ "+l.text), 1))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderError renders an error, including its code and details when it is
// a GraftError.
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	text := ErrorStyle.Render("✗ Error") + " " + NormalStyle.Render(err.Error())
	if details := detailLine(err); details != "" {
		text += "\n" + Indent(MutedStyle.Render(details), 1)
	}
	return text + "\n"
}

// PlainRenderer renders results without any styling.
type PlainRenderer struct {
	basePath string
}

// NewPlainRenderer creates a PlainRenderer showing paths relative to
// basePath.
func NewPlainRenderer(basePath string) *PlainRenderer {
	return &PlainRenderer{basePath: basePath}
}

// RenderResult renders a result as plain text.
func (r *PlainRenderer) RenderResult(result *types.Result) string {
	var b strings.Builder
	for i, l := range summarize(result, r.basePath) {
		switch l.kind {
		case kindTitle:
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(l.text + ":")
		case kindWarning:
			b.WriteString("  warning: " + l.text)
		default:
			b.WriteString("  " + l.text)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	text := "Error: " + err.Error()
	if details := detailLine(err); details != "" {
		text += "\n  " + details
	}
	return text + "\n"
}

// detailLine formats GraftError details as sorted key=value pairs.
func detailLine(err error) string {
	details := errors.GetErrorDetails(err)
	if len(details) == 0 {
		return ""
	}
	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, details[key]))
	}
	return strings.Join(parts, " ")
}

// RenderStructured marshals a result as JSON or YAML.
func RenderStructured(result *types.Result, format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to encode result as JSON")
		}
		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to encode result as YAML")
		}
		return string(data), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "format %s is not structured", format)
	}
}
