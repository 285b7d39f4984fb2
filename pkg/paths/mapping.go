package paths

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/graft/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// root describes where one category lands in the host tree.
type root struct {
	// base is the slash separated directory below the host base path
	base string

	// studly converts the first sub path segment to StudlyCase
	studly bool
}

var categoryRoots = map[string]root{
	"app":           {base: "app", studly: true},
	"controllers":   {base: "app/Http/Controllers", studly: true},
	"models":        {base: "app/Models", studly: true},
	"services":      {base: "app/Services", studly: true},
	"notifications": {base: "app/Notifications", studly: true},
	"listeners":     {base: "app/Listeners", studly: true},
	"jobs":          {base: "app/Jobs", studly: true},
	"events":        {base: "app/Events", studly: true},
	"config":        {base: "config"},
	"migrations":    {base: "database/migrations"},
	"database":      {base: "database"},
	"resources":     {base: "resources"},
}

// Mapper resolves stub entries to absolute target paths below a base path.
type Mapper struct {
	basePath string
}

// NewMapper creates a Mapper rooted at basePath. basePath is cleaned but not
// made absolute; callers pass an absolute path.
func NewMapper(basePath string) *Mapper {
	return &Mapper{basePath: filepath.Clean(basePath)}
}

// BasePath returns the host application root.
func (m *Mapper) BasePath() string {
	return m.basePath
}

// Categories returns the known category names, sorted.
func Categories() []string {
	names := make([]string, 0, len(categoryRoots))
	for name := range categoryRoots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Split breaks a path relative to the stub root into its category and the
// sub path below it. Both use forward slashes.
func Split(rel string) (category, subPath string) {
	rel = strings.TrimLeft(filepath.ToSlash(rel), "/")
	category, subPath, _ = strings.Cut(rel, "/")
	return category, subPath
}

// Resolve returns the absolute target for a stub file. An unknown category
// yields an ErrUnknownCategory error, which callers treat as "skip this file".
func (m *Mapper) Resolve(category, subPath string) (string, error) {
	r, err := lookup(category)
	if err != nil {
		return "", err
	}

	if err := ValidatePath(subPath); err != nil {
		return "", err
	}

	clean := path.Clean(strings.TrimLeft(filepath.ToSlash(subPath), "/"))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", errors.Newf(errors.ErrPathEscape, "sub path %q escapes category %q", subPath, category).
			WithDetail("category", category)
	}
	if clean == "." {
		return "", errors.Newf(errors.ErrInvalidInput, "no file below category %q", category)
	}

	if r.studly {
		first, rest, found := strings.Cut(clean, "/")
		clean = Studly(first)
		if found {
			clean += "/" + rest
		}
	}

	return filepath.Join(m.basePath, filepath.FromSlash(r.base), filepath.FromSlash(clean)), nil
}

// RootFor returns the directory a category's files are mapped under. Pruning
// may remove this directory when it is empty but never anything above it.
func (m *Mapper) RootFor(category string) (string, error) {
	r, err := lookup(category)
	if err != nil {
		return "", err
	}
	return filepath.Join(m.basePath, filepath.FromSlash(r.base)), nil
}

// StudlyFirst reports whether category converts the first sub path segment
// to StudlyCase.
func StudlyFirst(category string) bool {
	r, err := lookup(category)
	return err == nil && r.studly
}

func lookup(category string) (root, error) {
	category = strings.Trim(filepath.ToSlash(category), "/")
	r, ok := categoryRoots[category]
	if !ok {
		return root{}, errors.Newf(errors.ErrUnknownCategory, "no mapping for category %q", category).
			WithDetail("category", category)
	}
	return r, nil
}

// Studly converts an identifier such as "payment_gateway" or "a2" to
// StudlyCase ("PaymentGateway", "A2"). Only the first character of each word
// is uppercased, so "2fa_code" becomes "2faCode".
func Studly(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})

	upper := cases.Upper(language.Und)
	var b strings.Builder
	for _, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		b.WriteString(upper.String(string(first)))
		b.WriteString(word[size:])
	}
	return b.String()
}

// Within reports whether target lies strictly below dir.
func Within(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
