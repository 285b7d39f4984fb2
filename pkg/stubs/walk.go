package stubs

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/graft/pkg/errors"
	"github.com/arthur-debert/graft/pkg/paths"
	"github.com/arthur-debert/graft/pkg/types"
)

// Entry is a regular file in the stub tree.
type Entry struct {
	// Source is the full path of the stub file
	Source string

	// Rel is the slash separated path relative to the stub root
	Rel string

	Category string
	SubPath  string
	Mode     fs.FileMode
}

// Walk lists every regular, non-hidden file below root in lexical order.
// Hidden directories are not descended into.
func Walk(fsys types.FS, root string) ([]Entry, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access stub root %s", root).
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "stub root %s is not a directory", root).
			WithDetail("path", root)
	}

	var entries []Entry
	if err := walkDir(fsys, root, root, &entries); err != nil {
		return entries, err
	}
	return entries, nil
}

func walkDir(fsys types.FS, root, dir string, out *[]Entry) error {
	items, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read stub directory %s", dir).
			WithDetail("path", dir)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name() < items[j].Name()
	})

	for _, item := range items {
		if isHidden(item.Name()) {
			continue
		}

		full := filepath.Join(dir, item.Name())
		if item.IsDir() {
			if err := walkDir(fsys, root, full, out); err != nil {
				return err
			}
			continue
		}

		info, err := item.Info()
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat stub %s", full).
				WithDetail("path", full)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		rel, err := filepath.Rel(root, full)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "stub %s is outside %s", full, root)
		}
		rel = filepath.ToSlash(rel)
		category, subPath := paths.Split(rel)

		*out = append(*out, Entry{
			Source:   full,
			Rel:      rel,
			Category: category,
			SubPath:  subPath,
			Mode:     info.Mode(),
		})
	}
	return nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
