package routes

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/graft/pkg/errors"
	"github.com/arthur-debert/graft/pkg/logging"
	"github.com/arthur-debert/graft/pkg/textblock"
	"github.com/arthur-debert/graft/pkg/types"
	"github.com/rs/zerolog"
)

// Patcher applies a Block to a route file through a types.FS.
type Patcher struct {
	fs     types.FS
	block  Block
	logger zerolog.Logger
}

// NewPatcher creates a Patcher for block.
func NewPatcher(fs types.FS, block Block) *Patcher {
	return &Patcher{
		fs:     fs,
		block:  block,
		logger: logging.GetLogger("routes.patcher"),
	}
}

// EnsureBlock makes sure the import line and the marked block are present in
// the file at path, creating the file from the skeleton when it is absent.
func (p *Patcher) EnsureBlock(path string) (types.RouteResult, error) {
	result := types.RouteResult{Path: path}

	content, perm, exists, err := p.read(path)
	if err != nil {
		return result, err
	}
	if !exists {
		content = p.block.Skeleton()
		perm = 0644
	}

	updated, change := InsertBlock(content, p.block)
	if exists && !change.Changed() {
		p.logger.Debug().Str("path", path).Msg("Route block already present")
		result.Present = true
		return result, nil
	}

	dir := filepath.Dir(path)
	if err := p.fs.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dir).
			WithDetail("path", dir)
	}
	if err := p.fs.WriteFile(path, []byte(updated), perm); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "cannot write route file %s", path).
			WithDetail("path", path)
	}

	result.Present = true
	result.Created = !exists
	result.ImportAdded = change.ImportAdded
	result.Inserted = change.Inserted

	p.logger.Info().
		Str("path", path).
		Bool("created", result.Created).
		Bool("importAdded", result.ImportAdded).
		Msg("Route block installed")

	return result, nil
}

// RemoveBlock deletes the marked block from the file at path. An absent file
// or one without the block is left alone.
func (p *Patcher) RemoveBlock(path string) (types.RouteResult, error) {
	result := types.RouteResult{Path: path}

	content, perm, exists, err := p.read(path)
	if err != nil || !exists {
		return result, err
	}

	updated, removed := RemoveBlock(content, p.block)
	if !removed {
		result.Present = textblock.HasLine(content, p.block.StartMarker)
		if result.Present {
			p.logger.Warn().Str("path", path).Msg("Start marker found without a matching end marker")
		}
		return result, nil
	}

	if err := p.fs.WriteFile(path, []byte(updated), perm); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "cannot write route file %s", path).
			WithDetail("path", path)
	}

	result.Removed = true
	result.Present = textblock.HasLine(updated, p.block.StartMarker)
	p.logger.Info().Str("path", path).Msg("Route block removed")

	return result, nil
}

func (p *Patcher) read(path string) (string, fs.FileMode, bool, error) {
	info, err := p.fs.Stat(path)
	if os.IsNotExist(err) {
		return "", 0, false, nil
	}
	if err != nil {
		return "", 0, false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat route file %s", path).
			WithDetail("path", path)
	}

	data, err := p.fs.ReadFile(path)
	if err != nil {
		return "", 0, false, errors.Wrapf(err, errors.ErrFileRead, "cannot read route file %s", path).
			WithDetail("path", path)
	}
	return string(data), info.Mode().Perm(), true, nil
}
