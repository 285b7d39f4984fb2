package stubs

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/graft/pkg/errors"
	"github.com/arthur-debert/graft/pkg/logging"
	"github.com/arthur-debert/graft/pkg/paths"
	"github.com/arthur-debert/graft/pkg/types"
	"github.com/rs/zerolog"
)

// Uninstaller removes the files a Synchronizer would write.
type Uninstaller struct {
	fs       types.FS
	stubRoot string
	mapper   *paths.Mapper
	logger   zerolog.Logger
}

// NewUninstaller creates an Uninstaller for the stubs below stubRoot.
func NewUninstaller(fs types.FS, stubRoot string, mapper *paths.Mapper) *Uninstaller {
	return &Uninstaller{
		fs:       fs,
		stubRoot: stubRoot,
		mapper:   mapper,
		logger:   logging.GetLogger("stubs.uninstall"),
	}
}

// RemoveSyncedFiles deletes the target of every stub that exists, then prunes
// parent directories left empty. Pruning stops at the category root, which is
// removed too when empty, or at the first directory that still has entries.
func (u *Uninstaller) RemoveSyncedFiles() (types.RemovalResult, error) {
	result := types.RemovalResult{Removed: []string{}}

	entries, err := Walk(u.fs, u.stubRoot)
	if err != nil {
		return result, err
	}

	for _, entry := range entries {
		target, ok := resolve(u.mapper, entry, u.logger)
		if !ok {
			continue
		}

		info, err := u.fs.Lstat(target)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", target).
				WithDetail("path", target)
		}
		if info.IsDir() {
			u.logger.Warn().Str("target", target).Msg("Target is a directory, leaving it alone")
			continue
		}

		if err := u.fs.Remove(target); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileRemove, "cannot remove %s", target).
				WithDetail("path", target)
		}
		u.logger.Debug().Str("target", target).Msg("Removed file")
		result.Removed = types.AppendUnique(result.Removed, target)

		boundary, err := u.mapper.RootFor(entry.Category)
		if err != nil {
			return result, err
		}
		if err := u.prune(filepath.Dir(target), boundary); err != nil {
			return result, err
		}
	}

	u.logger.Info().Int("removed", len(result.Removed)).Msg("Synced files removed")
	return result, nil
}

// prune removes dir and its parents while they are empty, up to and
// including boundary. Nothing above boundary is touched.
func (u *Uninstaller) prune(dir, boundary string) error {
	for {
		atBoundary := filepath.Clean(dir) == filepath.Clean(boundary)
		if !atBoundary && !paths.Within(boundary, dir) {
			return nil
		}

		items, err := u.fs.ReadDir(dir)
		if os.IsNotExist(err) {
			if atBoundary {
				return nil
			}
			dir = filepath.Dir(dir)
			continue
		}
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "cannot read directory %s", dir).
				WithDetail("path", dir)
		}
		if len(items) > 0 {
			return nil
		}

		if err := u.fs.Remove(dir); err != nil {
			return errors.Wrapf(err, errors.ErrFileRemove, "cannot remove directory %s", dir).
				WithDetail("path", dir)
		}
		u.logger.Debug().Str("dir", dir).Msg("Pruned empty directory")
		if atBoundary {
			return nil
		}
		dir = filepath.Dir(dir)
	}
}
