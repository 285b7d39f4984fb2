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

// Synchronizer copies the stub tree into the host tree.
type Synchronizer struct {
	fs       types.FS
	stubRoot string
	mapper   *paths.Mapper
	logger   zerolog.Logger
}

// NewSynchronizer creates a Synchronizer for the stubs below stubRoot.
func NewSynchronizer(fs types.FS, stubRoot string, mapper *paths.Mapper) *Synchronizer {
	return &Synchronizer{
		fs:       fs,
		stubRoot: stubRoot,
		mapper:   mapper,
		logger:   logging.GetLogger("stubs.sync"),
	}
}

// Sync writes every mapped stub to its target. With overwrite false an
// existing target is recorded as skipped and left untouched.
//
// The first I/O error stops the walk. The result still lists what was copied
// before it; nothing is rolled back.
func (s *Synchronizer) Sync(overwrite bool) (types.SyncResult, error) {
	result := types.SyncResult{Copied: []string{}, Skipped: []string{}}

	entries, err := Walk(s.fs, s.stubRoot)
	if err != nil {
		return result, err
	}

	for _, entry := range entries {
		target, ok := resolve(s.mapper, entry, s.logger)
		if !ok {
			continue
		}

		_, err := s.fs.Stat(target)
		switch {
		case err == nil && !overwrite:
			s.logger.Debug().Str("target", target).Msg("Target exists, skipping")
			result.Skipped = types.AppendUnique(result.Skipped, target)
			continue
		case err != nil && !os.IsNotExist(err):
			return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", target).
				WithDetail("path", target)
		}

		if err := s.copy(entry, target); err != nil {
			return result, err
		}

		s.logger.Debug().Str("source", entry.Rel).Str("target", target).Msg("Copied stub")
		result.Copied = types.AppendUnique(result.Copied, target)
	}

	s.logger.Info().
		Int("copied", len(result.Copied)).
		Int("skipped", len(result.Skipped)).
		Msg("Stub tree synchronized")

	return result, nil
}

func (s *Synchronizer) copy(entry Entry, target string) error {
	dir := filepath.Dir(target)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dir).
			WithDetail("path", dir)
	}

	data, err := s.fs.ReadFile(entry.Source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read stub %s", entry.Source).
			WithDetail("path", entry.Source)
	}

	if err := s.fs.WriteFile(target, data, entry.Mode.Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", target).
			WithDetail("path", target)
	}
	return nil
}

// resolve maps entry to its target. Entries that cannot be mapped are logged
// and reported as not ok.
func resolve(mapper *paths.Mapper, entry Entry, logger zerolog.Logger) (string, bool) {
	target, err := mapper.Resolve(entry.Category, entry.SubPath)
	if err == nil {
		return target, true
	}

	if errors.IsErrorCode(err, errors.ErrUnknownCategory) {
		logger.Debug().Str("stub", entry.Rel).Msg("No mapping for category, ignoring")
	} else {
		logger.Warn().Err(err).Str("stub", entry.Rel).Msg("Stub cannot be mapped, ignoring")
	}
	return "", false
}
