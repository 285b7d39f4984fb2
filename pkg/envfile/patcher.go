package envfile

import (
	"os"

	"github.com/arthur-debert/graft/pkg/errors"
	"github.com/arthur-debert/graft/pkg/logging"
	"github.com/arthur-debert/graft/pkg/types"
	"github.com/rs/zerolog"
)

// Patcher applies a Spec to env files through a types.FS.
type Patcher struct {
	fs     types.FS
	spec   Spec
	logger zerolog.Logger
}

// NewPatcher creates a Patcher for spec.
func NewPatcher(fs types.FS, spec Spec) *Patcher {
	return &Patcher{
		fs:     fs,
		spec:   spec,
		logger: logging.GetLogger("envfile.patcher"),
	}
}

// EnsureKeys appends the missing package keys to the file at path. An absent
// file is reported as Missing and not created.
func (p *Patcher) EnsureKeys(path string) (types.EnvFileResult, error) {
	return p.apply(path, AppendBlock, "added")
}

// RemoveKeys strips the package block from the file at path.
func (p *Patcher) RemoveKeys(path string) (types.EnvFileResult, error) {
	return p.apply(path, StripBlock, "removed")
}

func (p *Patcher) apply(path string, merge func(string, Spec) (string, Report), verb string) (types.EnvFileResult, error) {
	result := types.EnvFileResult{Path: path, Keys: []string{}}

	info, err := p.fs.Stat(path)
	if os.IsNotExist(err) {
		p.logger.Debug().Str("path", path).Msg("Env file not found, leaving it alone")
		result.Missing = true
		return result, nil
	}
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat env file %s", path).
			WithDetail("path", path)
	}

	data, err := p.fs.ReadFile(path)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrFileRead, "cannot read env file %s", path).
			WithDetail("path", path)
	}

	content := string(data)
	updated, report := merge(content, p.spec)
	result.Ambiguous = report.Ambiguous

	if len(report.Ambiguous) > 0 {
		p.logger.Warn().
			Str("path", path).
			Ints("lines", report.Ambiguous).
			Msg("Left unparseable lines untouched")
	}

	if updated == content {
		return result, nil
	}

	if err := p.fs.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "cannot write env file %s", path).
			WithDetail("path", path)
	}

	result.Keys = report.Keys
	p.logger.Info().
		Str("path", path).
		Strs(verb, report.Keys).
		Msg("Env file updated")

	return result, nil
}
