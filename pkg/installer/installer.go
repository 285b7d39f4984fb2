package installer

import (
	"path/filepath"

	"github.com/arthur-debert/graft/pkg/envfile"
	"github.com/arthur-debert/graft/pkg/logging"
	"github.com/arthur-debert/graft/pkg/paths"
	"github.com/arthur-debert/graft/pkg/routes"
	"github.com/arthur-debert/graft/pkg/stubs"
	"github.com/arthur-debert/graft/pkg/types"
	"github.com/rs/zerolog"
)

// Spec is the package specific content the installer manages besides the
// stub tree.
type Spec struct {
	Env envfile.Spec

	// EnvFiles are paths relative to the host base path
	EnvFiles []string

	Routes routes.Block

	// RouteFile is relative to the host base path. Empty disables route
	// patching.
	RouteFile string
}

// Installer runs install, update and uninstall against one host tree.
type Installer struct {
	basePath     string
	spec         Spec
	synchronizer *stubs.Synchronizer
	uninstaller  *stubs.Uninstaller
	env          *envfile.Patcher
	routes       *routes.Patcher
	logger       zerolog.Logger
}

// New creates an Installer that mirrors stubRoot into basePath.
func New(fs types.FS, stubRoot, basePath string, spec Spec) *Installer {
	mapper := paths.NewMapper(basePath)
	return &Installer{
		basePath:     mapper.BasePath(),
		spec:         spec,
		synchronizer: stubs.NewSynchronizer(fs, stubRoot, mapper),
		uninstaller:  stubs.NewUninstaller(fs, stubRoot, mapper),
		env:          envfile.NewPatcher(fs, spec.Env),
		routes:       routes.NewPatcher(fs, spec.Routes),
		logger:       logging.GetLogger("installer"),
	}
}

// Install copies the stub tree, adds missing env keys when touchEnv is set and
// ensures the route block. Existing files are replaced only with overwrite.
//
// On error the returned result holds everything done before it.
func (i *Installer) Install(overwrite, touchEnv bool) (*types.Result, error) {
	return i.install(types.CommandInstall, overwrite, touchEnv)
}

// Update is Install with overwrite forced on.
func (i *Installer) Update(touchEnv bool) (*types.Result, error) {
	return i.install(types.CommandUpdate, true, touchEnv)
}

func (i *Installer) install(command string, overwrite, touchEnv bool) (*types.Result, error) {
	defer logging.LogOperationStart(i.logger, command)()
	result := newResult(command)

	synced, err := i.synchronizer.Sync(overwrite)
	result.Copied = synced.Copied
	result.Skipped = synced.Skipped
	if err != nil {
		return result, err
	}

	if touchEnv {
		for _, path := range i.envPaths() {
			envResult, err := i.env.EnsureKeys(path)
			result.Env = append(result.Env, envResult)
			if err != nil {
				return result, err
			}
		}
	}

	if i.spec.RouteFile != "" {
		routeResult, err := i.routes.EnsureBlock(i.routePath())
		result.Routes = &routeResult
		if err != nil {
			return result, err
		}
	}

	i.logger.Info().
		Str("command", result.Command).
		Int("copied", len(result.Copied)).
		Int("skipped", len(result.Skipped)).
		Int("envKeys", result.EnvKeyCount()).
		Msg("Operation complete")

	return result, nil
}

// Uninstall removes the synced files, strips the env keys when touchEnv is
// set and removes the route block.
func (i *Installer) Uninstall(touchEnv bool) (*types.Result, error) {
	defer logging.LogOperationStart(i.logger, types.CommandUninstall)()
	result := newResult(types.CommandUninstall)

	removed, err := i.uninstaller.RemoveSyncedFiles()
	result.Removed = removed.Removed
	if err != nil {
		return result, err
	}

	if touchEnv {
		for _, path := range i.envPaths() {
			envResult, err := i.env.RemoveKeys(path)
			result.Env = append(result.Env, envResult)
			if err != nil {
				return result, err
			}
		}
	}

	if i.spec.RouteFile != "" {
		routeResult, err := i.routes.RemoveBlock(i.routePath())
		result.Routes = &routeResult
		if err != nil {
			return result, err
		}
	}

	i.logger.Info().
		Str("command", result.Command).
		Int("removed", len(result.Removed)).
		Int("envKeys", result.EnvKeyCount()).
		Msg("Operation complete")

	return result, nil
}

func newResult(command string) *types.Result {
	return &types.Result{
		Command: command,
		Copied:  []string{},
		Skipped: []string{},
		Removed: []string{},
		Env:     []types.EnvFileResult{},
	}
}

func (i *Installer) envPaths() []string {
	files := make([]string, 0, len(i.spec.EnvFiles))
	for _, name := range i.spec.EnvFiles {
		files = append(files, i.resolve(name))
	}
	return files
}

func (i *Installer) routePath() string {
	return i.resolve(i.spec.RouteFile)
}

func (i *Installer) resolve(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(i.basePath, filepath.FromSlash(name))
}
