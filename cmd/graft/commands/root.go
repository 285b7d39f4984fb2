package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/graft/internal/version"
	"github.com/arthur-debert/graft/pkg/config"
	"github.com/arthur-debert/graft/pkg/errors"
	"github.com/arthur-debert/graft/pkg/filesystem"
	"github.com/arthur-debert/graft/pkg/installer"
	"github.com/arthur-debert/graft/pkg/logging"
	"github.com/arthur-debert/graft/pkg/style"
	"github.com/arthur-debert/graft/pkg/types"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Confirmer asks the user a yes/no question.
type Confirmer func(question string) (bool, error)

// app carries the state shared by all commands of one invocation.
type app struct {
	verbosity int
	basePath  string
	stubRoot  string
	format    string

	confirm     Confirmer
	interactive bool
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		format := style.Resolve(style.FormatAuto, os.Stderr)
		fmt.Fprint(os.Stderr, style.NewRenderer(format, "").RenderError(err))
		return 1
	}
	return 0
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{
		confirm:     ptermConfirm,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "graft",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.basePath, "base", "", MsgFlagBase)
	rootCmd.PersistentFlags().StringVar(&a.stubRoot, "stubs", "", MsgFlagStubs)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newInstallCmd(a))
	rootCmd.AddCommand(newUpdateCmd(a))
	rootCmd.AddCommand(newUninstallCmd(a))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newCategoriesCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig merges the configuration sources with the global flags.
func (a *app) loadConfig() (*config.Config, error) {
	overrides := map[string]interface{}{}
	if a.basePath != "" {
		overrides["base_path"] = a.basePath
	}
	if a.stubRoot != "" {
		overrides["stub_root"] = a.stubRoot
	}
	return config.Load(overrides)
}

// newInstaller loads the configuration and builds an Installer over the
// real filesystem.
func (a *app) newInstaller() (*installer.Installer, *config.Config, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log.Info().
		Str("base", cfg.BasePath).
		Str("stubs", cfg.StubRoot).
		Msg("Using configuration")

	inst := installer.New(filesystem.NewOS(), cfg.StubRoot, cfg.BasePath, cfg.InstallerSpec())
	return inst, cfg, nil
}

// confirmOrForce returns true when the command may proceed. Without a
// terminal to ask on, --force is required.
func (a *app) confirmOrForce(cmd *cobra.Command, force bool, question string) (bool, error) {
	if force {
		return true, nil
	}
	if !a.interactive {
		return false, errors.Newf(errors.ErrInvalidInput, MsgErrNeedsForce, cmd.Name())
	}
	return a.confirm(question)
}

// outputFormat parses --format and resolves auto detection against stdout.
func (a *app) outputFormat() (style.Format, error) {
	format, err := style.ParseFormat(a.format)
	if err != nil {
		return format, errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}
	return style.Resolve(format, os.Stdout), nil
}

// render writes a result in format. A nil result writes nothing.
func render(out io.Writer, format style.Format, result *types.Result, basePath string) error {
	if result == nil {
		return nil
	}

	if format == style.FormatJSON || format == style.FormatYAML {
		text, err := style.RenderStructured(result, format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, text)
		return err
	}

	_, err := fmt.Fprint(out, style.NewRenderer(format, basePath).RenderResult(result))
	return err
}

func ptermConfirm(question string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show(question)
}
