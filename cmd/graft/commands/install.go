package commands

import (
	"github.com/spf13/cobra"
)

func newInstallCmd(a *app) *cobra.Command {
	var (
		noOverwrite bool
		skipEnv     bool
	)

	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat()
			if err != nil {
				return err
			}

			inst, cfg, err := a.newInstaller()
			if err != nil {
				return err
			}

			result, runErr := inst.Install(!noOverwrite, !skipEnv)
			if err := render(cmd.OutOrStdout(), format, result, cfg.BasePath); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&noOverwrite, "no-overwrite", false, MsgFlagNoOverwrite)
	cmd.Flags().BoolVar(&skipEnv, "skip-env", false, MsgFlagSkipEnv)

	return cmd
}
