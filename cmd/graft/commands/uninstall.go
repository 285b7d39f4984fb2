package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUninstallCmd(a *app) *cobra.Command {
	var (
		keepEnv bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:     "uninstall",
		Short:   MsgUninstallShort,
		Long:    MsgUninstallLong,
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

			ok, err := a.confirmOrForce(cmd, force, MsgConfirmUninstall)
			if err != nil {
				return err
			}
			if !ok {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), MsgAborted)
				return err
			}

			result, runErr := inst.Uninstall(!keepEnv)
			if err := render(cmd.OutOrStdout(), format, result, cfg.BasePath); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&keepEnv, "keep-env", false, MsgFlagKeepEnv)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	return cmd
}
