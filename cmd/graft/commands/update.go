package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdateCmd(a *app) *cobra.Command {
	var (
		skipEnv bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:     "update",
		Short:   MsgUpdateShort,
		Long:    MsgUpdateLong,
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

			ok, err := a.confirmOrForce(cmd, force, MsgConfirmUpdate)
			if err != nil {
				return err
			}
			if !ok {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), MsgAborted)
				return err
			}

			result, runErr := inst.Update(!skipEnv)
			if err := render(cmd.OutOrStdout(), format, result, cfg.BasePath); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&skipEnv, "skip-env", false, MsgFlagSkipEnv)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	return cmd
}
