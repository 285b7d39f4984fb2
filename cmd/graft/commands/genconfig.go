package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/graft/pkg/config"
	"github.com/arthur-debert/graft/pkg/errors"
	"github.com/arthur-debert/graft/pkg/filesystem"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(a *app) *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			content, err := config.GenerateContent(cfg)
			if err != nil {
				return err
			}

			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			fs := filesystem.NewOS()
			target := filepath.Join(cfg.BasePath, config.FileNames[0])
			if _, err := fs.Stat(target); err == nil && !force {
				return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, target).
					WithDetail("path", target)
			} else if err != nil && !os.IsNotExist(err) {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", target)
			}

			if err := fs.WriteFile(target, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", target).
					WithDetail("path", target)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	return cmd
}
