package commands

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/graft/pkg/paths"
	"github.com/arthur-debert/graft/pkg/style"
	"github.com/spf13/cobra"
)

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Short:   MsgCategoriesShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.outputFormat(); err != nil {
				return err
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			mapper := paths.NewMapper(cfg.BasePath)
			var rows [][]string
			for _, category := range paths.Categories() {
				root, err := mapper.RootFor(category)
				if err != nil {
					return err
				}
				rel, err := filepath.Rel(cfg.BasePath, root)
				if err != nil {
					rel = root
				}

				note := ""
				if paths.StudlyFirst(category) {
					note = MsgStudlyNote
				}
				rows = append(rows, []string{category + "/", filepath.ToSlash(rel) + "/", note})
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), style.RenderTable(
				[]string{"CATEGORY", "TARGET", "NOTE"}, rows))
			return err
		},
	}
}
