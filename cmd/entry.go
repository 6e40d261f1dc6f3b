package cmd

import (
	"fmt"

	"github.com/inovacc/gpm/internal/model"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <name>",
		Short: "Move an ignored repository to the watched ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.transfer(args[0], model.Ignored, model.Watched)
		},
	}
}

func newIgnoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ignore <name>",
		Short: "Move a watched repository to the ignored ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.transfer(args[0], model.Watched, model.Ignored)
		},
	}
}

func (a *app) transfer(name string, from, to model.Category) error {
	if err := a.store.TransferEntry(name, from, to); err != nil {
		a.warnf("%v", err)

		return nil
	}

	a.changed = true
	a.printf("%s\n", a.colors.ok(fmt.Sprintf("%s moved from %s to %s", name, from, to)))

	return nil
}

func newForgetCmd(a *app) *cobra.Command {
	category := model.NewCategoryFlag(model.Watched)

	cmd := &cobra.Command{
		Use:   "forget <name>",
		Short: "Remove a repository from the configuration",
		Long: `Remove a repository entry from the configuration file. The repository
itself is left untouched on disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := args[0]

			if _, err := a.store.RemoveEntry(name, category.Value); err != nil {
				a.warnf("%v", err)

				return nil
			}

			a.changed = true
			a.printf("%s\n", a.colors.ok(fmt.Sprintf("%s removed from %s", name, category.Value)))

			return nil
		},
	}

	cmd.Flags().Var(category, "category", "Category holding the repository (watched or ignored)")

	return cmd
}
