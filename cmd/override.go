package cmd

import (
	"github.com/inovacc/gpm/internal/core"
	"github.com/inovacc/gpm/internal/model"
	"github.com/spf13/cobra"
)

func newOverrideCmd(a *app) *cobra.Command {
	var opts discoverOptions

	category := model.NewCategoryFlag(model.Watched)

	cmd := &cobra.Command{
		Use:   "override [root]",
		Short: "Store new git repositories under a chosen category",
		Long: `Scan like "gpm scan --save", but record the new repositories under the
category given by --category instead of watched.

Examples:
  gpm override --category ignored ~/vendor-src`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			repos, err := a.discover(args, opts)
			if err != nil {
				return err
			}

			result := core.Reconcile(repos, a.store, category.Value, false)
			if err := a.printReconcile(result, opts.jsonOut); err != nil {
				return err
			}

			if len(result.Added) > 0 {
				a.changed = true
			}

			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().Var(category, "category", "Category of new git repositories (watched or ignored)")

	return cmd
}
