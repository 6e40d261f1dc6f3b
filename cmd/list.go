package cmd

import (
	"github.com/inovacc/gpm/internal/model"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked git repositories",
		Long:  `List the watched and ignored repositories recorded in the configuration file.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			categories := model.EntryCategories()

			if category != "" {
				flag := model.NewCategoryFlag(model.Watched)
				if err := flag.Set(category); err != nil {
					return err
				}

				categories = []model.Category{flag.Value}
			}

			for i, c := range categories {
				if i > 0 {
					a.printf("\n")
				}

				a.listCategory(c)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list one category (watched or ignored)")

	return cmd
}

func (a *app) listCategory(c model.Category) {
	entries, err := a.store.Entries(c)
	if err != nil {
		a.warnf("%v", err)
	}

	a.printf("%s\n", a.colors.header(c.Namespace()))

	if len(entries) == 0 {
		a.printf("  %s\n", a.colors.dim("(none)"))

		return
	}

	for _, e := range entries {
		a.printf("  %-20s %s\n", e.Name, a.colors.dim(e.Path))
	}
}
