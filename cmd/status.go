package cmd

import (
	"github.com/inovacc/gpm/internal/core"
	"github.com/inovacc/gpm/internal/model"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	var clean, dirty bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Get the status of watched git repositories",
		Long: `Print a report for every watched repository: bare or not, CLEAN or DIRTY,
repository state, remotes and current branch.

A repository is DIRTY when its working tree differs from the index.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			entries, err := a.store.Entries(model.Watched)
			if err != nil {
				// malformed entries are skipped, the rest is still reported
				a.warnf("%v", err)
			}

			repos, openErrs := core.OpenEntries(ctx, entries)
			for _, err := range openErrs {
				a.logger.Warn("skipping repository", "error", err)
			}

			repos = core.FilterByStatus(ctx, repos, clean, dirty)
			if len(repos) == 0 {
				a.printf("%s\n", a.colors.dim("No repository to report."))

				return nil
			}

			for i, r := range repos {
				if i > 0 {
					a.printf("\n")
				}

				a.printReport(core.BuildReport(ctx, r))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&clean, "clean", false, "Get only clean projects")
	cmd.Flags().BoolVar(&dirty, "dirty", false, "Get only dirty projects")
	cmd.MarkFlagsMutuallyExclusive("clean", "dirty")

	return cmd
}

func (a *app) printReport(rep core.Report) {
	a.printf("%s\n", a.colors.header(core.RepoName(rep.Path)))

	for _, line := range rep.Lines() {
		value := line.Value

		switch {
		case line.Placeholder:
			value = a.colors.dim(value)
		case line.Key == "status":
			value = a.colors.statusLabel(value)
		}

		a.printf("  %-9s %s\n", line.Key, value)
	}
}
