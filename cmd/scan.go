package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/inovacc/gpm/internal/application"
	"github.com/inovacc/gpm/internal/core"
	"github.com/inovacc/gpm/internal/model"
	"github.com/spf13/cobra"
)

// discoverOptions are the walk flags shared by scan and override
type discoverOptions struct {
	maxDepth int
	exclude  []string
	jsonOut  bool // print the reconcile result as JSON
}

func (o *discoverOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.maxDepth, "max-depth", 0, "Maximum directory depth to descend (0 = unlimited)")
	cmd.Flags().StringSliceVar(&o.exclude, "exclude", nil, "Directory names to skip (e.g. node_modules,vendor)")
	cmd.Flags().BoolVar(&o.jsonOut, "json", false, "Output results as JSON")
}

func newScanCmd(a *app) *cobra.Command {
	var (
		opts discoverOptions
		diff bool
		save bool
	)

	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Scan your disk to find git repositories",
		Long: `Walk a directory tree (your home directory by default) and compare the
git repositories found outside hidden directories with the configuration.

Without --save the configuration is left untouched and new repositories
are only printed.

Examples:
  gpm scan                    # Print new repositories below ~
  gpm scan ~/code --save      # Record new repositories as watched
  gpm scan --exclude node_modules,vendor --max-depth 4
  gpm scan --json             # Machine-readable result`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			repos, err := a.discover(args, opts)
			if err != nil {
				return err
			}

			result := core.Reconcile(repos, a.store, model.Watched, !save)
			if err := a.printReconcile(result, opts.jsonOut); err != nil {
				return err
			}

			if save && len(result.Added) > 0 {
				a.changed = true
			}

			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&diff, "diff", false, "Print new git repositories from your disk")
	cmd.Flags().BoolVar(&save, "save", false, "Save new git repositories into your configuration file")
	cmd.MarkFlagsMutuallyExclusive("diff", "save")

	return cmd
}

// discover scans the root in args (home directory when absent) and drops
// repositories below hidden directories.
func (a *app) discover(args []string, opts discoverOptions) ([]string, error) {
	root := ""
	if len(args) > 0 {
		root = args[0]
	} else {
		home, err := application.GetHomeDirectory()
		if err != nil {
			return nil, err
		}

		root = home
	}

	scanner := core.NewScanner(
		core.WithLogger(a.logger),
		core.WithMaxDepth(opts.maxDepth),
		core.WithExclude(opts.exclude...),
	)

	found, err := scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	visible := core.FilterHidden(found)
	a.logger.Debug("scan finished", "root", root, "found", len(found), "visible", len(visible))

	return visible, nil
}

func (a *app) printReconcile(result *core.ReconcileResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(result)
	}

	for _, o := range result.Reported {
		a.printf("New repository to save: %s\n", o.Path)
	}

	for _, o := range result.Added {
		a.printf("%s\n", a.colors.ok(fmt.Sprintf("%s has been added to %s", o.Name, result.Category)))
	}

	for _, o := range result.Failed {
		a.warnf("%s (%s): %v", o.Name, o.Path, o.Err)
	}

	summary := fmt.Sprintf("%d new, %d already tracked", result.TotalNew(), len(result.Tracked))
	if len(result.Failed) > 0 {
		summary += fmt.Sprintf(", %d failed", len(result.Failed))
	}

	a.printf("%s\n", a.colors.dim(summary))

	return nil
}
