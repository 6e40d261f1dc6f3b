package cmd

import (
	"fmt"
	"strings"

	"github.com/inovacc/gpm/internal/application"
	"github.com/spf13/cobra"
)

func newGroupCmd(a *app) *cobra.Command {
	groupCmd := &cobra.Command{
		Use:   "group",
		Short: "Manage named groups of repositories",
		Long: `Groups are named lists of tracked repositories, stored under the groups
table of the configuration file.`,
	}

	addCmd := &cobra.Command{
		Use:   "add <group> <name>...",
		Short: "Add tracked repositories to a group",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			group, names := args[0], args[1:]

			if err := a.store.AddToGroup(group, names...); err != nil {
				a.warnf("%v", err)

				return nil
			}

			a.changed = true
			a.printf("%s\n", a.colors.ok(fmt.Sprintf("%s added to group %s", strings.Join(names, ", "), group)))

			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <group> <name>",
		Short: "Remove a repository from a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			group, name := args[0], args[1]

			if err := a.store.RemoveFromGroup(group, name); err != nil {
				a.warnf("%v", err)

				return nil
			}

			a.changed = true
			a.printf("%s\n", a.colors.ok(fmt.Sprintf("%s removed from group %s", name, group)))

			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List groups and their members",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			names := a.store.GroupNames()
			if len(names) == 0 {
				a.printf("No groups configured.\n")
				a.printf("Create one with: %s group add <group> <name>...\n", application.AppName)

				return nil
			}

			groups := a.store.Groups()
			for _, name := range names {
				a.printf("%s %s\n", a.colors.header(name), a.colors.dim(strings.Join(groups[name], ", ")))
			}

			return nil
		},
	}

	groupCmd.AddCommand(addCmd, removeCmd, listCmd)

	return groupCmd
}
