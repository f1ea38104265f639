package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			application.Session.CheckAuth(ctx)
			application.Projects.Fetch(ctx)
			if err := application.Projects.Err(); err != nil {
				return err
			}
			current, _ := application.Projects.CurrentID()
			for _, p := range application.Projects.Projects() {
				marker := " "
				if p.ID == current {
					marker = "*"
				}
				fmt.Printf("%s %d\t%s\t%s\n", marker, p.ID, p.Name, p.Description)
			}
			return nil
		},
	}

	var description string
	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a project and select it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			application.Session.CheckAuth(ctx)
			project, err := application.Projects.Create(ctx, args[0], description)
			if err != nil {
				return err
			}
			fmt.Printf("Created project %d (%s)\n", project.ID, project.Name)
			return nil
		},
	}
	createCmd.Flags().StringVarP(&description, "description", "d", "", "project description")

	useCmd := &cobra.Command{
		Use:   "use <id>",
		Short: "Select the current project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			application.Session.CheckAuth(ctx)
			application.Projects.Fetch(ctx)
			if err := application.Projects.Select(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Using project %d\n", id)
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			application.Session.CheckAuth(ctx)
			application.Projects.Fetch(ctx)
			if err := application.Projects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted project %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(createCmd, useCmd, deleteCmd)
	return cmd
}
