package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"research-agent/client/internal/api"
)

func newPapersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "papers",
		Short: "Manage literature references in the current project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireProject(ctx); err != nil {
				return err
			}
			application.Papers.Fetch(ctx)
			for _, p := range application.Papers.Papers() {
				context := " "
				if p.InContext {
					context = "x"
				}
				fmt.Printf("[%s] %d\t%s (%d)\t%s\n", context, p.ID, p.Title, p.Year, p.Authors)
			}
			return nil
		},
	}

	draft := &api.PaperDraft{}
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a paper and generate its citation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireProject(ctx); err != nil {
				return err
			}
			application.Papers.Fetch(ctx)
			draft.Title = args[0]
			paper, err := application.Papers.Add(ctx, draft)
			if err != nil {
				return err
			}
			fmt.Printf("Added paper %d, generating bibtex...\n", paper.ID)
			application.Papers.WaitBackground()
			for _, p := range application.Papers.Papers() {
				if p.ID == paper.ID && p.Bibtex != "" {
					fmt.Println(p.Bibtex)
				}
			}
			return nil
		},
	}
	addCmd.Flags().StringVar(&draft.Authors, "authors", "", "author list")
	addCmd.Flags().IntVar(&draft.Year, "year", 0, "publication year")
	addCmd.Flags().StringVar(&draft.Venue, "venue", "", "publication venue")
	addCmd.Flags().StringVar(&draft.URL, "url", "", "paper URL")
	addCmd.Flags().StringVar(&draft.Abstract, "abstract", "", "abstract")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a paper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireProject(ctx); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid paper id %q", args[0])
			}
			application.Papers.Fetch(ctx)
			if err := application.Papers.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle whether a paper is part of the chat context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireProject(ctx); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid paper id %q", args[0])
			}
			application.Papers.Fetch(ctx)
			return application.Papers.ToggleContext(ctx, id)
		},
	}

	var targetProject int64
	copyCmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy a paper to another project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireProject(ctx); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid paper id %q", args[0])
			}
			application.Papers.Fetch(ctx)
			paper, err := application.Papers.Copy(ctx, id, targetProject)
			if err != nil {
				return err
			}
			fmt.Printf("Copied as paper %d\n", paper.ID)
			return nil
		},
	}
	copyCmd.Flags().Int64Var(&targetProject, "to", 0, "target project id")
	_ = copyCmd.MarkFlagRequired("to")

	cmd.AddCommand(addCmd, deleteCmd, toggleCmd, copyCmd)
	return cmd
}
