package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"research-agent/client/internal/app"
	apperrors "research-agent/client/internal/errors"
)

var application *app.App

var rootCmd = &cobra.Command{
	Use:   "research",
	Short: "Command-line client for the research assistant",
	Long: `research is a command-line client for the research-assistant API.

It manages the login session, projects, conversations, literature references
and answer verification, mirroring the state the web UI exposes. The selected
project is remembered across runs; everything else is fetched fresh.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		application = a
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if application != nil {
			return application.Close()
		}
		return nil
	},
}

// Execute builds the command tree and runs it.
func Execute() error {
	rootCmd.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newAPIKeyCmd(),
		newProjectsCmd(),
		newConversationsCmd(),
		newChatCmd(),
		newPapersCmd(),
		newVerifyCmd(),
		newSettingsCmd(),
	)
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Println("Error:", err)
	}
	return err
}

// requireProject establishes the session and the project selection that
// scoped commands depend on.
func requireProject(ctx context.Context) error {
	application.Session.CheckAuth(ctx)
	if application.Session.User() == nil {
		return fmt.Errorf("%w: log in first", apperrors.ErrUnauthorized)
	}
	application.Projects.Fetch(ctx)
	if err := application.Projects.Err(); err != nil {
		return err
	}
	if _, ok := application.Projects.CurrentID(); !ok {
		return fmt.Errorf("%w: create one with 'research projects create'", apperrors.ErrNoProject)
	}
	return nil
}
