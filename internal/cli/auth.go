package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Start an authenticated session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if password == "" {
				var err error
				password, err = promptSecret("Password: ")
				if err != nil {
					return err
				}
			}
			application.Session.CheckAuth(ctx)
			if err := application.Session.Login(ctx, args[0], password); err != nil {
				return err
			}
			user := application.Session.User()
			fmt.Printf("Logged in as %s\n", user.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if password == "" {
				var err error
				password, err = promptSecret("Password: ")
				if err != nil {
					return err
				}
			}
			application.Session.CheckAuth(ctx)
			if err := application.Session.Register(ctx, args[0], email, password); err != nil {
				return err
			}
			fmt.Printf("Registered and logged in as %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			application.Session.CheckAuth(ctx)
			if err := application.Session.Logout(ctx); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the session user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application.Session.CheckAuth(cmd.Context())
			user := application.Session.User()
			if user == nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s", user.Username)
			if user.Email != "" {
				fmt.Printf(" <%s>", user.Email)
			}
			if user.HasAPIKey {
				fmt.Printf(" (API key %s)", user.APIKeyPreview)
			}
			fmt.Println()
			return nil
		},
	}
}

func newAPIKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage the stored model-provider API key",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <key>",
			Short: "Store an API key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				application.Session.CheckAuth(ctx)
				if err := application.Session.SaveAPIKey(ctx, args[0]); err != nil {
					return err
				}
				fmt.Println("API key saved")
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete",
			Short: "Delete the stored API key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				application.Session.CheckAuth(ctx)
				if err := application.Session.DeleteAPIKey(ctx); err != nil {
					return err
				}
				fmt.Println("API key deleted")
				return nil
			},
		},
	)
	return cmd
}

func promptSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("could not read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
