package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"research-agent/client/internal/model"
	"research-agent/client/internal/store"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change chat settings for this invocation",
		Long: `Show or change chat settings.

Settings are process-wide and not persisted: a new invocation starts from the
defaults. They mainly matter for the 'chat' command, which sends the current
snapshot with every message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := application.Settings.Snapshot()
			fmt.Printf("model:          %s  (options: %s)\n", s.Model, strings.Join(store.ModelOptions, ", "))
			fmt.Printf("verbosity:      %s  (options: %s)\n", s.Verbosity, strings.Join(store.VerbosityOptions, ", "))
			fmt.Printf("thinking level: %s  (options: %s)\n", s.ThinkingLevel, strings.Join(store.ThinkingLevelOptions, ", "))
			fmt.Printf("web search:     always on\n")
			return nil
		},
	}
	return cmd
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <message-id>",
		Short: "Request a factual-verification judgement for an assistant message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			application.Session.CheckAuth(ctx)
			result, err := application.Verifications.Verify(ctx, model.MessageID(args[0]))
			if err != nil {
				return err
			}
			fmt.Printf("status: %s\nconfidence: %.2f\n", result.Status, result.ConfidenceScore)
			if result.Summary != "" {
				fmt.Println(result.Summary)
			}
			return nil
		},
	}
}
