package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newConversationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conversations",
		Aliases: []string{"convos"},
		Short:   "Manage conversations in the current project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireProject(ctx); err != nil {
				return err
			}
			application.Conversations.Fetch(ctx)
			for _, c := range application.Conversations.Conversations() {
				fmt.Printf("%d\t%s\t%s\t%s\n", c.ID, c.UpdatedAt.Format("2006-01-02 15:04"), c.Title, c.Preview)
			}
			return nil
		},
	}

	openCmd := &cobra.Command{
		Use:   "open <id>",
		Short: "Print a conversation transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireProject(ctx); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid conversation id %q", args[0])
			}
			conversation, err := application.Conversations.Load(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("# %s\n\n", conversation.Title)
			for _, m := range conversation.Messages {
				fmt.Printf("[%s] %s\n", m.Role, m.Content)
				if v := application.Verifications.Get(m.ID); v != nil {
					fmt.Printf("  verified: %s (confidence %.2f)\n", v.Status, v.ConfidenceScore)
				}
			}
			return nil
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <id> <title>",
		Short: "Rename a conversation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireProject(ctx); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid conversation id %q", args[0])
			}
			application.Conversations.Fetch(ctx)
			if err := application.Conversations.UpdateTitle(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Println("Renamed")
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireProject(ctx); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid conversation id %q", args[0])
			}
			application.Conversations.Fetch(ctx)
			if err := application.Conversations.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	}

	cmd.AddCommand(openCmd, renameCmd, deleteCmd)
	return cmd
}

func newChatCmd() *cobra.Command {
	var conversationID int64
	var filters []string
	var modelName, verbosity, thinking, roleProfile, knowledgeProfile string
	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Send a message and print the assistant's reply",
		Long: `Send a message to a conversation in the current project.

Without --conversation a new conversation is started. The current settings
(model, verbosity, thinking level, profiles) travel with the request.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := applySettings(modelName, verbosity, thinking, roleProfile, knowledgeProfile); err != nil {
				return err
			}
			if err := requireProject(ctx); err != nil {
				return err
			}
			application.Conversations.Fetch(ctx)

			if conversationID == 0 {
				conversation, err := application.Conversations.Create(ctx, "")
				if err != nil {
					return err
				}
				conversationID = conversation.ID
			} else if _, err := application.Conversations.Load(ctx, conversationID); err != nil {
				return err
			}

			exchange, err := application.SendMessage(ctx, conversationID, args[0], parseFilters(filters))
			if err != nil {
				return err
			}
			fmt.Println(exchange.AssistantMessage.Content)
			fmt.Printf("\n(conversation %d, message %s)\n", conversationID, exchange.AssistantMessage.ID)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&conversationID, "conversation", "c", 0, "conversation id (new conversation when omitted)")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "retrieval filter as key=value, repeatable")
	cmd.Flags().StringVar(&modelName, "model", "", "model to use")
	cmd.Flags().StringVar(&verbosity, "verbosity", "", "answer verbosity")
	cmd.Flags().StringVar(&thinking, "thinking", "", "thinking level")
	cmd.Flags().StringVar(&roleProfile, "role-profile", "", "who the assistant should act as")
	cmd.Flags().StringVar(&knowledgeProfile, "knowledge-profile", "", "your prior knowledge of the topic")
	return cmd
}

func applySettings(modelName, verbosity, thinking, roleProfile, knowledgeProfile string) error {
	if modelName != "" {
		if err := application.Settings.SetModel(modelName); err != nil {
			return err
		}
	}
	if verbosity != "" {
		if err := application.Settings.SetVerbosity(verbosity); err != nil {
			return err
		}
	}
	if thinking != "" {
		if err := application.Settings.SetThinkingLevel(thinking); err != nil {
			return err
		}
	}
	if roleProfile != "" {
		application.Settings.SetRoleProfile(roleProfile)
	}
	if knowledgeProfile != "" {
		application.Settings.SetKnowledgeProfile(knowledgeProfile)
	}
	return nil
}

func parseFilters(pairs []string) map[string]any {
	if len(pairs) == 0 {
		return nil
	}
	filters := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			filters[pair] = true
			continue
		}
		filters[key] = value
	}
	return filters
}
