package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"research-agent/client/internal/api"
	apperrors "research-agent/client/internal/errors"
	"research-agent/client/internal/interfaces"
	"research-agent/client/internal/model"
)

// DefaultConversationTitle is the server-side placeholder for conversations
// created without an explicit title. A conversation still carrying it is
// considered untitled and gets an optimistic title from the first message.
const DefaultConversationTitle = "New Conversation"

const (
	optimisticTitleLimit = 30
	previewLimit         = 50
)

// ConversationStore holds the conversation list for the current project and
// the full transcript of whichever conversation is open. Message sends are
// applied optimistically: the outgoing message appears immediately under a
// temporary id and is replaced, never merged, once the server confirms.
type ConversationStore struct {
	mu            sync.RWMutex
	backend       interfaces.ConversationAPI
	projects      *ProjectStore
	verifications *VerificationStore
	conversations []model.Conversation
	current       *model.FullConversation
	loading       bool

	// sending is a single shared flag for driving a generic UI spinner.
	// It deliberately does not exclude overlapping sends, not even against
	// the same conversation.
	sending bool
}

func NewConversationStore(backend interfaces.ConversationAPI, projects *ProjectStore, verifications *VerificationStore) *ConversationStore {
	return &ConversationStore{
		backend:       backend,
		projects:      projects,
		verifications: verifications,
	}
}

// Fetch replaces the conversation list for the current project. A no-op
// without a selected project; list errors are logged and swallowed, leaving
// the previous list in place.
func (s *ConversationStore) Fetch(ctx context.Context) {
	projectID, ok := s.projects.CurrentID()
	if !ok {
		return
	}

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	list, err := s.backend.ListConversations(ctx, projectID)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		slog.Error("Failed to fetch conversations", "error", err)
		return
	}
	s.conversations = list
	s.mu.Unlock()
}

// Create starts a conversation in the current project, prepends it to the
// list and makes it current. Fails locally, without a network call, when no
// project is selected.
func (s *ConversationStore) Create(ctx context.Context, title string) (*model.Conversation, error) {
	projectID, ok := s.projects.CurrentID()
	if !ok {
		return nil, apperrors.ErrNoProject
	}
	if title == "" {
		title = DefaultConversationTitle
	}

	conversation, err := s.backend.CreateConversation(ctx, projectID, title)
	if err != nil {
		slog.Error("Failed to create conversation", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.conversations = append([]model.Conversation{*conversation}, s.conversations...)
	s.current = &model.FullConversation{
		Conversation: *conversation,
		Messages:     []model.Message{},
	}
	s.mu.Unlock()
	return conversation, nil
}

// Load fetches the full transcript and makes it current. Judgements carried
// by the loaded messages are published into the verification cache so
// previously computed results survive the reload.
func (s *ConversationStore) Load(ctx context.Context, id int64) (*model.FullConversation, error) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	conversation, err := s.backend.GetConversation(ctx, id)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		slog.Error("Failed to load conversation", "conversation_id", id, "error", err)
		return nil, err
	}
	s.current = conversation
	s.mu.Unlock()

	for _, msg := range conversation.Messages {
		if msg.Verification != nil {
			s.verifications.Publish(msg.ID, msg.Verification)
		}
	}
	return conversation, nil
}

// UpdateTitle renames a conversation. The list entry and the current
// conversation (when it is the same one) are updated together so the two
// views never disagree.
func (s *ConversationStore) UpdateTitle(ctx context.Context, id int64, title string) error {
	if err := s.backend.UpdateConversationTitle(ctx, id, title); err != nil {
		slog.Error("Failed to update conversation title", "conversation_id", id, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOfLocked(id); idx != -1 {
		s.conversations[idx].Title = title
	}
	if s.current != nil && s.current.ID == id {
		s.current.Title = title
	}
	return nil
}

// Delete removes a conversation from the server and the list, clearing the
// current reference when it pointed at the deleted one.
func (s *ConversationStore) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteConversation(ctx, id); err != nil {
		slog.Error("Failed to delete conversation", "conversation_id", id, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.conversations[:0]
	for _, c := range s.conversations {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.conversations = kept
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	return nil
}

// SendMessage runs the optimistic exchange sequence: a temporary user
// message appears immediately, the server round-trip happens, and the
// temporary message is then either replaced by the confirmed pair or rolled
// back. The correlation is by the temporary id, so the rollback is precise
// even with several sends in flight.
//
// On failure only the optimistic transcript append is undone; the title and
// preview already written to the list entry are left as-is.
func (s *ConversationStore) SendMessage(ctx context.Context, conversationID int64, message string, settings model.ChatSettings, filters map[string]any) (*model.ChatExchange, error) {
	temp := model.Message{
		ID:      model.MessageID(model.TempIDPrefix + uuid.NewString()),
		Role:    model.RoleUser,
		Content: message,
	}

	s.mu.Lock()
	if s.current != nil && s.current.ID == conversationID {
		s.current.Messages = append(s.current.Messages, temp)
		if s.current.Title == DefaultConversationTitle {
			optimistic := truncateWithEllipsis(message, optimisticTitleLimit)
			s.current.Title = optimistic
			if idx := s.indexOfLocked(conversationID); idx != -1 {
				s.conversations[idx].Title = optimistic
			}
		}
	}
	if idx := s.indexOfLocked(conversationID); idx != -1 {
		s.conversations[idx].Preview = truncateWithEllipsis(message, previewLimit)
	}
	s.sending = true
	s.mu.Unlock()

	exchange, err := s.backend.SendChat(ctx, conversationID, &api.ChatRequest{
		Message:  message,
		Settings: settings,
		Filters:  filters,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sending = false

	if err != nil {
		if s.current != nil && s.current.ID == conversationID {
			s.current.Messages = removeMessage(s.current.Messages, temp.ID)
		}
		return nil, err
	}

	if s.current != nil && s.current.ID == conversationID {
		messages := removeMessage(s.current.Messages, temp.ID)
		messages = append(messages, exchange.UserMessage, exchange.AssistantMessage)
		s.current.Messages = messages
		if exchange.ConversationTitle != "" {
			s.current.Title = exchange.ConversationTitle
		}
	}

	if idx := s.indexOfLocked(conversationID); idx != -1 {
		entry := s.conversations[idx]
		if exchange.ConversationTitle != "" {
			entry.Title = exchange.ConversationTitle
		}
		entry.Preview = truncateWithEllipsis(exchange.AssistantMessage.Content, previewLimit)
		entry.UpdatedAt = time.Now().UTC()
		// Most recent activity first, regardless of prior position.
		s.conversations = append(s.conversations[:idx], s.conversations[idx+1:]...)
		s.conversations = append([]model.Conversation{entry}, s.conversations...)
	}

	return exchange, nil
}

// ClearCurrent drops the open transcript without touching the list.
func (s *ConversationStore) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Clear resets the list and the open transcript. Used on project switch and
// logout; no network calls.
func (s *ConversationStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations = nil
	s.current = nil
}

func (s *ConversationStore) Conversations() []model.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Conversation, len(s.conversations))
	copy(out, s.conversations)
	return out
}

// Current returns a copy of the open conversation with its transcript, or
// nil when none is open.
func (s *ConversationStore) Current() *model.FullConversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	out := model.FullConversation{Conversation: s.current.Conversation}
	out.Messages = make([]model.Message, len(s.current.Messages))
	copy(out.Messages, s.current.Messages)
	return &out
}

func (s *ConversationStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *ConversationStore) IsSending() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sending
}

// indexOfLocked returns the list index for the conversation id, or -1.
// Callers must hold the mutex.
func (s *ConversationStore) indexOfLocked(id int64) int {
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			return i
		}
	}
	return -1
}

func removeMessage(messages []model.Message, id model.MessageID) []model.Message {
	kept := make([]model.Message, 0, len(messages))
	for _, m := range messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	return kept
}

// truncateWithEllipsis shortens a string to at most limit runes, appending
// an ellipsis when something was cut.
func truncateWithEllipsis(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
