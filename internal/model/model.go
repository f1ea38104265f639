package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Message roles accepted by the server.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TempIDPrefix marks client-generated message ids. A message carrying such an
// id has not been confirmed by the server and is always replaced, never merged,
// once the server responds.
const TempIDPrefix = "temp-"

// MessageID accepts both server-issued numeric ids and client-synthesized
// temporary string ids. The server serializes database ids as JSON numbers,
// while optimistic messages use "temp-<uuid>" strings, so the type has to
// decode either form.
type MessageID string

func (id *MessageID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = MessageID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = MessageID(n.String())
	return nil
}

// Temporary reports whether the id was generated client-side.
func (id MessageID) Temporary() bool {
	return strings.HasPrefix(string(id), TempIDPrefix)
}

// User is the authenticated account. It is replaced wholesale on
// login, logout and session checks.
type User struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email,omitempty"`
	HasAPIKey     bool   `json:"has_api_key"`
	APIKeyPreview string `json:"api_key_preview,omitempty"`
}

// Project scopes conversations and papers. Exactly one project may be
// current at a time.
type Project struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Conversation is a list entry: metadata only, no transcript.
type Conversation struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Preview   string    `json:"preview,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullConversation includes the conversation metadata and its ordered
// transcript.
type FullConversation struct {
	Conversation
	Messages []Message `json:"messages"`
}

// Message is a single transcript entry. Assistant messages may carry the
// verification judgement computed for them on a previous load.
type Message struct {
	ID           MessageID           `json:"id"`
	Role         string              `json:"role"`
	Content      string              `json:"content"`
	Verification *VerificationResult `json:"verification,omitempty"`
}

// ChatExchange is the server's response to a chat request: the confirmed
// user message, the assistant reply and, for conversations that still had
// the placeholder title, the title the server generated.
type ChatExchange struct {
	UserMessage       Message `json:"user_message"`
	AssistantMessage  Message `json:"assistant_message"`
	ConversationTitle string  `json:"conversation_title,omitempty"`
}

// Paper is a literature reference scoped to a project. Bibtex is populated
// asynchronously after creation; BibtexLoading is client-side state only.
type Paper struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Authors       string `json:"authors,omitempty"`
	Year          int    `json:"year,omitempty"`
	Venue         string `json:"venue,omitempty"`
	URL           string `json:"url,omitempty"`
	Abstract      string `json:"abstract,omitempty"`
	InContext     bool   `json:"inContext"`
	Bibtex        string `json:"bibtex,omitempty"`
	BibtexLoading bool   `json:"-"`
}

// VerificationResult is the factual-accuracy judgement the server computes
// for an assistant message. The nested evaluations are kept opaque; the
// client only caches and displays them.
type VerificationResult struct {
	ID                  int64           `json:"id,omitempty"`
	Status              string          `json:"status,omitempty"`
	ConfidenceScore     float64         `json:"confidence_score,omitempty"`
	TextualVerification json.RawMessage `json:"textual_verification,omitempty"`
	PaperVerifications  json.RawMessage `json:"paper_verifications,omitempty"`
	Summary             string          `json:"summary,omitempty"`
	CreatedAt           string          `json:"created_at,omitempty"`
}

// ChatSettings travels with every chat request. WebSearch is always on.
type ChatSettings struct {
	Model            string `json:"model"`
	Verbosity        string `json:"verbosity"`
	ThinkingLevel    string `json:"thinking_level"`
	RoleProfile      string `json:"role_profile,omitempty"`
	KnowledgeProfile string `json:"knowledge_profile,omitempty"`
	WebSearch        bool   `json:"web_search"`
}
