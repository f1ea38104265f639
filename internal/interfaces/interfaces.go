package interfaces

import (
	"context"

	"research-agent/client/internal/api"
	"research-agent/client/internal/model"
)

// This file defines the backend contracts the stores depend on. Depending on
// these interfaces, instead of the concrete api.Client, decouples the state
// layer from the transport and lets tests substitute mocks.

// AuthAPI is the session lifecycle surface of the backend.
type AuthAPI interface {
	PrimeCSRF(ctx context.Context) error
	CurrentUser(ctx context.Context) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Logout(ctx context.Context) error
	SaveAPIKey(ctx context.Context, apiKey string) (string, error)
	DeleteAPIKey(ctx context.Context) error
}

// ProjectAPI covers project CRUD.
type ProjectAPI interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	CreateProject(ctx context.Context, name, description string) (*model.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// ConversationAPI covers conversation CRUD and the message exchange.
type ConversationAPI interface {
	ListConversations(ctx context.Context, projectID int64) ([]model.Conversation, error)
	CreateConversation(ctx context.Context, projectID int64, title string) (*model.Conversation, error)
	GetConversation(ctx context.Context, id int64) (*model.FullConversation, error)
	UpdateConversationTitle(ctx context.Context, id int64, title string) error
	DeleteConversation(ctx context.Context, id int64) error
	SendChat(ctx context.Context, conversationID int64, req *api.ChatRequest) (*model.ChatExchange, error)
}

// PaperAPI covers paper CRUD plus citation generation and cross-project copy.
type PaperAPI interface {
	ListPapers(ctx context.Context, projectID int64) ([]model.Paper, error)
	CreatePaper(ctx context.Context, projectID int64, draft *api.PaperDraft) (*model.Paper, error)
	UpdatePaper(ctx context.Context, id int64, updates map[string]any) (*model.Paper, error)
	DeletePaper(ctx context.Context, id int64) error
	GenerateBibtex(ctx context.Context, id int64) (string, error)
	CopyPaper(ctx context.Context, id, targetProjectID int64) (*model.Paper, error)
}

// VerificationAPI requests factual-verification judgements.
type VerificationAPI interface {
	VerifyMessage(ctx context.Context, messageID model.MessageID) (*model.VerificationResult, error)
}
