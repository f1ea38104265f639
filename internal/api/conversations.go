package api

import (
	"context"
	"fmt"
	"net/http"

	"research-agent/client/internal/model"
)

type createConversationRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type updateTitleRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
}

type conversationListResponse struct {
	Conversations []model.Conversation `json:"conversations"`
}

// ChatRequest is the payload for the message exchange endpoint. Filters are
// forwarded opaquely; the server decides what to do with them.
type ChatRequest struct {
	Message  string             `json:"message" validate:"required"`
	Settings model.ChatSettings `json:"settings"`
	Filters  map[string]any     `json:"filters,omitempty"`
}

func (c *Client) ListConversations(ctx context.Context, projectID int64) ([]model.Conversation, error) {
	var resp conversationListResponse
	path := fmt.Sprintf("/api/conversations/?project_id=%d", projectID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Conversations, nil
}

func (c *Client) CreateConversation(ctx context.Context, projectID int64, title string) (*model.Conversation, error) {
	payload := createConversationRequest{Title: title}
	if err := validateRequest(payload); err != nil {
		return nil, err
	}
	var conversation model.Conversation
	path := fmt.Sprintf("/api/conversations/?project_id=%d", projectID)
	if err := c.do(ctx, http.MethodPost, path, payload, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (c *Client) GetConversation(ctx context.Context, id int64) (*model.FullConversation, error) {
	var conversation model.FullConversation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/conversations/%d/", id), nil, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (c *Client) UpdateConversationTitle(ctx context.Context, id int64, title string) error {
	payload := updateTitleRequest{Title: title}
	if err := validateRequest(payload); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/conversations/%d/", id), payload, nil)
}

func (c *Client) DeleteConversation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/conversations/%d/", id), nil, nil)
}

// SendChat posts a message and returns the confirmed exchange. The call
// blocks until the assistant reply is complete; there is no streaming on
// this endpoint.
func (c *Client) SendChat(ctx context.Context, conversationID int64, req *ChatRequest) (*model.ChatExchange, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var exchange model.ChatExchange
	path := fmt.Sprintf("/api/conversations/%d/chat/", conversationID)
	if err := c.do(ctx, http.MethodPost, path, req, &exchange); err != nil {
		return nil, err
	}
	return &exchange, nil
}
