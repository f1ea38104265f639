package api

import (
	"context"
	"fmt"
	"net/http"

	"research-agent/client/internal/model"
)

type createProjectRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

type projectListResponse struct {
	Projects []model.Project `json:"projects"`
}

func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var resp projectListResponse
	if err := c.do(ctx, http.MethodGet, "/api/projects/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Projects, nil
}

func (c *Client) CreateProject(ctx context.Context, name, description string) (*model.Project, error) {
	payload := createProjectRequest{Name: name, Description: description}
	if err := validateRequest(payload); err != nil {
		return nil, err
	}
	var project model.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects/", payload, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%d/", id), nil, nil)
}
