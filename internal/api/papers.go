package api

import (
	"context"
	"fmt"
	"net/http"

	"research-agent/client/internal/model"
)

// PaperDraft is the user-supplied part of a paper. The server assigns the
// id; bibtex is generated in a separate call.
type PaperDraft struct {
	Title    string `json:"title" validate:"required"`
	Authors  string `json:"authors,omitempty"`
	Year     int    `json:"year,omitempty" validate:"omitempty,gte=0"`
	Venue    string `json:"venue,omitempty"`
	URL      string `json:"url,omitempty" validate:"omitempty,url"`
	Abstract string `json:"abstract,omitempty"`
}

type paperListResponse struct {
	Papers []model.Paper `json:"papers"`
}

type bibtexResponse struct {
	Bibtex string `json:"bibtex"`
}

type copyPaperRequest struct {
	ProjectID int64 `json:"project_id" validate:"required"`
}

func (c *Client) ListPapers(ctx context.Context, projectID int64) ([]model.Paper, error) {
	var resp paperListResponse
	path := fmt.Sprintf("/api/papers/?project_id=%d", projectID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Papers, nil
}

func (c *Client) CreatePaper(ctx context.Context, projectID int64, draft *PaperDraft) (*model.Paper, error) {
	if err := validateRequest(draft); err != nil {
		return nil, err
	}
	var paper model.Paper
	path := fmt.Sprintf("/api/papers/?project_id=%d", projectID)
	if err := c.do(ctx, http.MethodPost, path, draft, &paper); err != nil {
		return nil, err
	}
	return &paper, nil
}

// UpdatePaper patches a subset of fields and returns the updated paper.
func (c *Client) UpdatePaper(ctx context.Context, id int64, updates map[string]any) (*model.Paper, error) {
	var paper model.Paper
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/papers/%d/", id), updates, &paper); err != nil {
		return nil, err
	}
	return &paper, nil
}

func (c *Client) DeletePaper(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/papers/%d/", id), nil, nil)
}

// GenerateBibtex asks the server to produce a citation for the paper.
// Generation runs a model call server-side, so this is the slowest paper
// endpoint by far.
func (c *Client) GenerateBibtex(ctx context.Context, id int64) (string, error) {
	var resp bibtexResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/papers/%d/generate-bibtex/", id), nil, &resp); err != nil {
		return "", err
	}
	return resp.Bibtex, nil
}

// CopyPaper duplicates a paper into another project and returns the copy.
func (c *Client) CopyPaper(ctx context.Context, id, targetProjectID int64) (*model.Paper, error) {
	payload := copyPaperRequest{ProjectID: targetProjectID}
	if err := validateRequest(payload); err != nil {
		return nil, err
	}
	var paper model.Paper
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/papers/%d/copy/", id), payload, &paper); err != nil {
		return nil, err
	}
	return &paper, nil
}
