package api

import (
	"context"
	"fmt"
	"net/http"

	"research-agent/client/internal/model"
)

// VerifyMessage requests a factual-verification judgement for an assistant
// message. The server reuses a stored judgement when one already exists, so
// repeated calls for the same message are cheap.
func (c *Client) VerifyMessage(ctx context.Context, messageID model.MessageID) (*model.VerificationResult, error) {
	var result model.VerificationResult
	path := fmt.Sprintf("/api/messages/%s/verify/", messageID)
	if err := c.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
