package decksdk

import (
	"context"
	"net/http"
)

// Register creates or updates the caller's directory entry. Pending invites
// for the caller's email are claimed as part of the same call.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.call(ctx, http.MethodPut, "/v1/users/me", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if err := c.call(ctx, http.MethodGet, "/v1/users/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClaimInvites converts any pending invites for the caller's registered
// email into memberships.
func (c *Client) ClaimInvites(ctx context.Context) ([]Member, error) {
	var out ClaimResponse
	if err := c.call(ctx, http.MethodPost, "/v1/invites/claim", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Claimed, nil
}
