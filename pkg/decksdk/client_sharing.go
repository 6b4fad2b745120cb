package decksdk

import (
	"context"
	"net/http"
	"net/url"
)

func memberPath(deckID, userID string) string {
	return deckPath(deckID) + "/members/" + url.PathEscape(userID)
}

// GetSharing returns a deck's members and pending invites.
func (c *Client) GetSharing(ctx context.Context, deckID string) (*Sharing, error) {
	var out Sharing
	if err := c.call(ctx, http.MethodGet, deckPath(deckID)+"/sharing", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Share grants req.Role to req.Email, or invites the email when it has no
// account. The Outcome of the result tells which happened.
func (c *Client) Share(ctx context.Context, deckID string, req ShareRequest) (*ShareResult, error) {
	var out ShareResult
	if err := c.call(ctx, http.MethodPost, deckPath(deckID)+"/share", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMemberRole(ctx context.Context, deckID, userID, role string) (*ShareResult, error) {
	var out ShareResult
	req := UpdateMemberRequest{Role: role}
	if err := c.call(ctx, http.MethodPatch, memberPath(deckID, userID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveMember(ctx context.Context, deckID, userID string) (*ShareResult, error) {
	var out ShareResult
	if err := c.call(ctx, http.MethodDelete, memberPath(deckID, userID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvites returns the unexpired pending invites on a deck, oldest first.
func (c *Client) ListInvites(ctx context.Context, deckID string) ([]Invite, error) {
	var out InviteList
	if err := c.call(ctx, http.MethodGet, deckPath(deckID)+"/invites", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Invites, nil
}

// RevokeInvite deletes an invite. Only the user who sent it may revoke it.
func (c *Client) RevokeInvite(ctx context.Context, inviteID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/v1/invites/"+url.PathEscape(inviteID), nil, true)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
