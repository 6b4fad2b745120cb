package decksdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func cardPath(deckID, cardID string) string {
	return deckPath(deckID) + "/cards/" + url.PathEscape(cardID)
}

func (c *Client) ListCards(ctx context.Context, deckID string) ([]Card, error) {
	var out CardList
	if err := c.call(ctx, http.MethodGet, deckPath(deckID)+"/cards", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Cards, nil
}

func (c *Client) CreateCard(ctx context.Context, deckID string, req CreateCardRequest) (*Card, error) {
	var out Card
	if err := c.call(ctx, http.MethodPost, deckPath(deckID)+"/cards", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCard(ctx context.Context, deckID, cardID string, req UpdateCardRequest) (*Card, error) {
	var out Card
	if err := c.call(ctx, http.MethodPatch, cardPath(deckID, cardID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCard(ctx context.Context, deckID, cardID string) error {
	resp, err := c.do(ctx, http.MethodDelete, cardPath(deckID, cardID), nil, true)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ReorderCards sets the deck's card order. cardIDs must list every card once.
func (c *Client) ReorderCards(ctx context.Context, deckID string, cardIDs []string) (*OrderSnapshot, error) {
	var out OrderSnapshot
	req := ReorderRequest{CardIDs: cardIDs}
	if err := c.call(ctx, http.MethodPut, deckPath(deckID)+"/cards/order", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrderSnapshots returns recent orderings, newest first. A non-positive
// limit uses the server default.
func (c *Client) ListOrderSnapshots(ctx context.Context, deckID string, limit int) ([]OrderSnapshot, error) {
	path := deckPath(deckID) + "/order-snapshots"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var out OrderSnapshotList
	if err := c.call(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Snapshots, nil
}
