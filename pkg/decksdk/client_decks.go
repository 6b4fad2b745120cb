package decksdk

import (
	"context"
	"net/http"
	"net/url"
)

func deckPath(deckID string) string {
	return "/v1/decks/" + url.PathEscape(deckID)
}

func (c *Client) CreateDeck(ctx context.Context, req CreateDeckRequest) (*Deck, error) {
	var out Deck
	if err := c.call(ctx, http.MethodPost, "/v1/decks", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDecks returns decks the caller owns or collaborates on, most recently
// updated first.
func (c *Client) ListDecks(ctx context.Context) ([]Deck, error) {
	var out DeckList
	if err := c.call(ctx, http.MethodGet, "/v1/decks", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Decks, nil
}

func (c *Client) GetDeck(ctx context.Context, deckID string) (*Deck, error) {
	var out Deck
	if err := c.call(ctx, http.MethodGet, deckPath(deckID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RenameDeck(ctx context.Context, deckID, title string) (*Deck, error) {
	var out Deck
	req := UpdateDeckRequest{Title: title}
	if err := c.call(ctx, http.MethodPatch, deckPath(deckID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDeck(ctx context.Context, deckID string) error {
	resp, err := c.do(ctx, http.MethodDelete, deckPath(deckID), nil, true)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
