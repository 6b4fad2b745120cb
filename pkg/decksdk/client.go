package decksdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// TokenSource returns the bearer token to send with a request.
type TokenSource func(ctx context.Context) (string, error)

// StaticToken always returns token.
func StaticToken(token string) TokenSource {
	return func(context.Context) (string, error) { return token, nil }
}

// Client talks to the deck-sharing API on behalf of one user.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      TokenSource
}

func NewClient(baseURL string, token TokenSource) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Token: token,
	}
}

// WithToken returns a copy of c that authenticates with token.
func (c *Client) WithToken(token TokenSource) *Client {
	cp := *c
	cp.Token = token
	return &cp
}
