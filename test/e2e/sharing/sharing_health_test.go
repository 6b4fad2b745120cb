package sharing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/notecards/pkg/decksdk"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupSharingContainer(t)
	defer cleanup()

	client := decksdk.NewClient(baseURL, nil)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	health, err = client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Keys)
}

func TestRejectsUnauthenticated(t *testing.T) {
	baseURL, cleanup := setupSharingContainer(t)
	defer cleanup()

	client := decksdk.NewClient(baseURL, decksdk.StaticToken("not-a-jwt"))
	_, err := client.ListDecks(t.Context())
	require.ErrorIs(t, err, decksdk.ErrInvalidToken)

	readOnly := decksdk.NewClient(baseURL, decksdk.StaticToken(mintToken(t, "alice", "alice@example.com", "decks:read")))
	_, err = readOnly.CreateDeck(t.Context(), decksdk.CreateDeckRequest{Title: "Nope"})
	require.ErrorIs(t, err, decksdk.ErrInsufficientScope)
}
