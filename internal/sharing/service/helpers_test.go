package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/events"
	"github.com/aussiebroadwan/notecards/internal/sharing/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Publish(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) Close() error { return nil }

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

// harness wires every service over one in-memory store and a movable clock.
type harness struct {
	store  *sqlite.Store
	events *recorder
	now    time.Time

	members     *MembershipService
	invitations *InvitationService
	sharing     *SharingService
	decks       *DeckService
	cards       *CardService
	users       *UserService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.MemoryDSN)
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	h := &harness{
		store:  st,
		events: &recorder{},
		now:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	deps := Deps{Store: st, Events: h.events, Now: func() time.Time { return h.now }}

	h.members = NewMembershipService(deps)
	h.invitations = NewInvitationService(deps, 7*24*time.Hour)
	h.sharing = NewSharingService(h.members, h.invitations)
	h.decks = NewDeckService(deps)
	h.cards = NewCardService(deps)
	h.users = NewUserService(deps, h.invitations)
	return h
}

func (h *harness) advance(d time.Duration) { h.now = h.now.Add(d) }

func principal(id, email string) domain.Principal {
	return domain.Principal{UserID: id, Email: email, Scopes: []string{"decks:read", "decks:write"}}
}

func (h *harness) register(t *testing.T, id, email string) domain.Principal {
	t.Helper()
	p := principal(id, email)
	_, _, err := h.users.Register(context.Background(), p, "", id)
	require.NoError(t, err)
	return p
}

func (h *harness) deck(t *testing.T, owner domain.Principal) domain.Deck {
	t.Helper()
	d, err := h.decks.CreateDeck(context.Background(), owner, "Spanish verbs")
	require.NoError(t, err)
	return d
}

func (h *harness) roles(t *testing.T, deckID string) map[string]domain.Role {
	t.Helper()
	d, err := h.store.Decks().GetDeck(context.Background(), deckID)
	require.NoError(t, err)
	return d.Roles
}

func testEd25519Key(t *testing.T) ed25519.PrivateKey {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return priv
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
