package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/notecards/internal/sharing/service"
	"github.com/aussiebroadwan/notecards/internal/sharing/store"
	"github.com/aussiebroadwan/notecards/pkg/httpx"
	"github.com/aussiebroadwan/notecards/pkg/jwtx"
	"github.com/aussiebroadwan/notecards/pkg/slogx"

	_ "github.com/aussiebroadwan/notecards/api/sharing" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Scopes an access token needs for the /v1 API.
const (
	ScopeRead  = "decks:read"
	ScopeWrite = "decks:write"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// One limiter per profile so every route of a kind shares a user's budget.
	readLimit   httpx.Middleware
	writeLimit  httpx.Middleware
	publicLimit httpx.Middleware

	DeckService       *service.DeckService
	CardService       *service.CardService
	UserService       *service.UserService
	InvitationService *service.InvitationService
	SharingService    *service.SharingService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		readLimit:    httpx.RateLimitByUser(httpx.ReadLimit),
		writeLimit:   httpx.RateLimitByUser(httpx.WriteLimit),
		publicLimit:  httpx.RateLimitByIP(httpx.PublicLimit),
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerDecks()
	r.registerSharing()
	r.registerCards()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Notecards Deck Sharing API
//	@version		0.1.0
//	@description	Share flashcard decks with other users by email. Registered users are granted a role
//	@description	directly; anyone else receives an invite that turns into a role when they register.
//	@description
//	@description				Access tokens are issued by the auth service and verified against its JWKS.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/notecards
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// read wraps h for an authenticated GET.
func (r *Router) read(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(ScopeRead, ScopeWrite),
		r.readLimit,
	)
}

// write wraps h for an authenticated mutation.
func (r *Router) write(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(ScopeWrite),
		r.writeLimit,
	)
}

func (r *Router) registerUsers() {
	h := &UserHandler{UserService: r.UserService}

	r.Mux.Handle("PUT /v1/users/me", r.write(h.HandleRegister))
	r.Mux.Handle("GET /v1/users/me", r.read(h.HandleGetMe))
}

func (r *Router) registerDecks() {
	h := &DeckHandler{DeckService: r.DeckService}

	r.Mux.Handle("POST /v1/decks", r.write(h.HandleCreate))
	r.Mux.Handle("GET /v1/decks", r.read(h.HandleList))
	r.Mux.Handle("GET /v1/decks/{deckID}", r.read(h.HandleGet))
	r.Mux.Handle("PATCH /v1/decks/{deckID}", r.write(h.HandleRename))
	r.Mux.Handle("DELETE /v1/decks/{deckID}", r.write(h.HandleDelete))
	r.Mux.Handle("GET /v1/decks/{deckID}/sharing", r.read(h.HandleSharing))
}

func (r *Router) registerSharing() {
	sh := &SharingHandler{SharingService: r.SharingService}
	ih := &InviteHandler{InvitationService: r.InvitationService}

	r.Mux.Handle("POST /v1/decks/{deckID}/share", r.write(sh.HandleShare))
	r.Mux.Handle("PATCH /v1/decks/{deckID}/members/{userID}", r.write(sh.HandleUpdateRole))
	r.Mux.Handle("DELETE /v1/decks/{deckID}/members/{userID}", r.write(sh.HandleRemove))

	r.Mux.Handle("GET /v1/decks/{deckID}/invites", r.read(ih.HandleList))
	r.Mux.Handle("DELETE /v1/invites/{inviteID}", r.write(ih.HandleRevoke))
	r.Mux.Handle("POST /v1/invites/claim", r.write(ih.HandleClaim))
}

func (r *Router) registerCards() {
	h := &CardHandler{CardService: r.CardService}

	r.Mux.Handle("GET /v1/decks/{deckID}/cards", r.read(h.HandleList))
	r.Mux.Handle("POST /v1/decks/{deckID}/cards", r.write(h.HandleCreate))
	r.Mux.Handle("PUT /v1/decks/{deckID}/cards/order", r.write(h.HandleReorder))
	r.Mux.Handle("PATCH /v1/decks/{deckID}/cards/{cardID}", r.write(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/decks/{deckID}/cards/{cardID}", r.write(h.HandleDelete))
	r.Mux.Handle("GET /v1/decks/{deckID}/order-snapshots", r.read(h.HandleSnapshots))
}

func (r *Router) registerSystem() {
	// Health checks are unauthenticated; monitoring may poll them often.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion), r.publicLimit),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys), r.publicLimit),
	)
}
