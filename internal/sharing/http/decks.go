package http

import (
	"net/http"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/policy"
	"github.com/aussiebroadwan/notecards/internal/sharing/service"
	"github.com/aussiebroadwan/notecards/pkg/decksdk"
	"github.com/aussiebroadwan/notecards/pkg/httpx"
)

type DeckHandler struct {
	DeckService *service.DeckService
}

// HandleCreate godoc
//
//	@Summary	Create a deck
//	@Tags		Decks
//	@Accept		json
//	@Produce	json
//	@Param		request	body		decksdk.CreateDeckRequest	true	"Deck"
//	@Success	201		{object}	decksdk.Deck
//	@Failure	400		{object}	decksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/decks [post].
func (h *DeckHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req decksdk.CreateDeckRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	deck, err := h.DeckService.CreateDeck(r.Context(), principalFrom(r), req.Title)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toDeck(deck, domain.RoleOwner))
}

// HandleList godoc
//
//	@Summary	List visible decks
//	@Description	Decks the caller owns or collaborates on, most recently updated first.
//	@Tags		Decks
//	@Produce	json
//	@Success	200	{object}	decksdk.DeckList
//	@Security	BearerAuth
//	@Router		/v1/decks [get].
func (h *DeckHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r)
	decks, err := h.DeckService.ListVisibleDecks(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := decksdk.DeckList{Decks: make([]decksdk.Deck, 0, len(decks))}
	for _, d := range decks {
		out.Decks = append(out.Decks, toDeck(d, policy.EffectiveRole(d, p.UserID)))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get a deck
//	@Tags		Decks
//	@Produce	json
//	@Param		deckID	path		string	true	"Deck ID"
//	@Success	200		{object}	decksdk.Deck
//	@Failure	403		{object}	decksdk.ErrorResponse
//	@Failure	404		{object}	decksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/decks/{deckID} [get].
func (h *DeckHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	deck, role, err := h.DeckService.GetDeck(r.Context(), principalFrom(r), r.PathValue("deckID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDeck(deck, role))
}

// HandleRename godoc
//
//	@Summary	Rename a deck
//	@Description	Owners and editors may change the title. Nothing else on a deck is writable here.
//	@Tags		Decks
//	@Accept		json
//	@Produce	json
//	@Param		deckID	path		string						true	"Deck ID"
//	@Param		request	body		decksdk.UpdateDeckRequest	true	"New title"
//	@Success	200		{object}	decksdk.Deck
//	@Failure	400		{object}	decksdk.ErrorResponse
//	@Failure	403		{object}	decksdk.ErrorResponse
//	@Failure	404		{object}	decksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/decks/{deckID} [patch].
func (h *DeckHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	var req decksdk.UpdateDeckRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	p := principalFrom(r)
	deck, err := h.DeckService.RenameDeck(r.Context(), p, r.PathValue("deckID"), req.Title)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDeck(deck, policy.EffectiveRole(deck, p.UserID)))
}

// HandleDelete godoc
//
//	@Summary	Delete a deck
//	@Description	Owner only. Removes members, invites, cards and order snapshots with it.
//	@Tags		Decks
//	@Param		deckID	path	string	true	"Deck ID"
//	@Success	204
//	@Failure	403	{object}	decksdk.ErrorResponse
//	@Failure	404	{object}	decksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/decks/{deckID} [delete].
func (h *DeckHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.DeckService.DeleteDeck(r.Context(), principalFrom(r), r.PathValue("deckID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSharing godoc
//
//	@Summary	Get members and pending invites
//	@Tags		Sharing
//	@Produce	json
//	@Param		deckID	path		string	true	"Deck ID"
//	@Success	200		{object}	decksdk.Sharing
//	@Failure	403		{object}	decksdk.ErrorResponse
//	@Failure	404		{object}	decksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/decks/{deckID}/sharing [get].
func (h *DeckHandler) HandleSharing(w http.ResponseWriter, r *http.Request) {
	sh, err := h.DeckService.GetSharing(r.Context(), principalFrom(r), r.PathValue("deckID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, decksdk.Sharing{
		DeckID:  sh.Deck.ID,
		OwnerID: sh.Deck.OwnerID,
		Members: toMembers(sh.Members),
		Invites: toInvites(sh.Invites),
	})
}
