package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/notecards/internal/sharing/service"
	"github.com/aussiebroadwan/notecards/pkg/decksdk"
	"github.com/aussiebroadwan/notecards/pkg/httpx"
)

type CardHandler struct {
	CardService *service.CardService
}

// HandleList godoc
//
//	@Summary	List cards
//	@Tags		Cards
//	@Produce	json
//	@Param		deckID	path		string	true	"Deck ID"
//	@Success	200		{object}	decksdk.CardList
//	@Failure	403		{object}	decksdk.ErrorResponse
//	@Failure	404		{object}	decksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/decks/{deckID}/cards [get].
func (h *CardHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	cards, err := h.CardService.ListCards(r.Context(), principalFrom(r), r.PathValue("deckID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := decksdk.CardList{Cards: make([]decksdk.Card, 0, len(cards))}
	for _, c := range cards {
		out.Cards = append(out.Cards, toCard(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary	Add a card
//	@Tags		Cards
//	@Accept		json
//	@Produce	json
//	@Param		deckID	path		string						true	"Deck ID"
//	@Param		request	body		decksdk.CreateCardRequest	true	"Card"
//	@Success	201		{object}	decksdk.Card
//	@Failure	400		{object}	decksdk.ErrorResponse
//	@Failure	403		{object}	decksdk.ErrorResponse
//	@Failure	404		{object}	decksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/decks/{deckID}/cards [post].
func (h *CardHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req decksdk.CreateCardRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	card, err := h.CardService.CreateCard(r.Context(), principalFrom(r), r.PathValue("deckID"), req.Front, req.Back)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCard(card))
}

// HandleUpdate godoc
//
//	@Summary	Edit a card
//	@Tags		Cards
//	@Accept		json
//	@Produce	json
//	@Param		deckID	path		string						true	"Deck ID"
//	@Param		cardID	path		string						true	"Card ID"
//	@Param		request	body		decksdk.UpdateCardRequest	true	"Fields to change"
//	@Success	200		{object}	decksdk.Card
//	@Failure	400		{object}	decksdk.ErrorResponse
//	@Failure	403		{object}	decksdk.ErrorResponse
//	@Failure	404		{object}	decksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/decks/{deckID}/cards/{cardID} [patch].
func (h *CardHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req decksdk.UpdateCardRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	card, err := h.CardService.UpdateCard(r.Context(), principalFrom(r),
		r.PathValue("deckID"), r.PathValue("cardID"),
		service.CardPatch{Front: req.Front, Back: req.Back})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCard(card))
}

// HandleDelete godoc
//
//	@Summary	Delete a card
//	@Tags		Cards
//	@Param		deckID	path	string	true	"Deck ID"
//	@Param		cardID	path	string	true	"Card ID"
//	@Success	204
//	@Failure	403	{object}	decksdk.ErrorResponse
//	@Failure	404	{object}	decksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/decks/{deckID}/cards/{cardID} [delete].
func (h *CardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.CardService.DeleteCard(r.Context(), principalFrom(r), r.PathValue("deckID"), r.PathValue("cardID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleReorder godoc
//
//	@Summary		Reorder cards
//	@Description	card_ids must list every card of the deck exactly once. The order is also kept as a snapshot.
//	@Tags			Cards
//	@Accept			json
//	@Produce		json
//	@Param			deckID	path		string					true	"Deck ID"
//	@Param			request	body		decksdk.ReorderRequest	true	"New order"
//	@Success		200		{object}	decksdk.OrderSnapshot
//	@Failure		400		{object}	decksdk.ErrorResponse
//	@Failure		403		{object}	decksdk.ErrorResponse
//	@Failure		404		{object}	decksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/decks/{deckID}/cards/order [put].
func (h *CardHandler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	var req decksdk.ReorderRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	snap, err := h.CardService.ReorderCards(r.Context(), principalFrom(r), r.PathValue("deckID"), req.CardIDs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSnapshot(snap))
}

// HandleSnapshots godoc
//
//	@Summary	List order snapshots
//	@Tags		Cards
//	@Produce	json
//	@Param		deckID	path		string	true	"Deck ID"
//	@Param		limit	query		int		false	"Maximum snapshots (1-100)"
//	@Success	200		{object}	decksdk.OrderSnapshotList
//	@Failure	400		{object}	decksdk.ErrorResponse
//	@Failure	403		{object}	decksdk.ErrorResponse
//	@Failure	404		{object}	decksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/decks/{deckID}/order-snapshots [get].
func (h *CardHandler) HandleSnapshots(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}

	snaps, err := h.CardService.ListOrderSnapshots(r.Context(), principalFrom(r), r.PathValue("deckID"), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := decksdk.OrderSnapshotList{Snapshots: make([]decksdk.OrderSnapshot, 0, len(snaps))}
	for _, s := range snaps {
		out.Snapshots = append(out.Snapshots, toSnapshot(s))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
