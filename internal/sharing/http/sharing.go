package http

import (
	"net/http"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/service"
	"github.com/aussiebroadwan/notecards/pkg/decksdk"
	"github.com/aussiebroadwan/notecards/pkg/httpx"
)

type SharingHandler struct {
	SharingService *service.SharingService
}

// HandleShare godoc
//
//	@Summary		Share a deck by email
//	@Description	Grants the role directly when the email belongs to a registered user, otherwise creates
//	@Description	(or refreshes) a pending invite for it. Owner only.
//	@Tags			Sharing
//	@Accept			json
//	@Produce		json
//	@Param			deckID	path		string					true	"Deck ID"
//	@Param			request	body		decksdk.ShareRequest	true	"Email and role"
//	@Success		200		{object}	decksdk.ShareResult		"success, outcome granted|invited, member|invite"
//	@Failure		400		{object}	decksdk.ShareResult		"success=false, error, error_description"
//	@Failure		403		{object}	decksdk.ShareResult		"success=false, error, error_description"
//	@Failure		404		{object}	decksdk.ShareResult		"success=false, error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/decks/{deckID}/share [post].
func (h *SharingHandler) HandleShare(w http.ResponseWriter, r *http.Request) {
	var req decksdk.ShareRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	res := h.SharingService.ShareWithUser(r.Context(), principalFrom(r),
		r.PathValue("deckID"), req.Email, domain.Role(req.Role))
	writeResult(w, r, res)
}

// HandleUpdateRole godoc
//
//	@Summary	Change a collaborator's role
//	@Tags		Sharing
//	@Accept		json
//	@Produce	json
//	@Param		deckID	path		string						true	"Deck ID"
//	@Param		userID	path		string						true	"Collaborator user ID"
//	@Param		request	body		decksdk.UpdateMemberRequest	true	"New role"
//	@Success	200		{object}	decksdk.ShareResult			"success, outcome role_changed, member"
//	@Failure	400		{object}	decksdk.ShareResult
//	@Failure	403		{object}	decksdk.ShareResult
//	@Failure	404		{object}	decksdk.ShareResult
//	@Security	BearerAuth
//	@Router		/v1/decks/{deckID}/members/{userID} [patch].
func (h *SharingHandler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	var req decksdk.UpdateMemberRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	res := h.SharingService.UpdateUserRole(r.Context(), principalFrom(r),
		r.PathValue("deckID"), r.PathValue("userID"), domain.Role(req.Role))
	writeResult(w, r, res)
}

// HandleRemove godoc
//
//	@Summary	Remove a collaborator
//	@Tags		Sharing
//	@Produce	json
//	@Param		deckID	path		string	true	"Deck ID"
//	@Param		userID	path		string	true	"Collaborator user ID"
//	@Success	200		{object}	decksdk.ShareResult	"success, outcome removed"
//	@Failure	400		{object}	decksdk.ShareResult
//	@Failure	403		{object}	decksdk.ShareResult
//	@Failure	404		{object}	decksdk.ShareResult
//	@Security	BearerAuth
//	@Router		/v1/decks/{deckID}/members/{userID} [delete].
func (h *SharingHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	res := h.SharingService.RemoveUserAccess(r.Context(), principalFrom(r),
		r.PathValue("deckID"), r.PathValue("userID"))
	writeResult(w, r, res)
}

type InviteHandler struct {
	InvitationService *service.InvitationService
}

// HandleList godoc
//
//	@Summary	List pending invites
//	@Description	Unexpired invites on the deck, oldest first. Visible to anyone who can read the deck.
//	@Tags		Sharing
//	@Produce	json
//	@Param		deckID	path		string	true	"Deck ID"
//	@Success	200		{object}	decksdk.InviteList
//	@Failure	403		{object}	decksdk.ErrorResponse
//	@Failure	404		{object}	decksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/decks/{deckID}/invites [get].
func (h *InviteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	invites, err := h.InvitationService.ListPendingInvites(r.Context(), principalFrom(r), r.PathValue("deckID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, decksdk.InviteList{Invites: toInvites(invites)})
}

// HandleRevoke godoc
//
//	@Summary	Revoke an invite
//	@Description	Only the user who sent the invite may revoke it.
//	@Tags		Sharing
//	@Param		inviteID	path	string	true	"Invite ID"
//	@Success	204
//	@Failure	403	{object}	decksdk.ErrorResponse
//	@Failure	404	{object}	decksdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/invites/{inviteID} [delete].
func (h *InviteHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	if err := h.InvitationService.RevokeInvite(r.Context(), principalFrom(r), r.PathValue("inviteID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleClaim godoc
//
//	@Summary	Claim pending invites
//	@Description	Converts pending invites for the caller's registered email into memberships.
//	@Description	Registration already does this; the endpoint lets clients force it.
//	@Tags		Sharing
//	@Produce	json
//	@Success	200	{object}	decksdk.ClaimResponse
//	@Failure	404	{object}	decksdk.ErrorResponse	"caller has not registered"
//	@Security	BearerAuth
//	@Router		/v1/invites/claim [post].
func (h *InviteHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	claimed, err := h.InvitationService.ClaimMine(r.Context(), principalFrom(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, decksdk.ClaimResponse{Claimed: toMembers(claimed)})
}
