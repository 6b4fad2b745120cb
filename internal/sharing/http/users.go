package http

import (
	"net/http"

	"github.com/aussiebroadwan/notecards/internal/sharing/service"
	"github.com/aussiebroadwan/notecards/pkg/decksdk"
	"github.com/aussiebroadwan/notecards/pkg/httpx"
)

type UserHandler struct {
	UserService *service.UserService
}

// HandleRegister godoc
//
//	@Summary		Register the caller
//	@Description	Creates or updates the caller's directory entry from the access token's subject and email.
//	@Description	Any pending invites for that email are converted into deck memberships in the same transaction.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		decksdk.RegisterRequest		true	"Registration"
//	@Success		200		{object}	decksdk.RegisterResponse	"user, claimed memberships"
//	@Failure		400		{object}	decksdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	decksdk.ErrorResponse		"email does not match token"
//	@Security		BearerAuth
//	@Router			/v1/users/me [put].
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req decksdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	user, claimed, err := h.UserService.Register(r.Context(), principalFrom(r), req.Email, req.DisplayName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, decksdk.RegisterResponse{
		User:    toUser(user),
		Claimed: toMembers(claimed),
	})
}

// HandleGetMe godoc
//
//	@Summary	Get the caller's directory entry
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	decksdk.User
//	@Failure	404	{object}	decksdk.ErrorResponse	"caller has not registered"
//	@Security	BearerAuth
//	@Router		/v1/users/me [get].
func (h *UserHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetMe(r.Context(), principalFrom(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}
