package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/service"
	"github.com/aussiebroadwan/notecards/pkg/decksdk"
	"github.com/aussiebroadwan/notecards/pkg/httpx"
	"github.com/aussiebroadwan/notecards/pkg/slogx"
)

// statusFor maps a service error kind onto an HTTP status.
func statusFor(kind service.ErrorKind) int {
	switch kind {
	case "":
		return http.StatusOK
	case service.KindUserNotFound, service.KindNotFound:
		return http.StatusNotFound
	case service.KindPermissionDenied:
		return http.StatusForbidden
	case service.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError writes err as an ErrorResponse. Internal errors are
// logged and reported without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := service.KindOf(err)
	if kind == service.KindInternal {
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, decksdk.ErrorCodeInternal, "internal error")
		return
	}
	httpx.WriteError(w, statusFor(kind), string(kind), err.Error())
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteError(w, http.StatusBadRequest, decksdk.ErrorCodeInvalidRequest, desc)
}

// writeResult writes a façade result: 200 on success, otherwise the status
// for its kind with success=false.
func writeResult(w http.ResponseWriter, r *http.Request, res service.Result) {
	if res.Kind == service.KindInternal {
		slogx.FromContext(r.Context()).Error("sharing request failed", "error", res.Error)
	}
	httpx.WriteJSON(w, statusFor(res.Kind), toShareResult(res))
}

// principalFrom builds the acting principal from the verified token.
func principalFrom(r *http.Request) domain.Principal {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		return domain.Principal{}
	}
	return domain.Principal{
		UserID: claims.Subject,
		Email:  strings.TrimSpace(claims.Email),
		Scopes: claims.Scopes,
	}
}
