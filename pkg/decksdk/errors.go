package decksdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes carried in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
	ErrorCodeUserNotFound      = "user_not_found"
	ErrorCodePermissionDenied  = "permission_denied"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeValidation        = "validation"
	ErrorCodeInternal          = "internal"
)

// APIError is a failed API call.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches on Code so callers can use errors.Is with the sentinels below.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidRequest    = &APIError{Code: ErrorCodeInvalidRequest}
	ErrInvalidToken      = &APIError{Code: ErrorCodeInvalidToken}
	ErrInsufficientScope = &APIError{Code: ErrorCodeInsufficientScope}
	ErrRateLimited       = &APIError{Code: ErrorCodeRateLimited}
	ErrUserNotFound      = &APIError{Code: ErrorCodeUserNotFound}
	ErrPermissionDenied  = &APIError{Code: ErrorCodePermissionDenied}
	ErrNotFound          = &APIError{Code: ErrorCodeNotFound}
	ErrValidation        = &APIError{Code: ErrorCodeValidation}
	ErrInternal          = &APIError{Code: ErrorCodeInternal}
)

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeInternal,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
