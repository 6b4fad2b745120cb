package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/notecards/internal/sharing/policy"
	"github.com/aussiebroadwan/notecards/internal/sharing/store"
)

// Error kinds every service operation can fail with. Anything else is an
// internal failure.
var (
	// ErrUserNotFound means an email did not resolve to a registered user.
	// The sharing façade falls back to an invite on this error only.
	ErrUserNotFound = errors.New("user not found")

	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
)

// kindError tags err with a sentinel kind while keeping err's message.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string   { return e.err.Error() }
func (e *kindError) Unwrap() []error { return []error{e.kind, e.err} }

func denied(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrPermissionDenied}, args...)...)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

// fromPolicy maps policy errors onto service kinds.
func fromPolicy(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, policy.ErrDenied):
		return &kindError{kind: ErrPermissionDenied, err: err}
	case errors.Is(err, policy.ErrInvalid):
		return &kindError{kind: ErrValidation, err: err}
	default:
		return err
	}
}

// isKnown reports whether err carries one of the service kinds, i.e. it is
// an expected outcome rather than an internal failure.
func isKnown(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrValidation)
}

func isStoreNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
