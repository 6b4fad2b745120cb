package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
)

// Outcome names what a successful sharing call did.
type Outcome string

const (
	OutcomeGranted     Outcome = "granted"
	OutcomeInvited     Outcome = "invited"
	OutcomeRemoved     Outcome = "removed"
	OutcomeRoleChanged Outcome = "role_changed"
)

// ErrorKind classifies a failed sharing call.
type ErrorKind string

const (
	KindUserNotFound     ErrorKind = "user_not_found"
	KindPermissionDenied ErrorKind = "permission_denied"
	KindNotFound         ErrorKind = "not_found"
	KindValidation       ErrorKind = "validation"
	KindInternal         ErrorKind = "internal"
)

// internalMessage replaces the text of unexpected errors in a Result.
const internalMessage = "internal error"

// Result is either a success carrying Outcome and its payload, or a failure
// carrying Kind and Error. Kind is empty exactly when the call succeeded.
type Result struct {
	Outcome Outcome
	Member  *domain.Member
	Invite  *domain.Invite

	Kind  ErrorKind
	Error string
}

func (r Result) Success() bool { return r.Kind == "" }

// KindOf classifies err. Errors outside the service kinds are internal.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUserNotFound):
		return KindUserNotFound
	case errors.Is(err, ErrPermissionDenied):
		return KindPermissionDenied
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrValidation):
		return KindValidation
	default:
		return KindInternal
	}
}

func failure(err error) Result {
	kind := KindOf(err)
	msg := err.Error()
	if kind == KindInternal {
		msg = internalMessage
	}
	return Result{Kind: kind, Error: msg}
}

// SharingService is the single entry point clients use to share a deck. It
// prefers a direct grant and falls back to an invite when the email has no
// registered user. No error value crosses it; callers branch on Result.
type SharingService struct {
	Members     *MembershipService
	Invitations *InvitationService
}

func NewSharingService(members *MembershipService, invitations *InvitationService) *SharingService {
	return &SharingService{Members: members, Invitations: invitations}
}

// ShareWithUser grants role on deckID to email, or invites email when no such
// user is registered. Any other membership failure is returned as is.
func (s *SharingService) ShareWithUser(ctx context.Context, p domain.Principal, deckID, email string, role domain.Role) Result {
	member, err := s.Members.AddCollaborator(ctx, p, deckID, email, role)
	if err == nil {
		return Result{Outcome: OutcomeGranted, Member: &member}
	}
	if !errors.Is(err, ErrUserNotFound) {
		return failure(err)
	}

	invite, err := s.Invitations.CreateInvite(ctx, p, deckID, email, role)
	if err != nil {
		return failure(err)
	}
	return Result{Outcome: OutcomeInvited, Invite: &invite}
}

func (s *SharingService) RemoveUserAccess(ctx context.Context, p domain.Principal, deckID, userID string) Result {
	if err := s.Members.RemoveCollaborator(ctx, p, deckID, userID); err != nil {
		return failure(err)
	}
	return Result{Outcome: OutcomeRemoved}
}

func (s *SharingService) UpdateUserRole(ctx context.Context, p domain.Principal, deckID, userID string, role domain.Role) Result {
	member, err := s.Members.ChangeRole(ctx, p, deckID, userID, role)
	if err != nil {
		return failure(err)
	}
	return Result{Outcome: OutcomeRoleChanged, Member: &member}
}
