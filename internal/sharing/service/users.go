package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/policy"
	"github.com/aussiebroadwan/notecards/internal/sharing/store"
	"github.com/aussiebroadwan/notecards/pkg/slogx"
)

// MaxDisplayNameLength bounds User.DisplayName, in characters.
const MaxDisplayNameLength = 100

// UserService keeps the directory of users that decks can be shared with.
type UserService struct {
	Deps
	Invitations *InvitationService
}

func NewUserService(deps Deps, invitations *InvitationService) *UserService {
	return &UserService{Deps: deps, Invitations: invitations}
}

// Register creates or updates the caller's directory entry and claims any
// invites sent to their email, all in one transaction. The email must be the
// one carried on the caller's token; email may be left empty to use it.
func (s *UserService) Register(ctx context.Context, p domain.Principal, email, displayName string) (domain.User, []domain.Member, error) {
	log := slogx.FromContext(ctx)

	// 1. Only the verified token email can be registered
	if p.UserID == "" {
		return domain.User{}, nil, denied("unauthenticated")
	}
	if p.Email == "" {
		return domain.User{}, nil, invalid("token carries no email claim")
	}
	tokenEmail, err := policy.NormalizeEmail(p.Email)
	if err != nil {
		return domain.User{}, nil, fromPolicy(err)
	}
	if strings.TrimSpace(email) != "" {
		requested, err := policy.NormalizeEmail(email)
		if err != nil {
			return domain.User{}, nil, fromPolicy(err)
		}
		if requested != tokenEmail {
			return domain.User{}, nil, denied("email does not match the authenticated user")
		}
	}

	displayName = strings.TrimSpace(displayName)
	if utf8.RuneCountInString(displayName) > MaxDisplayNameLength {
		return domain.User{}, nil, invalid("display name must be at most %d characters", MaxDisplayNameLength)
	}

	now := s.now()
	user := domain.User{
		ID:          p.UserID,
		EmailLower:  tokenEmail,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var claimed []domain.Member
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. Upsert, keeping the original registration time
		existing, err := tx.Users().GetUserByID(ctx, user.ID)
		switch {
		case err == nil:
			user.CreatedAt = existing.CreatedAt
		case !isStoreNotFound(err):
			return err
		}

		if err := tx.Users().UpsertUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return invalid("%s is registered to another user", user.EmailLower)
			}
			return err
		}

		// 3. Pending invites for this email become memberships
		claimed, err = s.Invitations.ClaimInvites(ctx, tx, user)
		return err
	})
	if err != nil {
		logFailure(log, "register user failed", err)
		return domain.User{}, nil, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.Int("claimed_invites", len(claimed)),
	)
	s.Invitations.publishClaims(ctx, claimed)
	return user, claimed, nil
}

// GetMe returns the caller's directory entry.
func (s *UserService) GetMe(ctx context.Context, p domain.Principal) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, p.UserID)
	if err != nil {
		if isStoreNotFound(err) {
			return domain.User{}, notFound("user %s is not registered", p.UserID)
		}
		return domain.User{}, err
	}
	return u, nil
}
