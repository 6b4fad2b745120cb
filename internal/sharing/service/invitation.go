package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/events"
	"github.com/aussiebroadwan/notecards/internal/sharing/policy"
	"github.com/aussiebroadwan/notecards/internal/sharing/store"
	"github.com/aussiebroadwan/notecards/pkg/idx"
	"github.com/aussiebroadwan/notecards/pkg/slogx"
)

// InvitationService manages pending shares for emails that have no
// registered user yet.
type InvitationService struct {
	Deps

	// TTL is how long a new or refreshed invite stays claimable. Zero means
	// invites never expire.
	TTL time.Duration
}

func NewInvitationService(deps Deps, ttl time.Duration) *InvitationService {
	return &InvitationService{Deps: deps, TTL: ttl}
}

// CreateInvite records a pending share of deckID with email. Calling it again
// for the same deck and email refreshes the role and expiry of the existing
// invite instead of creating a second one.
func (s *InvitationService) CreateInvite(ctx context.Context, p domain.Principal, deckID, email string, role domain.Role) (domain.Invite, error) {
	log := slogx.FromContext(ctx).With(slog.String("deck_id", deckID))

	// 1. Validate input
	emailLower, err := policy.NormalizeEmail(email)
	if err != nil {
		return domain.Invite{}, fromPolicy(err)
	}
	if err := policy.ValidateRole(role); err != nil {
		return domain.Invite{}, fromPolicy(err)
	}

	now := s.now()
	var invite domain.Invite

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. Only the owner may invite
		deck, callerRole, err := loadDeck(ctx, tx.Decks(), deckID, p.UserID)
		if err != nil {
			return err
		}
		if !policy.CanManageSharing(callerRole) {
			return denied("only the owner can invite collaborators")
		}

		// 3. Registered users are shared with directly, not invited
		if isCallerEmail(p, emailLower) {
			return invalid("the owner cannot be invited to their own deck")
		}
		_, err = tx.Users().GetUserByEmail(ctx, emailLower)
		switch {
		case err == nil:
			return invalid("%s is already registered; add them as a collaborator", emailLower)
		case !isStoreNotFound(err):
			return err
		}

		// 4. Upsert on (deck, email)
		invite = domain.Invite{
			ID:              idx.NewAt(now).String(),
			DeckID:          deck.ID,
			InvitedByUserID: p.UserID,
			EmailLower:      emailLower,
			RoleRequested:   role,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if s.TTL > 0 {
			exp := now.Add(s.TTL)
			invite.ExpiresAt = &exp
		}

		invite, err = tx.Invites().UpsertInvite(ctx, invite)
		return err
	})
	if err != nil {
		logFailure(log, "create invite failed", err)
		return domain.Invite{}, err
	}

	log.Info("invite created",
		slog.String("invite_id", invite.ID),
		slog.String("role", string(invite.RoleRequested)),
	)
	s.publish(ctx, events.Event{
		Type:     events.InviteCreated,
		DeckID:   invite.DeckID,
		ActorID:  p.UserID,
		Email:    invite.EmailLower,
		Role:     string(invite.RoleRequested),
		InviteID: invite.ID,
	})
	return invite, nil
}

// ListPendingInvites returns the unexpired invites on deckID, oldest first.
// Anyone who can read the deck can see them.
func (s *InvitationService) ListPendingInvites(ctx context.Context, p domain.Principal, deckID string) ([]domain.Invite, error) {
	_, role, err := loadDeck(ctx, s.Store.Decks(), deckID, p.UserID)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadDeck(role) {
		return nil, denied("no access to deck %s", deckID)
	}
	return s.Store.Invites().ListPendingInvites(ctx, deckID, s.now())
}

// RevokeInvite deletes an invite. Only whoever created it may revoke it.
func (s *InvitationService) RevokeInvite(ctx context.Context, p domain.Principal, inviteID string) error {
	log := slogx.FromContext(ctx).With(slog.String("invite_id", inviteID))

	if inviteID == "" {
		return invalid("invite id is required")
	}

	var invite domain.Invite
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		invite, err = tx.Invites().GetInvite(ctx, inviteID)
		if err != nil {
			if isStoreNotFound(err) {
				return notFound("invite %s", inviteID)
			}
			return err
		}
		if invite.InvitedByUserID != p.UserID {
			return denied("only the inviter can revoke an invite")
		}
		return tx.Invites().DeleteInvite(ctx, inviteID)
	})
	if err != nil {
		logFailure(log, "revoke invite failed", err)
		return err
	}

	log.Info("invite revoked", slog.String("deck_id", invite.DeckID))
	s.publish(ctx, events.Event{
		Type:     events.InviteRevoked,
		DeckID:   invite.DeckID,
		ActorID:  p.UserID,
		Email:    invite.EmailLower,
		InviteID: invite.ID,
	})
	return nil
}

// ClaimInvites turns every pending invite for user's email into a member row
// and deletes the invite, inside tx. Invites on decks the user owns are
// dropped. Where the user already holds a role, that role is kept.
func (s *InvitationService) ClaimInvites(ctx context.Context, tx store.Tx, user domain.User) ([]domain.Member, error) {
	if user.EmailLower == "" {
		return nil, nil
	}

	now := s.now()
	invites, err := tx.Invites().ListPendingInvitesByEmail(ctx, user.EmailLower, now)
	if err != nil {
		return nil, err
	}

	var claimed []domain.Member
	for _, inv := range invites {
		deck, err := tx.Decks().GetDeck(ctx, inv.DeckID)
		if err != nil {
			if isStoreNotFound(err) {
				continue
			}
			return nil, err
		}

		if deck.OwnerID != user.ID {
			if _, held := deck.Roles[user.ID]; !held {
				m := domain.Member{
					DeckID:    deck.ID,
					UserID:    user.ID,
					Role:      inv.RoleRequested,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := tx.Members().UpsertMember(ctx, m); err != nil {
					return nil, mapMemberWrite(err)
				}
				if err := tx.Decks().TouchDeck(ctx, deck.ID, now); err != nil {
					return nil, err
				}
				claimed = append(claimed, m)
			}
		}

		if err := tx.Invites().DeleteInvite(ctx, inv.ID); err != nil {
			return nil, err
		}
	}
	return claimed, nil
}

// ClaimMine re-runs the claim for the caller's registered email.
func (s *InvitationService) ClaimMine(ctx context.Context, p domain.Principal) ([]domain.Member, error) {
	log := slogx.FromContext(ctx)

	var claimed []domain.Member
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, p.UserID)
		if err != nil {
			if isStoreNotFound(err) {
				return ErrUserNotFound
			}
			return err
		}
		claimed, err = s.ClaimInvites(ctx, tx, user)
		return err
	})
	if err != nil {
		logFailure(log, "claim invites failed", err)
		return nil, err
	}

	s.publishClaims(ctx, claimed)
	return claimed, nil
}

func (s *InvitationService) publishClaims(ctx context.Context, claimed []domain.Member) {
	for _, m := range claimed {
		slogx.FromContext(ctx).Info("invite claimed",
			slog.String("deck_id", m.DeckID),
			slog.String("user_id", m.UserID),
			slog.String("role", string(m.Role)),
		)
		s.publish(ctx, events.Event{
			Type:    events.InviteClaimed,
			DeckID:  m.DeckID,
			ActorID: m.UserID,
			UserID:  m.UserID,
			Role:    string(m.Role),
		})
	}
}
