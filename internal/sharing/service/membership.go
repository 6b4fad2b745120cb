package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/events"
	"github.com/aussiebroadwan/notecards/internal/sharing/policy"
	"github.com/aussiebroadwan/notecards/internal/sharing/store"
	"github.com/aussiebroadwan/notecards/pkg/slogx"
)

// MembershipService grants, revokes and changes collaborator roles for
// registered users. Only the deck owner may call it.
type MembershipService struct {
	Deps
}

func NewMembershipService(deps Deps) *MembershipService {
	return &MembershipService{Deps: deps}
}

// AddCollaborator grants role on deckID to the user registered under email.
// An existing member has their role overwritten. Any pending invite for the
// same email is removed in the same transaction.
func (s *MembershipService) AddCollaborator(ctx context.Context, p domain.Principal, deckID, email string, role domain.Role) (domain.Member, error) {
	log := slogx.FromContext(ctx).With(slog.String("deck_id", deckID))

	// 1. Validate input before touching the store
	emailLower, err := policy.NormalizeEmail(email)
	if err != nil {
		return domain.Member{}, fromPolicy(err)
	}
	if err := policy.ValidateRole(role); err != nil {
		return domain.Member{}, fromPolicy(err)
	}

	now := s.now()
	var member domain.Member
	var clearedInvite bool

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. Load the deck and check the caller owns it
		deck, callerRole, err := loadDeck(ctx, tx.Decks(), deckID, p.UserID)
		if err != nil {
			return err
		}
		if !policy.CanManageSharing(callerRole) {
			return denied("only the owner can add collaborators")
		}

		// 3. Resolve the email to a registered user
		if isCallerEmail(p, emailLower) {
			return invalid("the owner cannot be added as a collaborator")
		}
		user, err := tx.Users().GetUserByEmail(ctx, emailLower)
		if err != nil {
			if isStoreNotFound(err) {
				return ErrUserNotFound
			}
			return err
		}
		if user.ID == deck.OwnerID {
			return invalid("the owner cannot be added as a collaborator")
		}

		// 4. Upsert the member row, keeping the original grant time
		member = domain.Member{
			DeckID:    deck.ID,
			UserID:    user.ID,
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		}
		existing, err := tx.Members().GetMember(ctx, deck.ID, user.ID)
		switch {
		case err == nil:
			member.CreatedAt = existing.CreatedAt
		case !isStoreNotFound(err):
			return err
		}
		if err := tx.Members().UpsertMember(ctx, member); err != nil {
			return mapMemberWrite(err)
		}

		// 5. A user is either a member or invited, never both
		clearedInvite, err = tx.Invites().DeleteInviteForEmail(ctx, deck.ID, user.EmailLower)
		if err != nil {
			return err
		}

		return tx.Decks().TouchDeck(ctx, deck.ID, now)
	})
	if err != nil {
		logFailure(log, "add collaborator failed", err)
		return domain.Member{}, err
	}

	log.Info("collaborator added",
		slog.String("user_id", member.UserID),
		slog.String("role", string(member.Role)),
		slog.Bool("cleared_invite", clearedInvite),
	)
	s.publish(ctx, events.Event{
		Type:    events.MemberAdded,
		DeckID:  member.DeckID,
		ActorID: p.UserID,
		UserID:  member.UserID,
		Email:   emailLower,
		Role:    string(member.Role),
	})
	return member, nil
}

// RemoveCollaborator revokes every role userID holds on deckID.
func (s *MembershipService) RemoveCollaborator(ctx context.Context, p domain.Principal, deckID, userID string) error {
	log := slogx.FromContext(ctx).With(slog.String("deck_id", deckID), slog.String("user_id", userID))

	if userID == "" {
		return invalid("user id is required")
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		deck, callerRole, err := loadDeck(ctx, tx.Decks(), deckID, p.UserID)
		if err != nil {
			return err
		}
		if !policy.CanManageSharing(callerRole) {
			return denied("only the owner can remove collaborators")
		}
		if userID == deck.OwnerID {
			return invalid("the owner cannot be removed from their deck")
		}

		if err := tx.Members().DeleteMember(ctx, deck.ID, userID); err != nil {
			if isStoreNotFound(err) {
				return notFound("user %s is not a collaborator", userID)
			}
			return err
		}
		return tx.Decks().TouchDeck(ctx, deck.ID, s.now())
	})
	if err != nil {
		logFailure(log, "remove collaborator failed", err)
		return err
	}

	log.Info("collaborator removed")
	s.publish(ctx, events.Event{
		Type:    events.MemberRemoved,
		DeckID:  deckID,
		ActorID: p.UserID,
		UserID:  userID,
	})
	return nil
}

// ChangeRole sets a new role for an existing collaborator.
func (s *MembershipService) ChangeRole(ctx context.Context, p domain.Principal, deckID, userID string, role domain.Role) (domain.Member, error) {
	log := slogx.FromContext(ctx).With(slog.String("deck_id", deckID), slog.String("user_id", userID))

	if userID == "" {
		return domain.Member{}, invalid("user id is required")
	}
	if err := policy.ValidateRole(role); err != nil {
		return domain.Member{}, fromPolicy(err)
	}

	var member domain.Member
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		deck, callerRole, err := loadDeck(ctx, tx.Decks(), deckID, p.UserID)
		if err != nil {
			return err
		}
		if !policy.CanManageSharing(callerRole) {
			return denied("only the owner can change roles")
		}
		if userID == deck.OwnerID {
			return invalid("the owner's role cannot be changed")
		}

		member, err = tx.Members().GetMember(ctx, deck.ID, userID)
		if err != nil {
			if isStoreNotFound(err) {
				return notFound("user %s is not a collaborator", userID)
			}
			return err
		}

		now := s.now()
		member.Role = role
		member.UpdatedAt = now
		if err := tx.Members().UpsertMember(ctx, member); err != nil {
			return mapMemberWrite(err)
		}
		return tx.Decks().TouchDeck(ctx, deck.ID, now)
	})
	if err != nil {
		logFailure(log, "change role failed", err)
		return domain.Member{}, err
	}

	log.Info("collaborator role changed", slog.String("role", string(role)))
	s.publish(ctx, events.Event{
		Type:    events.MemberRoleChanged,
		DeckID:  deckID,
		ActorID: p.UserID,
		UserID:  userID,
		Role:    string(role),
	})
	return member, nil
}

func mapMemberWrite(err error) error {
	if errors.Is(err, store.ErrOwnerMember) {
		return &kindError{kind: ErrValidation, err: err}
	}
	return err
}
