// Package policy holds the access rules for decks and their subcollections.
// Everything here is a pure function over domain values so the rules can be
// unit tested without a store.
package policy

import (
	"errors"
	"fmt"
	"maps"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
)

// MaxTitleLength is the longest deck title accepted, in characters.
const MaxTitleLength = 200

var (
	// ErrDenied means the actor's role does not allow the action.
	ErrDenied = errors.New("permission denied")

	// ErrInvalid means the proposed value breaks a rule regardless of role.
	ErrInvalid = errors.New("validation failed")
)

// EffectiveRole returns the role userID holds on d.
func EffectiveRole(d domain.Deck, userID string) domain.Role {
	if userID == "" {
		return domain.RoleNone
	}
	if userID == d.OwnerID {
		return domain.RoleOwner
	}
	if r, ok := d.Roles[userID]; ok && r.Assignable() {
		return r
	}
	return domain.RoleNone
}

func CanReadDeck(r domain.Role) bool {
	return r == domain.RoleOwner || r == domain.RoleEditor || r == domain.RoleViewer
}

func CanRenameDeck(r domain.Role) bool {
	return r == domain.RoleOwner || r == domain.RoleEditor
}

// CanWriteCards covers cards and order snapshots.
func CanWriteCards(r domain.Role) bool {
	return r == domain.RoleOwner || r == domain.RoleEditor
}

// CanManageSharing covers members, roles and invites.
func CanManageSharing(r domain.Role) bool {
	return r == domain.RoleOwner
}

func CanDeleteDeck(r domain.Role) bool {
	return r == domain.RoleOwner
}

// ValidateTitle trims title and checks its length.
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	n := utf8.RuneCountInString(title)
	if n == 0 || n > MaxTitleLength {
		return "", fmt.Errorf("%w: title must be 1-%d characters", ErrInvalid, MaxTitleLength)
	}
	return title, nil
}

// ValidateRole accepts only roles that can be granted to a collaborator.
func ValidateRole(r domain.Role) error {
	if !r.Assignable() {
		return fmt.Errorf("%w: role must be editor or viewer, got %q", ErrInvalid, r.String())
	}
	return nil
}

// ValidateDeckCreate checks a new deck using only the incoming value. It
// never needs to load anything, so it cannot trip over missing documents.
func ValidateDeckCreate(p domain.Principal, d domain.Deck) error {
	if p.UserID == "" || d.OwnerID != p.UserID {
		return fmt.Errorf("%w: owner must be the caller", ErrDenied)
	}
	if _, err := ValidateTitle(d.Title); err != nil {
		return err
	}
	if len(d.Roles) != 0 {
		return fmt.Errorf("%w: a new deck cannot have collaborators", ErrInvalid)
	}
	return nil
}

// ValidateDeckUpdate checks the transition prior -> next made by an actor
// holding role. Owner and creation time never change. Editors may change the
// title only and viewers nothing at all.
func ValidateDeckUpdate(prior, next domain.Deck, role domain.Role) error {
	if !CanRenameDeck(role) {
		return fmt.Errorf("%w: %s cannot modify the deck", ErrDenied, role)
	}
	if next.ID != prior.ID {
		return fmt.Errorf("%w: id is immutable", ErrInvalid)
	}
	if next.OwnerID != prior.OwnerID {
		return fmt.Errorf("%w: ownerId is immutable", ErrInvalid)
	}
	if !next.CreatedAt.Equal(prior.CreatedAt) {
		return fmt.Errorf("%w: createdAt is immutable", ErrInvalid)
	}
	if _, err := ValidateTitle(next.Title); err != nil {
		return err
	}

	if maps.Equal(prior.Roles, next.Roles) {
		return nil
	}
	if !CanManageSharing(role) {
		return fmt.Errorf("%w: %s cannot change roles", ErrDenied, role)
	}
	for uid, r := range next.Roles {
		if uid == next.OwnerID {
			return fmt.Errorf("%w: owner cannot hold a collaborator role", ErrInvalid)
		}
		if err := ValidateRole(r); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeEmail trims and lowercases a bare address. Display-name forms
// such as "Ada <ada@example.com>" are rejected.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalid)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return "", fmt.Errorf("%w: malformed email %q", ErrInvalid, email)
	}
	return strings.ToLower(addr.Address), nil
}
