package http

import (
	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/service"
	"github.com/aussiebroadwan/notecards/pkg/decksdk"
)

func toUser(u domain.User) decksdk.User {
	return decksdk.User{
		ID:          u.ID,
		Email:       u.EmailLower,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toDeck(d domain.Deck, caller domain.Role) decksdk.Deck {
	roles := make(map[string]string, len(d.Roles))
	for uid, r := range d.Roles {
		roles[uid] = string(r)
	}
	out := decksdk.Deck{
		ID:              d.ID,
		OwnerID:         d.OwnerID,
		Title:           d.Title,
		Roles:           roles,
		CollaboratorIDs: d.CollaboratorIDs(),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	if caller != domain.RoleNone {
		out.Role = string(caller)
	}
	return out
}

func toMember(m domain.Member) decksdk.Member {
	return decksdk.Member{
		DeckID:    m.DeckID,
		UserID:    m.UserID,
		Role:      string(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toMembers(ms []domain.Member) []decksdk.Member {
	out := make([]decksdk.Member, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMember(m))
	}
	return out
}

func toInvite(i domain.Invite) decksdk.Invite {
	return decksdk.Invite{
		ID:              i.ID,
		DeckID:          i.DeckID,
		InvitedByUserID: i.InvitedByUserID,
		Email:           i.EmailLower,
		RoleRequested:   string(i.RoleRequested),
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
		ExpiresAt:       i.ExpiresAt,
	}
}

func toInvites(is []domain.Invite) []decksdk.Invite {
	out := make([]decksdk.Invite, 0, len(is))
	for _, i := range is {
		out = append(out, toInvite(i))
	}
	return out
}

func toCard(c domain.Card) decksdk.Card {
	return decksdk.Card{
		ID:        c.ID,
		DeckID:    c.DeckID,
		Front:     c.Front,
		Back:      c.Back,
		Position:  c.Position,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toSnapshot(s domain.OrderSnapshot) decksdk.OrderSnapshot {
	return decksdk.OrderSnapshot{
		ID:        s.ID,
		DeckID:    s.DeckID,
		CardIDs:   s.CardIDs,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
	}
}

func toShareResult(r service.Result) decksdk.ShareResult {
	if !r.Success() {
		return decksdk.ShareResult{
			Success:          false,
			Error:            string(r.Kind),
			ErrorDescription: r.Error,
		}
	}

	out := decksdk.ShareResult{Success: true, Outcome: string(r.Outcome)}
	if r.Member != nil {
		m := toMember(*r.Member)
		out.Member = &m
	}
	if r.Invite != nil {
		i := toInvite(*r.Invite)
		out.Invite = &i
	}
	return out
}
