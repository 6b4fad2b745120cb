package domain

// Role is a permission level on a deck.
type Role string

const (
	RoleNone   Role = ""
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// ParseRole maps a wire value onto a Role. Unknown values give RoleNone.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleOwner, RoleEditor, RoleViewer:
		return Role(s)
	default:
		return RoleNone
	}
}

// Assignable reports whether r may be granted to a collaborator. The owner
// role is implied by Deck.OwnerID and never stored.
func (r Role) Assignable() bool {
	return r == RoleEditor || r == RoleViewer
}

func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}
	return string(r)
}
