package decksdk

import "time"

// Roles a collaborator can hold. The owner role is reported on decks but
// cannot be granted.
const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Sharing outcomes.
const (
	OutcomeGranted     = "granted"
	OutcomeInvited     = "invited"
	OutcomeRemoved     = "removed"
	OutcomeRoleChanged = "role_changed"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Keys     string `json:"keys"`
}

// ============================================================================
// Users
// ============================================================================

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RegisterRequest registers the caller. Email defaults to the email on the
// access token and, when given, must match it.
type RegisterRequest struct {
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

type RegisterResponse struct {
	User    User     `json:"user"`
	Claimed []Member `json:"claimed"`
}

// ============================================================================
// Decks
// ============================================================================

type Deck struct {
	ID              string            `json:"id"`
	OwnerID         string            `json:"owner_id"`
	Title           string            `json:"title"`
	Role            string            `json:"role,omitempty"` // the caller's role
	Roles           map[string]string `json:"roles"`
	CollaboratorIDs []string          `json:"collaborator_ids"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type DeckList struct {
	Decks []Deck `json:"decks"`
}

type CreateDeckRequest struct {
	Title string `json:"title"`
}

type UpdateDeckRequest struct {
	Title string `json:"title"`
}

// ============================================================================
// Sharing
// ============================================================================

type Member struct {
	DeckID    string    `json:"deck_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Invite struct {
	ID              string     `json:"id"`
	DeckID          string     `json:"deck_id"`
	InvitedByUserID string     `json:"invited_by_user_id"`
	Email           string     `json:"email"`
	RoleRequested   string     `json:"role_requested"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

type InviteList struct {
	Invites []Invite `json:"invites"`
}

type Sharing struct {
	DeckID  string   `json:"deck_id"`
	OwnerID string   `json:"owner_id"`
	Members []Member `json:"members"`
	Invites []Invite `json:"invites"`
}

type ShareRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UpdateMemberRequest struct {
	Role string `json:"role"`
}

// ShareResult is returned by the share, member update and member removal
// endpoints. Success is false exactly when Error is set.
type ShareResult struct {
	Success          bool    `json:"success"`
	Outcome          string  `json:"outcome,omitempty"`
	Member           *Member `json:"member,omitempty"`
	Invite           *Invite `json:"invite,omitempty"`
	Error            string  `json:"error,omitempty"`
	ErrorDescription string  `json:"error_description,omitempty"`
}

type ClaimResponse struct {
	Claimed []Member `json:"claimed"`
}

// ============================================================================
// Cards
// ============================================================================

type Card struct {
	ID        string    `json:"id"`
	DeckID    string    `json:"deck_id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	Position  int       `json:"position"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CardList struct {
	Cards []Card `json:"cards"`
}

type CreateCardRequest struct {
	Front string `json:"front"`
	Back  string `json:"back,omitempty"`
}

// UpdateCardRequest changes only the fields that are set.
type UpdateCardRequest struct {
	Front *string `json:"front,omitempty"`
	Back  *string `json:"back,omitempty"`
}

type ReorderRequest struct {
	CardIDs []string `json:"card_ids"`
}

type OrderSnapshot struct {
	ID        string    `json:"id"`
	DeckID    string    `json:"deck_id"`
	CardIDs   []string  `json:"card_ids"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderSnapshotList struct {
	Snapshots []OrderSnapshot `json:"snapshots"`
}
