package domain

import "slices"

// Principal is the authenticated caller every service call acts on behalf of.
type Principal struct {
	UserID string
	Email  string
	Scopes []string
}

func (p Principal) HasScope(scope string) bool {
	return slices.Contains(p.Scopes, scope)
}
