package domain

import "time"

// User is a directory entry. ID is the subject issued by the auth service.
type User struct {
	ID          string
	EmailLower  string
	DisplayName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
