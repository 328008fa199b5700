// Package entities contains core business entities.
package entities

import "time"

// Member is a person record belonging to exactly one team.
type Member struct {
	ID       int64
	TeamID   int64
	Name     string
	Email    string
	Role     string
	JoinedAt time.Time
}

// MemberUpdate carries the optional fields of a member replacement.
type MemberUpdate struct {
	Name  *string
	Email *string
	Role  *string
}
