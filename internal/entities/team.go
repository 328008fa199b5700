// Package entities contains core business entities.
package entities

import "time"

// Team is a named collection of members.
type Team struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	MemberCount int
	Members     []Member
}

// TeamUpdate carries the optional fields of a team replacement.
// A nil field means the value was omitted by the caller.
type TeamUpdate struct {
	Name        *string
	Description *string
}
