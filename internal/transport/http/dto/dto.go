// Package dto holds the JSON shapes of the HTTP API.
package dto

// Team is the serialized team.
type Team struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	MemberCount int    `json:"member_count"`
}

// TeamWithMembers is a team with its ordered member list.
type TeamWithMembers struct {
	Team
	Members []Member `json:"members"`
}

// Member is the serialized member.
type Member struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
	TeamID   int64  `json:"team_id"`
}

// CreateTeamRequest is the body of POST /api/teams.
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateTeamRequest is the body of PUT /api/teams/:id.
type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AddMemberRequest is the body of POST /api/teams/:id/members.
type AddMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateMemberRequest is the body of PUT /api/members/:id.
type UpdateMemberRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// SyncRequest is the optional body of POST /api/github/sync.
type SyncRequest struct {
	Organization string `json:"organization"`
}

// SyncStatus is the response of GET /api/github/status.
type SyncStatus struct {
	Configured   bool   `json:"configured"`
	Organization string `json:"organization"`
}

// SyncSummary is the response of POST /api/github/sync.
type SyncSummary struct {
	Organization    string `json:"organization"`
	TeamsImported   int    `json:"teams_imported"`
	MembersImported int    `json:"members_imported"`
}

// Status is the response of delete operations.
type Status struct {
	Status string `json:"status"`
}

// ErrorResponse carries a single human-readable message.
type ErrorResponse struct {
	Error string `json:"error"`
}
