// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"time"

	"team-directory/internal/entities"
	"team-directory/internal/transport/http/dto"
)

// ToDTOTeam maps entities.Team to its transport model without members.
func ToDTOTeam(team entities.Team) dto.Team {
	return dto.Team{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		CreatedAt:   isoTime(team.CreatedAt),
		MemberCount: team.MemberCount,
	}
}

// ToDTOTeamWithMembers maps entities.Team including its members.
func ToDTOTeamWithMembers(team entities.Team) dto.TeamWithMembers {
	return dto.TeamWithMembers{
		Team:    ToDTOTeam(team),
		Members: ToDTOMemberList(team.Members),
	}
}

// ToDTOTeamList maps a slice of teams.
func ToDTOTeamList(list []entities.Team) []dto.Team {
	res := make([]dto.Team, 0, len(list))
	for _, t := range list {
		res = append(res, ToDTOTeam(t))
	}
	return res
}

// ToDTOMember maps entities.Member to transport model.
func ToDTOMember(m entities.Member) dto.Member {
	return dto.Member{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Role:     m.Role,
		JoinedAt: isoTime(m.JoinedAt),
		TeamID:   m.TeamID,
	}
}

// ToDTOMemberList maps a slice of members, never returning nil.
func ToDTOMemberList(list []entities.Member) []dto.Member {
	res := make([]dto.Member, 0, len(list))
	for _, m := range list {
		res = append(res, ToDTOMember(m))
	}
	return res
}

// ToDTOSyncStatus maps entities.SyncStatus.
func ToDTOSyncStatus(s entities.SyncStatus) dto.SyncStatus {
	return dto.SyncStatus{Configured: s.Configured, Organization: s.Organization}
}

// ToDTOSyncSummary maps entities.SyncSummary.
func ToDTOSyncSummary(s entities.SyncSummary) dto.SyncSummary {
	return dto.SyncSummary{
		Organization:    s.Organization,
		TeamsImported:   s.TeamsImported,
		MembersImported: s.MembersImported,
	}
}

// FromDTOTeamUpdate builds an entities.TeamUpdate from transport DTO.
func FromDTOTeamUpdate(src dto.UpdateTeamRequest) entities.TeamUpdate {
	return entities.TeamUpdate{Name: src.Name, Description: src.Description}
}

// FromDTOMemberUpdate builds an entities.MemberUpdate from transport DTO.
func FromDTOMemberUpdate(src dto.UpdateMemberRequest) entities.MemberUpdate {
	return entities.MemberUpdate{Name: src.Name, Email: src.Email, Role: src.Role}
}

func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
