package domain

import (
	"context"
	"strings"

	"team-directory/internal/entities"
)

// AddMember validates and adds a member to an existing team.
func (u *Usecase) AddMember(ctx context.Context, teamID int64, name, email, role string) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.GetTeam(ctx, teamID, false); err != nil {
		return nil, err
	}

	m := entities.Member{
		TeamID:   teamID,
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Role:     strings.TrimSpace(role),
		JoinedAt: u.now(),
	}
	if err := validateMember(m.Name, m.Email, m.Role); err != nil {
		return nil, err
	}
	return u.repo.AddMember(ctx, m)
}

// ListMembers returns members of a team.
func (u *Usecase) ListMembers(ctx context.Context, teamID int64) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.GetTeam(ctx, teamID, false); err != nil {
		return nil, err
	}
	return u.repo.ListMembers(ctx, teamID)
}

// UpdateMember replaces member fields. Omitted name and email keep their
// values; an omitted role is cleared.
func (u *Usecase) UpdateMember(ctx context.Context, id int64, update entities.MemberUpdate) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	current, err := u.repo.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}

	m := entities.Member{
		ID:     id,
		TeamID: current.TeamID,
		Name:   optional(update.Name, current.Name),
		Email:  optional(update.Email, current.Email),
		Role:   optional(update.Role, ""),
	}
	if err := validateMember(m.Name, m.Email, m.Role); err != nil {
		return nil, err
	}
	return u.repo.UpdateMember(ctx, m)
}

// DeleteMember removes a member; its team is never affected.
func (u *Usecase) DeleteMember(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteMember(ctx, id)
}
