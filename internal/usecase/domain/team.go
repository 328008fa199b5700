package domain

import (
	"context"
	"errors"
	"strings"

	"team-directory/internal/entities"
)

// ListTeams returns all teams ordered by name.
func (u *Usecase) ListTeams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTeams(ctx)
}

// CreateTeam validates and persists a new team.
func (u *Usecase) CreateTeam(ctx context.Context, name, description string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if err := validateTeamName(name); err != nil {
		u.log.Warnw("failed to create team: invalid name", "name", name)
		return nil, err
	}

	if err := u.ensureNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	return u.repo.CreateTeam(ctx, entities.Team{
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   u.now(),
	})
}

// Team returns a team by id, optionally with its members.
func (u *Usecase) Team(ctx context.Context, id int64, includeMembers bool) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetTeam(ctx, id, includeMembers)
}

// UpdateTeam replaces name and description of a team. An omitted name keeps
// the current one; an omitted description clears it.
func (u *Usecase) UpdateTeam(ctx context.Context, id int64, update entities.TeamUpdate) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	current, err := u.repo.GetTeam(ctx, id, false)
	if err != nil {
		return nil, err
	}

	name := optional(update.Name, current.Name)
	if err := validateTeamName(name); err != nil {
		u.log.Warnw("failed to update team: invalid name", "team_id", id)
		return nil, err
	}
	if err := u.ensureNameFree(ctx, name, id); err != nil {
		return nil, err
	}

	return u.repo.UpdateTeam(ctx, entities.Team{
		ID:          id,
		Name:        name,
		Description: optional(update.Description, ""),
	})
}

// DeleteTeam removes a team together with its members.
func (u *Usecase) DeleteTeam(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	removed, err := u.repo.DeleteTeam(ctx, id)
	if err != nil {
		return err
	}
	u.log.Infow("team delete", "team_id", id, "members_removed", removed)
	return nil
}

// ensureNameFree fails with a conflict when a team other than selfID owns name.
func (u *Usecase) ensureNameFree(ctx context.Context, name string, selfID int64) error {
	existing, err := u.repo.TeamByName(ctx, name)
	switch {
	case errors.Is(err, entities.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		u.log.Warnw("team name taken", "name", name, "team_id", existing.ID)
		return entities.ErrTeamExists
	default:
		return nil
	}
}
