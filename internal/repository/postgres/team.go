package postgres

import (
	"context"
	"errors"
	"fmt"

	"team-directory/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	teamColumns = `t.id, t.name, t.description, t.created_at,
	(SELECT COUNT(*) FROM members m WHERE m.team_id = t.id) AS member_count`

	listTeamsQuery        = "SELECT " + teamColumns + " FROM teams t ORDER BY t.name ASC"
	selectTeamByIDQuery   = "SELECT " + teamColumns + " FROM teams t WHERE t.id = $1"
	selectTeamByNameQuery = "SELECT " + teamColumns + " FROM teams t WHERE t.name = $1"

	insertTeamQuery = `INSERT INTO teams(name, description, created_at) VALUES ($1, $2, $3) RETURNING id, created_at`
	updateTeamQuery = `UPDATE teams SET name = $2, description = $3 WHERE id = $1`

	deleteTeamMembersQuery = `DELETE FROM members WHERE team_id = $1`
	deleteTeamQuery        = `DELETE FROM teams WHERE id = $1`
)

// ListTeams returns all teams ordered by name with their member counts.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, listTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("scan teams: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}
	return teams, nil
}

// CreateTeam inserts a team and returns it with server-assigned fields.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	created, err := insertTeam(ctx, p.db, team)
	if err != nil {
		return nil, err
	}
	p.log.Infow("team created", "team_id", created.ID, "team", created.Name)
	return created, nil
}

// GetTeam fetches a team by id, optionally with its members.
func (p *Postgres) GetTeam(ctx context.Context, id int64, withMembers bool) (*entities.Team, error) {
	t, err := scanTeam(p.db.QueryRow(ctx, selectTeamByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	if withMembers {
		members, err := listMembers(ctx, p.db, id)
		if err != nil {
			return nil, err
		}
		t.Members = members
	}
	return &t, nil
}

// TeamByName fetches a team by its exact name.
func (p *Postgres) TeamByName(ctx context.Context, name string) (*entities.Team, error) {
	return teamByName(ctx, p.db, name)
}

// UpdateTeam replaces name and description and returns the team with its members.
func (p *Postgres) UpdateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	tag, err := p.db.Exec(ctx, updateTeamQuery, team.ID, team.Name, team.Description)
	if err != nil {
		if pgCode(err) == uniqueViolation {
			return nil, entities.ErrTeamExists
		}
		return nil, fmt.Errorf("update team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrTeamNotFound
	}

	p.log.Infow("team updated", "team_id", team.ID, "team", team.Name)
	return p.GetTeam(ctx, team.ID, true)
}

// DeleteTeam removes the team's members and then the team in one transaction.
// It returns the number of members removed.
func (p *Postgres) DeleteTeam(ctx context.Context, id int64) (int64, error) {
	var removed int64
	err := p.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, deleteTeamMembersQuery, id)
		if err != nil {
			return fmt.Errorf("delete team members: %w", err)
		}
		removed = tag.RowsAffected()

		tag, err = tx.Exec(ctx, deleteTeamQuery, id)
		if err != nil {
			return fmt.Errorf("delete team: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return entities.ErrTeamNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	p.log.Infow("team deleted", "team_id", id, "members_removed", removed)
	return removed, nil
}

func insertTeam(ctx context.Context, q querier, team entities.Team) (*entities.Team, error) {
	if err := q.QueryRow(ctx, insertTeamQuery, team.Name, team.Description, team.CreatedAt).
		Scan(&team.ID, &team.CreatedAt); err != nil {
		if pgCode(err) == uniqueViolation {
			return nil, entities.ErrTeamExists
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}
	team.CreatedAt = team.CreatedAt.UTC()
	team.MemberCount = 0
	team.Members = nil
	return &team, nil
}

func teamByName(ctx context.Context, q querier, name string) (*entities.Team, error) {
	t, err := scanTeam(q.QueryRow(ctx, selectTeamByNameQuery, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team by name: %w", err)
	}
	return &t, nil
}

func scanTeam(row pgx.Row) (entities.Team, error) {
	var t entities.Team
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.MemberCount); err != nil {
		return entities.Team{}, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}
