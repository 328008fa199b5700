package postgres

import (
	"context"
	"errors"
	"fmt"

	"team-directory/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	memberColumns = "id, name, email, role, joined_at, team_id"

	insertMemberQuery     = `INSERT INTO members(name, email, role, joined_at, team_id) VALUES ($1, $2, $3, $4, $5) RETURNING ` + memberColumns
	selectMembersQuery    = `SELECT ` + memberColumns + ` FROM members WHERE team_id = $1 ORDER BY id ASC`
	selectMemberByIDQuery = `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	updateMemberQuery     = `UPDATE members SET name = $2, email = $3, role = $4 WHERE id = $1 RETURNING ` + memberColumns
	deleteMemberQuery     = `DELETE FROM members WHERE id = $1`
)

// AddMember inserts a member into an existing team.
func (p *Postgres) AddMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	m, err := insertMember(ctx, p.db, member)
	if err != nil {
		return nil, err
	}
	p.log.Infow("member added", "member_id", m.ID, "team_id", m.TeamID)
	return m, nil
}

// ListMembers returns members of a team in storage order.
func (p *Postgres) ListMembers(ctx context.Context, teamID int64) ([]entities.Member, error) {
	return listMembers(ctx, p.db, teamID)
}

// GetMember fetches a member by id.
func (p *Postgres) GetMember(ctx context.Context, id int64) (*entities.Member, error) {
	m, err := scanMember(p.db.QueryRow(ctx, selectMemberByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}

// UpdateMember replaces name, email and role of a member.
func (p *Postgres) UpdateMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	m, err := scanMember(p.db.QueryRow(ctx, updateMemberQuery, member.ID, member.Name, member.Email, member.Role))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("update member: %w", err)
	}
	p.log.Infow("member updated", "member_id", m.ID, "team_id", m.TeamID)
	return &m, nil
}

// DeleteMember removes a single member; its team is left intact.
func (p *Postgres) DeleteMember(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteMemberQuery, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrMemberNotFound
	}
	p.log.Infow("member deleted", "member_id", id)
	return nil
}

func insertMember(ctx context.Context, q querier, member entities.Member) (*entities.Member, error) {
	m, err := scanMember(q.QueryRow(ctx, insertMemberQuery,
		member.Name, member.Email, member.Role, member.JoinedAt, member.TeamID))
	if err != nil {
		if pgCode(err) == foreignKeyViolation {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}
	return &m, nil
}

func listMembers(ctx context.Context, q querier, teamID int64) ([]entities.Member, error) {
	rows, err := q.Query(ctx, selectMembersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan members: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}

func scanMember(row pgx.Row) (entities.Member, error) {
	var m entities.Member
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Role, &m.JoinedAt, &m.TeamID); err != nil {
		return entities.Member{}, err
	}
	m.JoinedAt = m.JoinedAt.UTC()
	return m, nil
}
