package postgres

import (
	"context"
	"errors"
	"fmt"

	"team-directory/internal/entities"

	"github.com/jackc/pgx/v5"
)

const updateTeamDescriptionQuery = `UPDATE teams SET description = $2 WHERE id = $1`

// ImportTeams reconciles a remote snapshot into local teams in one transaction.
// Teams are matched by exact name; each matched team's member list is replaced.
func (p *Postgres) ImportTeams(ctx context.Context, teams []entities.ImportedTeam) (int, int, error) {
	var teamCnt, memberCnt int
	err := p.inTx(ctx, func(tx pgx.Tx) error {
		teamCnt, memberCnt = 0, 0
		for _, it := range teams {
			teamID, err := p.findOrCreateTeam(ctx, tx, it)
			if err != nil {
				return err
			}

			if _, err := tx.Exec(ctx, updateTeamDescriptionQuery, teamID, it.Description); err != nil {
				return fmt.Errorf("update team description: %w", err)
			}
			if _, err := tx.Exec(ctx, deleteTeamMembersQuery, teamID); err != nil {
				return fmt.Errorf("clear team members: %w", err)
			}

			for _, m := range it.Members {
				m.TeamID = teamID
				if _, err := insertMember(ctx, tx, m); err != nil {
					return err
				}
				memberCnt++
			}
			teamCnt++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	p.log.Infow("teams imported", "teams", teamCnt, "members", memberCnt)
	return teamCnt, memberCnt, nil
}

func (p *Postgres) findOrCreateTeam(ctx context.Context, tx pgx.Tx, it entities.ImportedTeam) (int64, error) {
	existing, err := teamByName(ctx, tx, it.Name)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, entities.ErrTeamNotFound) {
		return 0, err
	}

	created, err := insertTeam(ctx, tx, entities.Team{
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   it.ImportedAt,
	})
	if err != nil {
		return 0, err
	}
	p.log.Debugw("team created by import", "team_id", created.ID, "team", created.Name)
	return created.ID, nil
}
