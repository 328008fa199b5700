package usecase

import (
	"context"

	"team-directory/internal/entities"
)

// TeamUsecaseInterface abstracts team-related operations for delivery layer.
type TeamUsecaseInterface interface {
	ListTeams(ctx context.Context) ([]entities.Team, error)
	CreateTeam(ctx context.Context, name, description string) (*entities.Team, error)
	Team(ctx context.Context, id int64, includeMembers bool) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id int64, update entities.TeamUpdate) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// MemberUsecaseInterface abstracts member-related operations.
type MemberUsecaseInterface interface {
	AddMember(ctx context.Context, teamID int64, name, email, role string) (*entities.Member, error)
	ListMembers(ctx context.Context, teamID int64) ([]entities.Member, error)
	UpdateMember(ctx context.Context, id int64, update entities.MemberUpdate) (*entities.Member, error)
	DeleteMember(ctx context.Context, id int64) error
}

// SyncUsecaseInterface abstracts the organization import.
type SyncUsecaseInterface interface {
	SyncStatus() entities.SyncStatus
	Sync(ctx context.Context, organization string) (entities.SyncSummary, error)
}
