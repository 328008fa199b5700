// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"team-directory/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	ListTeams(ctx context.Context) ([]entities.Team, error)
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, id int64, withMembers bool) (*entities.Team, error)
	TeamByName(ctx context.Context, name string) (*entities.Team, error)
	UpdateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id int64) (int64, error)
}

// MemberInterface exposes member-related operations.
type MemberInterface interface {
	AddMember(ctx context.Context, member entities.Member) (*entities.Member, error)
	ListMembers(ctx context.Context, teamID int64) ([]entities.Member, error)
	GetMember(ctx context.Context, id int64) (*entities.Member, error)
	UpdateMember(ctx context.Context, member entities.Member) (*entities.Member, error)
	DeleteMember(ctx context.Context, id int64) error
}

// ImportInterface applies a remote organization snapshot.
type ImportInterface interface {
	// ImportTeams reconciles all teams in a single transaction and returns
	// the number of teams and members written.
	ImportTeams(ctx context.Context, teams []entities.ImportedTeam) (int, int, error)
}
