// Package domain contains application services orchestrating domain logic.
package domain

import (
	"context"
	"time"

	"team-directory/config"
	"team-directory/internal/github"
	"team-directory/internal/repository"

	"go.uber.org/zap"
)

// Directory is the remote source of organization teams and members.
type Directory interface {
	ListTeams(ctx context.Context, org string) ([]github.Team, error)
	ListTeamMembers(ctx context.Context, org, teamSlug string) ([]github.Member, error)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log       *zap.SugaredLogger
	repo      repository.Repository
	directory Directory
	github    config.GitHubConfig
	timeout   time.Duration
	now       func() time.Time
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	directory Directory,
	gh config.GitHubConfig,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		log:       log.Named("usecase"),
		repo:      repo,
		directory: directory,
		github:    gh,
		timeout:   timeout,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
