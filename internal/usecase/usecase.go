package usecase

import (
	"time"

	"team-directory/config"
	"team-directory/internal/repository"
	"team-directory/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	TeamUsecaseInterface
	MemberUsecaseInterface
	SyncUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	directory domain.Directory,
	gh config.GitHubConfig,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, repo, directory, gh, timeout)
}
