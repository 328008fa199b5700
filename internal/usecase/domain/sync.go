package domain

import (
	"context"
	"errors"
	"strings"

	"team-directory/internal/entities"
	"team-directory/internal/github"

	"github.com/google/uuid"
)

// SyncStatus reports whether a default organization is configured.
func (u *Usecase) SyncStatus() entities.SyncStatus {
	org := u.github.DefaultOrganization()
	return entities.SyncStatus{Configured: org != "", Organization: org}
}

// Sync imports teams and members of an organization, replacing the member
// list of every imported team. Nothing is persisted unless the whole
// organization was fetched and reconciled.
func (u *Usecase) Sync(ctx context.Context, organization string) (entities.SyncSummary, error) {
	org := strings.TrimSpace(organization)
	if org == "" {
		org = u.github.DefaultOrganization()
	}
	if org == "" {
		return entities.SyncSummary{}, entities.NotConfigured(msgOrganizationNeeded)
	}

	ctx, cancel := withTimeout(ctx, u.github.SyncTimeout)
	defer cancel()

	log := u.log.With("sync_id", uuid.NewString(), "organization", org)
	log.Infow("sync started")

	snapshot, err := u.fetchOrganization(ctx, org)
	if err != nil {
		log.Warnw("sync fetch failed", "error", err)
		return entities.SyncSummary{}, remoteError(err)
	}

	teams, members, err := u.repo.ImportTeams(ctx, snapshot)
	if err != nil {
		log.Errorw("sync import failed", "error", err)
		return entities.SyncSummary{}, entities.Sync(msgImportFailed, err)
	}

	log.Infow("sync finished", "teams", teams, "members", members)
	return entities.SyncSummary{Organization: org, TeamsImported: teams, MembersImported: members}, nil
}

func (u *Usecase) fetchOrganization(ctx context.Context, org string) ([]entities.ImportedTeam, error) {
	remoteTeams, err := u.directory.ListTeams(ctx, org)
	if err != nil {
		return nil, err
	}

	now := u.now()
	snapshot := make([]entities.ImportedTeam, 0, len(remoteTeams))
	for _, rt := range remoteTeams {
		name := strings.TrimSpace(rt.Name)
		if name == "" {
			continue
		}
		slug := rt.Slug
		if slug == "" {
			slug = name
		}

		remoteMembers, err := u.directory.ListTeamMembers(ctx, org, slug)
		if err != nil {
			return nil, err
		}

		it := entities.ImportedTeam{
			Name:        name,
			Description: optional(rt.Description, ""),
			ImportedAt:  now,
			Members:     make([]entities.Member, 0, len(remoteMembers)),
		}
		seen := make(map[string]struct{}, len(remoteMembers))
		for _, rm := range remoteMembers {
			login := strings.TrimSpace(rm.Login)
			if login == "" {
				continue
			}
			if _, dup := seen[login]; dup {
				continue
			}
			seen[login] = struct{}{}

			display := strings.TrimSpace(rm.Name)
			if display == "" {
				display = login
			}
			it.Members = append(it.Members, entities.Member{
				Name:     display,
				Email:    login + "@" + u.noreplyDomain(),
				Role:     strings.TrimSpace(rm.RoleName),
				JoinedAt: now,
			})
		}
		snapshot = append(snapshot, it)
	}
	return snapshot, nil
}

func (u *Usecase) noreplyDomain() string {
	if d := strings.TrimSpace(u.github.NoreplyDomain); d != "" {
		return d
	}
	return "users.noreply.github.com"
}

func remoteError(err error) error {
	var apiErr *github.APIError
	switch {
	case errors.As(err, &apiErr):
		return entities.Sync(apiErr.Error(), err)
	case errors.Is(err, github.ErrUnreachable):
		return entities.Sync(github.ErrUnreachable.Error(), err)
	default:
		return entities.Sync(msgImportFailed, err)
	}
}
