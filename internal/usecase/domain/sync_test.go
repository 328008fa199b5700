package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"team-directory/config"
	"team-directory/internal/entities"
	"team-directory/internal/github"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUsecase_SyncStatus(t *testing.T) {
	uc := newUsecase(&repoMock{}, &directoryMock{}, config.GitHubConfig{Organization: " acme "})
	require.Equal(t, entities.SyncStatus{Configured: true, Organization: "acme"}, uc.SyncStatus())

	uc = newUsecase(&repoMock{}, &directoryMock{}, config.GitHubConfig{})
	require.Equal(t, entities.SyncStatus{}, uc.SyncStatus())
}

func TestUsecase_SyncRequiresOrganization(t *testing.T) {
	repo := &repoMock{}
	dir := &directoryMock{}
	uc := newUsecase(repo, dir, config.GitHubConfig{})

	_, err := uc.Sync(context.Background(), "  ")
	require.ErrorIs(t, err, entities.ErrNotConfigured)
	require.Equal(t, "organization required", entities.Message(err, ""))
	dir.AssertNotCalled(t, "ListTeams", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "ImportTeams", mock.Anything, mock.Anything)
}

func TestUsecase_SyncBuildsSnapshot(t *testing.T) {
	repo := &repoMock{}
	dir := &directoryMock{}
	uc := newUsecase(repo, dir, config.GitHubConfig{Organization: "default-org", NoreplyDomain: "users.noreply.github.com"})

	desc := "Core team"
	dir.On("ListTeams", mock.Anything, "acme").Return([]github.Team{
		{Name: "Core", Slug: "core", Description: &desc},
		{Name: "  ", Slug: "blank"},
		{Name: "Docs", Slug: "docs"},
	}, nil)
	dir.On("ListTeamMembers", mock.Anything, "acme", "core").Return([]github.Member{
		{Login: "octocat", Name: "The Octocat", RoleName: "maintainer"},
		{Login: ""},
		{Login: "hubot"},
		{Login: "octocat", Name: "duplicate"},
	}, nil)
	dir.On("ListTeamMembers", mock.Anything, "acme", "docs").Return([]github.Member{}, nil)

	want := []entities.ImportedTeam{
		{Name: "Core", Description: "Core team", ImportedAt: fixedNow, Members: []entities.Member{
			{Name: "The Octocat", Email: "octocat@users.noreply.github.com", Role: "maintainer", JoinedAt: fixedNow},
			{Name: "hubot", Email: "hubot@users.noreply.github.com", JoinedAt: fixedNow},
		}},
		{Name: "Docs", Description: "", ImportedAt: fixedNow, Members: []entities.Member{}},
	}
	repo.On("ImportTeams", mock.Anything, want).Return(2, 2, nil)

	summary, err := uc.Sync(context.Background(), " acme ")
	require.NoError(t, err)
	require.Equal(t, entities.SyncSummary{Organization: "acme", TeamsImported: 2, MembersImported: 2}, summary)
	dir.AssertNotCalled(t, "ListTeamMembers", mock.Anything, "acme", "blank")
	repo.AssertExpectations(t)
}

func TestUsecase_SyncErrors(t *testing.T) {
	tests := []struct {
		name      string
		listErr   error
		importErr error
		wantMsg   string
	}{
		{name: "unreachable", listErr: fmt.Errorf("%w: dial tcp", github.ErrUnreachable), wantMsg: "unable to reach remote API"},
		{name: "api error", listErr: &github.APIError{Status: 401, Message: "Bad credentials"}, wantMsg: "Bad credentials"},
		{name: "unexpected", listErr: errors.New("decode teams: boom"), wantMsg: "failed to import data."},
		{name: "import", importErr: errors.New("insert member: boom"), wantMsg: "failed to import data."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := &repoMock{}
			dir := &directoryMock{}
			uc := newUsecase(repo, dir, config.GitHubConfig{Organization: "acme"})

			if tt.listErr != nil {
				dir.On("ListTeams", mock.Anything, "acme").Return(nil, tt.listErr)
			} else {
				dir.On("ListTeams", mock.Anything, "acme").Return([]github.Team{}, nil)
				repo.On("ImportTeams", mock.Anything, mock.Anything).Return(0, 0, tt.importErr)
			}

			_, err := uc.Sync(context.Background(), "")
			require.ErrorIs(t, err, entities.ErrSync)
			require.Equal(t, tt.wantMsg, entities.Message(err, ""))
			if tt.listErr != nil {
				repo.AssertNotCalled(t, "ImportTeams", mock.Anything, mock.Anything)
			}
		})
	}
}

// Runs the real client against a fake API whose team listing spans two pages.
func TestUsecase_SyncPaginatedListing(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orgs/acme/teams":
			if r.URL.Query().Get("page") == "2" {
				fmt.Fprint(w, `[{"name":"Docs","slug":"docs"}]`)
				return
			}
			w.Header().Set("Link", fmt.Sprintf(`<%s/orgs/acme/teams?page=2>; rel="next"`, srv.URL))
			fmt.Fprint(w, `[{"name":"Core","slug":"core","description":"Core team"}]`)
		case "/orgs/acme/teams/core/members":
			fmt.Fprint(w, `[{"login":"octocat"},{"login":"hubot"}]`)
		case "/orgs/acme/teams/docs/members":
			fmt.Fprint(w, `[{"login":"monalisa"}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := github.New(zap.NewNop().Sugar(), config.GitHubConfig{APIURL: srv.URL, PageSize: 1, Timeout: time.Second})
	repo := &repoMock{}
	uc := newUsecase(repo, nil, config.GitHubConfig{Organization: "acme", NoreplyDomain: "users.noreply.github.com"})
	uc.directory = client

	var imported []entities.ImportedTeam
	repo.On("ImportTeams", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		imported = args.Get(1).([]entities.ImportedTeam)
	}).Return(2, 3, nil)

	summary, err := uc.Sync(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 3, summary.MembersImported)

	emails := make(map[string]int)
	for _, it := range imported {
		for _, m := range it.Members {
			emails[m.Email]++
		}
	}
	require.Equal(t, map[string]int{
		"octocat@users.noreply.github.com":  1,
		"hubot@users.noreply.github.com":    1,
		"monalisa@users.noreply.github.com": 1,
	}, emails)
	require.Len(t, imported, 2)
	require.Equal(t, "Core team", imported[0].Description)
}
