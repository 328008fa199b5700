// Package github fetches organization teams and members from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"team-directory/config"

	"go.uber.org/zap"
)

// ErrUnreachable is returned when the remote API cannot be reached.
var ErrUnreachable = errors.New("unable to reach remote API")

// APIError is an error response returned by the remote API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote API returned status %d", e.Status)
	}
	return e.Message
}

// Team is a remote team as listed for an organization.
type Team struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

// Member is a remote team member.
type Member struct {
	Login    string `json:"login"`
	Name     string `json:"name"`
	RoleName string `json:"role_name"`
}

// Client is a minimal paginating GitHub client.
type Client struct {
	log      *zap.SugaredLogger
	http     *http.Client
	baseURL  string
	token    string
	pageSize int
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// New constructs a Client from GitHub configuration.
func New(log *zap.SugaredLogger, cfg config.GitHubConfig, opts ...Option) *Client {
	c := &Client{
		log:      log.Named("github"),
		http:     &http.Client{Timeout: cfg.Timeout},
		baseURL:  strings.TrimRight(cfg.APIURL, "/"),
		token:    strings.TrimSpace(cfg.Token),
		pageSize: cfg.PageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListTeams returns every team of the organization.
func (c *Client) ListTeams(ctx context.Context, org string) ([]Team, error) {
	path := fmt.Sprintf("/orgs/%s/teams", url.PathEscape(org))
	teams := make([]Team, 0)
	err := c.paginate(ctx, path, nil, func(body []byte) error {
		var page []Team
		if err := json.Unmarshal(body, &page); err != nil {
			return fmt.Errorf("decode teams: %w", err)
		}
		teams = append(teams, page...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// ListTeamMembers returns every member of a team, all roles included.
func (c *Client) ListTeamMembers(ctx context.Context, org, teamSlug string) ([]Member, error) {
	path := fmt.Sprintf("/orgs/%s/teams/%s/members", url.PathEscape(org), url.PathEscape(teamSlug))
	members := make([]Member, 0)
	err := c.paginate(ctx, path, url.Values{"role": {"all"}}, func(body []byte) error {
		var page []Member
		if err := json.Unmarshal(body, &page); err != nil {
			return fmt.Errorf("decode members: %w", err)
		}
		members = append(members, page...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

// paginate requests path with page-size parameters and then follows
// rel="next" links verbatim until none remain.
func (c *Client) paginate(ctx context.Context, path string, query url.Values, handle func([]byte) error) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("per_page", strconv.Itoa(c.pageSize))
	next := c.baseURL + path + "?" + query.Encode()

	for page := 1; next != ""; page++ {
		body, link, err := c.get(ctx, next)
		if err != nil {
			return err
		}
		if err := handle(body); err != nil {
			return err
		}
		c.log.Debugw("page fetched", "path", path, "page", page)
		next = nextLink(link)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("remote request failed", "url", endpoint, "error", err)
		return nil, "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: read body: %v", ErrUnreachable, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = strings.TrimSpace(payload.Message)
		}
		c.log.Warnw("remote API error", "url", endpoint, "status", resp.StatusCode, "message", apiErr.Message)
		return nil, "", apiErr
	}
	return body, resp.Header.Get("Link"), nil
}
