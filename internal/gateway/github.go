// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/orgstats/org-stats/internal/domain"
)

// ErrAccountNotFound reports that an identifier matched neither an
// organization nor a user.
var ErrAccountNotFound = errors.New("account not found")

const perPage = 100

// Fetcher defines the behavior of a gateway for fetching repository stats
// from GitHub.
type Fetcher interface {
	FetchAccountStats(ctx context.Context, account string) (domain.Stats, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty token yields an unauthenticated client.
func NewGitHubGateway(token string, logger *log.Logger) Fetcher {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = &http.Client{
			Transport: &oauth2.Transport{Source: ts},
		}
	}
	return &GitHubGateway{
		restClient: github.NewClient(httpClient),
		logger:     logger,
	}
}

// FetchAccountStats pages through the account's repository listing and returns
// the repository count and star total. The organization listing is tried
// first; a 404 there retries the same paging loop against the user listing.
func (g *GitHubGateway) FetchAccountStats(ctx context.Context, account string) (domain.Stats, error) {
	g.logger.Printf("Fetching repositories for %s as an organization...", account)
	stats, err := g.sumRepoPages(ctx, account, g.listOrgPage)
	if isNotFound(err) {
		g.logger.Printf("%s is not an organization, retrying as a user...", account)
		stats, err = g.sumRepoPages(ctx, account, g.listUserPage)
		if isNotFound(err) {
			return domain.Stats{}, fmt.Errorf("%q: %w", account, ErrAccountNotFound)
		}
	}
	if err != nil {
		return domain.Stats{}, fmt.Errorf("failed to list repositories for %q: %w", account, err)
	}
	g.logger.Printf("Completed %s: %d repositories, %d stars.", account, stats.Repos, stats.Stars)
	return stats, nil
}

// sumRepoPages walks one listing shape page by page, starting at page 1,
// until an empty page is returned. A single failed page aborts the whole
// fetch; there is no retry.
func (g *GitHubGateway) sumRepoPages(ctx context.Context, account string, listPage func(ctx context.Context, account string, page int) ([]*github.Repository, error)) (domain.Stats, error) {
	var stats domain.Stats
	for page := 1; ; page++ {
		repos, err := listPage(ctx, account, page)
		if err != nil {
			return domain.Stats{}, err
		}
		if len(repos) == 0 {
			break
		}
		stats.Repos += len(repos)
		for _, repo := range repos {
			stats.Stars += repo.GetStargazersCount()
		}
		g.logger.Printf("  Fetched page %d (%d repositories).", page, len(repos))
	}
	return stats, nil
}

func (g *GitHubGateway) listOrgPage(ctx context.Context, org string, page int) ([]*github.Repository, error) {
	opts := &github.RepositoryListByOrgOptions{
		Type:        "all",
		ListOptions: github.ListOptions{Page: page, PerPage: perPage},
	}
	repos, _, err := g.restClient.Repositories.ListByOrg(ctx, org, opts)
	return repos, err
}

func (g *GitHubGateway) listUserPage(ctx context.Context, user string, page int) ([]*github.Repository, error) {
	opts := &github.RepositoryListByUserOptions{
		Type:        "all",
		ListOptions: github.ListOptions{Page: page, PerPage: perPage},
	}
	repos, _, err := g.restClient.Repositories.ListByUser(ctx, user, opts)
	return repos, err
}

// isNotFound reports whether err is a GitHub API 404 response.
func isNotFound(err error) bool {
	var errResp *github.ErrorResponse
	return errors.As(err, &errResp) &&
		errResp.Response != nil &&
		errResp.Response.StatusCode == http.StatusNotFound
}
