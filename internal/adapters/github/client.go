package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"gitartist/internal/domain"
	"gitartist/internal/logging"
	"gitartist/internal/ports"
)

// DefaultDescription is used when a repository is created without one
const DefaultDescription = "Pixel art for my contribution graph, drawn with gitartist."

// Client implements ports.RepoHost on the GitHub REST API
type Client struct {
	client *github.Client
}

// Verify interface compliance at compile time
var _ ports.RepoHost = (*Client)(nil)

// NewClient creates a GitHub client authenticated with a personal access token
func NewClient(token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: GITHUB_PAT is not set", domain.ErrMissingCredentials)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	return &Client{client: github.NewClient(tc)}, nil
}

// CreateRepository creates a repository owned by the authenticated user
func (c *Client) CreateRepository(ctx context.Context, params ports.CreateRepoParams) (*domain.RemoteRepository, error) {
	description := params.Description
	if description == "" {
		description = DefaultDescription
	}

	logging.Logger.Info("Creating GitHub repository", "name", params.Name, "private", params.Private)

	repo, resp, err := c.client.Repositories.Create(ctx, "", &github.Repository{
		AutoInit:    github.Bool(false),
		Description: github.String(description),
		Name:        github.String(params.Name),
		Private:     github.Bool(params.Private),
	})
	if err != nil {
		logging.Logger.Error("GitHub repository creation failed", "name", params.Name, "error", err)
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusUnauthorized:
				return nil, fmt.Errorf("%w: %v", domain.ErrHostAuth, err)
			case http.StatusUnprocessableEntity:
				return nil, fmt.Errorf("%w: %q on your account", domain.ErrRepositoryExists, params.Name)
			}
		}
		var rateErr *github.RateLimitError
		if errors.As(err, &rateErr) {
			return nil, fmt.Errorf("github rate limit reached, resets at %s: %w", rateErr.Rate.Reset.Time, err)
		}
		return nil, fmt.Errorf("create repository: %w", err)
	}

	return &domain.RemoteRepository{
		CloneURL: repo.GetCloneURL(),
		FullName: repo.GetFullName(),
		HTMLURL:  repo.GetHTMLURL(),
		Name:     repo.GetName(),
		Private:  repo.GetPrivate(),
	}, nil
}
