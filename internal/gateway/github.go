// Package gateway provides a gateway to the GitHub search API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/pr-changelog/internal/domain"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// Transport names accepted by NewGitHubGateway.
const (
	TransportREST    = "rest"
	TransportGraphQL = "graphql"
)

// Fetcher defines the behavior of a gateway for fetching pull requests from GitHub.
type Fetcher interface {
	FetchUserItems(ctx context.Context, users []string, filter domain.DateFilter) ([]domain.Item, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	searcher Searcher
	logger   *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty token yields an unauthenticated client.
func NewGitHubGateway(token, transport string, logger *log.Logger) (*GitHubGateway, error) {
	httpClient := &http.Client{}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	var searcher Searcher
	switch transport {
	case TransportREST, "":
		searcher = &RESTSearcher{client: github.NewClient(httpClient)}
	case TransportGraphQL:
		searcher = &GraphQLSearcher{client: githubv4.NewClient(httpClient)}
	default:
		return nil, fmt.Errorf("unknown transport %q (want %q or %q)", transport, TransportREST, TransportGraphQL)
	}
	return NewGateway(searcher, logger), nil
}

// NewGateway wires a gateway around an arbitrary Searcher.
func NewGateway(searcher Searcher, logger *log.Logger) *GitHubGateway {
	return &GitHubGateway{searcher: searcher, logger: logger}
}

// BuildSearchQuery returns the search query for pull requests authored by user.
func BuildSearchQuery(user string, filter domain.DateFilter) string {
	return fmt.Sprintf("is:pr author:%s created:%s", user, filter)
}

// FetchUserItems fetches every pull request authored by each user, one user at a time,
// in the order supplied. Items keep the order the API returned them in.
func (g *GitHubGateway) FetchUserItems(ctx context.Context, users []string, filter domain.DateFilter) ([]domain.Item, error) {
	var items []domain.Item
	for i, user := range users {
		g.logger.Printf("[%d/%d] Fetching pull requests for %s...", i+1, len(users), user)
		query := BuildSearchQuery(user, filter)
		pages := NewPageIterator(g.searcher, query)
		for {
			page, ok, err := pages.Next(ctx)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			for _, rec := range page.Records {
				item, err := domain.NewItem(rec.Number, rec.Title, rec.HTMLURL, rec.AuthorLogin, rec.AuthorURL)
				if err != nil {
					return nil, fmt.Errorf("failed to normalize search result for %s: %w", user, err)
				}
				items = append(items, item)
			}
			if page.NextCursor != "" {
				g.logger.Println("  Fetching next page of pull requests...")
			}
		}
	}
	g.logger.Printf("Completed fetching %d pull requests.", len(items))
	return items, nil
}
