package gateway

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
)

const searchPageSize = 100

// PullRequestRecord is one raw search hit, before normalization.
type PullRequestRecord struct {
	HTMLURL     string
	Title       string
	Number      int
	AuthorLogin string
	AuthorURL   string
}

// SearchPage is one page of search results.
// An empty NextCursor marks the last page.
type SearchPage struct {
	Records    []PullRequestRecord
	NextCursor string
}

// Searcher runs an issue search and returns the page addressed by cursor.
// An empty cursor requests the first page.
type Searcher interface {
	SearchPullRequests(ctx context.Context, query, cursor string) (*SearchPage, error)
}

// RESTSearcher searches through the REST search endpoint.
// Its cursor is the page number parsed from the Link header.
type RESTSearcher struct {
	client *github.Client
}

func (s *RESTSearcher) SearchPullRequests(ctx context.Context, query, cursor string) (*SearchPage, error) {
	opts := &github.SearchOptions{ListOptions: github.ListOptions{PerPage: searchPageSize}}
	if cursor != "" {
		pageNum, err := strconv.Atoi(cursor)
		if err != nil {
			return nil, fmt.Errorf("invalid page cursor %q: %w", cursor, err)
		}
		opts.Page = pageNum
	}

	result, resp, err := s.client.Search.Issues(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search issues with REST API: %w", err)
	}

	page := &SearchPage{Records: make([]PullRequestRecord, 0, len(result.Issues))}
	for _, issue := range result.Issues {
		page.Records = append(page.Records, PullRequestRecord{
			HTMLURL:     issue.GetHTMLURL(),
			Title:       issue.GetTitle(),
			Number:      issue.GetNumber(),
			AuthorLogin: issue.GetUser().GetLogin(),
			AuthorURL:   issue.GetUser().GetHTMLURL(),
		})
	}
	if resp.NextPage != 0 {
		page.NextCursor = strconv.Itoa(resp.NextPage)
	}
	return page, nil
}

// GraphQLSearcher searches through the GraphQL search connection.
// Its cursor is the connection's endCursor.
type GraphQLSearcher struct {
	client *githubv4.Client
}

// searchPullRequestsQuery selects the fields an Item is built from.
type searchPullRequestsQuery struct {
	Search struct {
		PageInfo struct {
			HasNextPage bool
			EndCursor   githubv4.String
		}
		Nodes []struct {
			Typename    string `graphql:"__typename"`
			PullRequest struct {
				Number int
				Title  string
				URL    string
				Author struct {
					Login string
					URL   string
				}
			} `graphql:"... on PullRequest"`
		}
	} `graphql:"search(query: $query, type: ISSUE, first: 100, after: $cursor)"`
}

func (s *GraphQLSearcher) SearchPullRequests(ctx context.Context, query, cursor string) (*SearchPage, error) {
	variables := map[string]interface{}{"query": githubv4.String(query), "cursor": (*githubv4.String)(nil)}
	if cursor != "" {
		variables["cursor"] = githubv4.NewString(githubv4.String(cursor))
	}

	var q searchPullRequestsQuery
	if err := s.client.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL search query: %w", err)
	}

	page := &SearchPage{Records: make([]PullRequestRecord, 0, len(q.Search.Nodes))}
	for _, node := range q.Search.Nodes {
		if node.Typename != "" && node.Typename != "PullRequest" {
			continue
		}
		pr := node.PullRequest
		page.Records = append(page.Records, PullRequestRecord{
			HTMLURL:     pr.URL,
			Title:       pr.Title,
			Number:      pr.Number,
			AuthorLogin: pr.Author.Login,
			AuthorURL:   pr.Author.URL,
		})
	}
	if q.Search.PageInfo.HasNextPage {
		page.NextCursor = string(q.Search.PageInfo.EndCursor)
	}
	return page, nil
}
