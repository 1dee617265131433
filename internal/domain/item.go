package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Item is the normalized representation of one pull request.
type Item struct {
	IssueNumber    string `json:"issue_number"`
	IssueTitle     string `json:"issue_title"`
	IssueURL       string `json:"issue_url"`
	RepositoryName string `json:"repository_name"`
	RepositoryURL  string `json:"repository_url"`
	UserLogin      string `json:"user_login"`
	UserURL        string `json:"user_url"`
}

// NewItem builds an Item from a raw search record.
// The repository name is taken from the first two path segments of htmlURL,
// and the repository URL is htmlURL without its trailing "/pull/<n>".
func NewItem(number int, title, htmlURL, login, userURL string) (Item, error) {
	u, err := url.Parse(htmlURL)
	if err != nil {
		return Item{}, fmt.Errorf("failed to parse pull request url %q: %w", htmlURL, err)
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) < 2 {
		return Item{}, fmt.Errorf("pull request url %q has no owner/repo path", htmlURL)
	}

	urlParts := strings.Split(htmlURL, "/")
	repoURL := strings.Join(urlParts[:len(urlParts)-2], "/")

	return Item{
		IssueNumber:    strconv.Itoa(number),
		IssueTitle:     title,
		IssueURL:       htmlURL,
		RepositoryName: segments[0] + "/" + segments[1],
		RepositoryURL:  repoURL,
		UserLogin:      login,
		UserURL:        userURL,
	}, nil
}
