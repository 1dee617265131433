// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"
	"sort"

	"github.com/naka-gawa/pr-changelog/internal/domain"
	"github.com/naka-gawa/pr-changelog/internal/gateway"
)

// Aggregator is the use case for collecting the items of a report.
// It fetches pull requests, drops excluded repositories and orders the result.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Aggregate fetches the pull requests of users, removes items whose repository
// is excluded, and sorts the rest by repository name. The sort is stable, so
// items of one repository keep the order the API returned them in.
// A nil exclude keeps everything.
func (a *Aggregator) Aggregate(ctx context.Context, users []string, filter domain.DateFilter, exclude func(repo string) bool) ([]domain.Item, error) {
	a.logger.Println("Usecase: Starting pull request aggregation...")

	fetched, err := a.fetcher.FetchUserItems(ctx, users, filter)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(fetched))
	for _, item := range fetched {
		if exclude != nil && exclude(item.RepositoryName) {
			a.logger.Printf("  Excluding %s#%s", item.RepositoryName, item.IssueNumber)
			continue
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RepositoryName < items[j].RepositoryName
	})

	a.logger.Println("Usecase: Aggregation complete.")
	return items, nil
}
