package gateway

import (
	"context"
	"fmt"

	"github.com/naka-gawa/pr-changelog/internal/domain"
)

// PageIterator walks the result pages of one search query.
// It is finite and cannot be restarted; create a new one per query.
type PageIterator struct {
	searcher Searcher
	query    string
	cursor   string
	fetched  int
	done     bool
}

// NewPageIterator returns an iterator positioned before the first page.
func NewPageIterator(searcher Searcher, query string) *PageIterator {
	return &PageIterator{searcher: searcher, query: query}
}

// Next fetches the next page. It returns ok=false once the API has signalled
// the end of pagination. The first failed request ends the iteration.
func (it *PageIterator) Next(ctx context.Context) (*SearchPage, bool, error) {
	if it.done {
		return nil, false, nil
	}

	page, err := it.searcher.SearchPullRequests(ctx, it.query, it.cursor)
	if err != nil {
		it.done = true
		if it.fetched == 0 {
			return nil, false, fmt.Errorf("%w: %q: %w", domain.ErrRemoteFetchFailed, it.query, err)
		}
		return nil, false, fmt.Errorf("%w: %q page %d: %w", domain.ErrPageFetchFailed, it.query, it.fetched+1, err)
	}

	it.fetched++
	it.cursor = page.NextCursor
	if page.NextCursor == "" {
		it.done = true
	}
	return page, true, nil
}
