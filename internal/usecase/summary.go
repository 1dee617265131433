package usecase

import (
	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/pr-changelog/internal/domain"
)

// Summarize computes the summary figures of a report.
func Summarize(items []domain.Item) domain.ReportStats {
	perRepo := make(map[string]int)
	users := make(map[string]struct{})
	for _, item := range items {
		perRepo[item.RepositoryName]++
		users[item.UserLogin] = struct{}{}
	}

	summary := domain.ReportStats{
		Items:        len(items),
		Repositories: len(perRepo),
		Users:        len(users),
	}
	if len(perRepo) == 0 {
		return summary
	}

	counts := make(stats.Float64Data, 0, len(perRepo))
	for repo, n := range perRepo {
		counts = append(counts, float64(n))
		if n > summary.BusiestRepoPRs || (n == summary.BusiestRepoPRs && repo < summary.BusiestRepo) {
			summary.BusiestRepo = repo
			summary.BusiestRepoPRs = n
		}
	}
	// Errors only occur on empty input, which is handled above.
	summary.MeanPerRepo, _ = stats.Mean(counts)
	summary.MedianPerRepo, _ = stats.Median(counts)
	return summary
}
