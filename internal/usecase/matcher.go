package usecase

import "github.com/naka-gawa/pr-changelog/internal/domain"

// Partition is the result of classifying items against label groups.
type Partition struct {
	Groups  []domain.LabelGroup
	Unknown []domain.Item
}

// MatchItemsWithLabels assigns every item to the first group whose repositories
// contain it, or to Unknown when none does. The input groups are left untouched;
// the returned groups are copies in the same order.
func MatchItemsWithLabels(groups []domain.LabelGroup, items []domain.Item) Partition {
	result := Partition{Groups: make([]domain.LabelGroup, len(groups))}
	for i, g := range groups {
		result.Groups[i] = domain.LabelGroup{Name: g.Name, Repos: g.Repos}
	}

	for _, item := range items {
		idx := firstMatch(result.Groups, item.RepositoryName)
		if idx < 0 {
			result.Unknown = append(result.Unknown, item)
			continue
		}
		result.Groups[idx].Items = append(result.Groups[idx].Items, item)
	}
	return result
}

func firstMatch(groups []domain.LabelGroup, repo string) int {
	for i, g := range groups {
		if g.Contains(repo) {
			return i
		}
	}
	return -1
}
