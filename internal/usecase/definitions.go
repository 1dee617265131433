package usecase

import (
	"fmt"
	"sort"

	"github.com/naka-gawa/pr-changelog/internal/domain"
)

// ExtractDefinitions returns the markdown link-reference definitions for every
// distinct user and repository in items: users first, then repositories, each
// block sorted by the full line. When a login or repository name shows up with
// more than one URL, the first one seen wins.
func ExtractDefinitions(items []domain.Item) []string {
	users := make(map[string]string)
	repos := make(map[string]string)
	for _, item := range items {
		if _, ok := users[item.UserLogin]; !ok {
			users[item.UserLogin] = fmt.Sprintf("[@%s]: %s", item.UserLogin, item.UserURL)
		}
		if _, ok := repos[item.RepositoryName]; !ok {
			repos[item.RepositoryName] = fmt.Sprintf("[%s]: %s", item.RepositoryName, item.RepositoryURL)
		}
	}

	definitions := make([]string, 0, len(users)+len(repos))
	definitions = append(definitions, sortedValues(users)...)
	definitions = append(definitions, sortedValues(repos)...)
	return definitions
}

func sortedValues(m map[string]string) []string {
	values := make([]string, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
