package usecase

import "github.com/naka-gawa/pr-changelog/internal/domain"

func itemsHelper() []domain.Item {
	return []domain.Item{
		{
			IssueNumber:    "63",
			IssueTitle:     "Update nan",
			IssueURL:       "https://github.com/atom/keyboard-layout/pull/63",
			RepositoryName: "atom/keyboard-layout",
			RepositoryURL:  "https://github.com/atom/keyboard-layout",
			UserLogin:      "mansona",
			UserURL:        "https://github.com/mansona",
		},
		{
			IssueNumber:    "798",
			IssueTitle:     "Ember 4 compatibility",
			IssueURL:       "https://github.com/ember-engines/ember-engines/pull/798",
			RepositoryName: "ember-engines/ember-engines",
			RepositoryURL:  "https://github.com/ember-engines/ember-engines",
			UserLogin:      "BobrImperator",
			UserURL:        "https://github.com/BobrImperator",
		},
	}
}

func labelGroupsHelper() []domain.LabelGroup {
	return []domain.LabelGroup{
		domain.NewLabelGroup("Ember", []string{"ember-engines/ember-engines"}),
	}
}

const (
	atomBullet  = "- [atom/keyboard-layout] [#63](https://github.com/atom/keyboard-layout/pull/63) Update nan ([@mansona])"
	emberBullet = "- [ember-engines/ember-engines] [#798](https://github.com/ember-engines/ember-engines/pull/798) Ember 4 compatibility ([@BobrImperator])"

	definitionsBlock = "[@BobrImperator]: https://github.com/BobrImperator\n" +
		"[@mansona]: https://github.com/mansona\n" +
		"[atom/keyboard-layout]: https://github.com/atom/keyboard-layout\n" +
		"[ember-engines/ember-engines]: https://github.com/ember-engines/ember-engines"
)
