package domain

// LabelGroup is a named bucket of repositories whose items are rendered
// together under one heading.
type LabelGroup struct {
	Name  string
	Repos map[string]struct{}
	Items []Item
}

// NewLabelGroup creates an empty group for the given repositories.
func NewLabelGroup(name string, repos []string) LabelGroup {
	set := make(map[string]struct{}, len(repos))
	for _, r := range repos {
		set[r] = struct{}{}
	}
	return LabelGroup{Name: name, Repos: set}
}

// Contains reports whether repo is a member of the group. The comparison is exact.
func (g LabelGroup) Contains(repo string) bool {
	_, ok := g.Repos[repo]
	return ok
}
