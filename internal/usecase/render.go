package usecase

import (
	"fmt"
	"strings"

	"github.com/naka-gawa/pr-changelog/internal/domain"
)

// breakLine separates the body from the reference definitions.
const breakLine = "\n\n"

const unknownHeading = "## Unknown"

// FormatItem renders one bullet line.
func FormatItem(login string, item domain.Item) string {
	return fmt.Sprintf("- [%s] [#%s](%s) %s ([@%s])",
		item.RepositoryName, item.IssueNumber, item.IssueURL, item.IssueTitle, login)
}

// FormatLabel renders the heading of a label group.
func FormatLabel(group domain.LabelGroup) string {
	return "## " + group.Name
}

// FormatItems renders one bullet line per item, attributed to the item's author.
func FormatItems(items []domain.Item) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, FormatItem(item.UserLogin, item))
	}
	return lines
}

// RenderGrouped renders the document with one section per non-empty group,
// followed by an Unknown section when some items matched no group.
func RenderGrouped(header []string, partition Partition, definitions []string) string {
	var content []string
	rendered := 0
	for _, group := range partition.Groups {
		if len(group.Items) == 0 {
			continue
		}
		if rendered > 0 {
			content = append(content, "")
		}
		content = append(content, FormatLabel(group), "")
		content = append(content, FormatItems(group.Items)...)
		rendered++
	}

	if len(partition.Unknown) > 0 {
		content = append(content, "", unknownHeading, "")
		content = append(content, FormatItems(partition.Unknown)...)
	}

	var b strings.Builder
	// A header ending in an empty line already ends with the line break.
	b.WriteString(strings.Join(header, "\n"))
	if n := len(header); n > 0 && header[n-1] != "" {
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(content, "\n"))
	b.WriteString(breakLine)
	b.WriteString(strings.Join(definitions, "\n"))
	return b.String()
}

// RenderFlat renders bullets for all items without headings. It is used when
// no label configuration is available.
func RenderFlat(items []domain.Item, definitions []string) string {
	return strings.Join(FormatItems(items), "\n") + breakLine + strings.Join(definitions, "\n")
}
