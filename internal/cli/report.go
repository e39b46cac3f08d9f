package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/typesplit/internal/classification"
	"github.com/Veraticus/typesplit/internal/engine"
	"github.com/Veraticus/typesplit/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderCategoryTable renders one row per category with its element count.
// Empty categories are listed only when showEmpty is set.
func RenderCategoryTable(set *model.CategorizedSet, showEmpty bool) string {
	categories := set.Categories()
	width := len("Category")
	for _, c := range categories {
		width = max(width, len(c))
	}

	var rows []string
	rows = append(rows, TableHeaderStyle.Render(
		TableCellStyle.Width(width+2).Render("Category")+
			TableCellStyle.Render("File")+"  "+
			TableCellStyle.Render("Types")))

	counts := set.Counts()
	for _, c := range categories {
		count := counts[c]
		if count == 0 && !showEmpty {
			continue
		}
		file := c.FileName()
		if count == 0 {
			file = SubtleStyle.Render("(none)")
		}
		rows = append(rows,
			TableCellStyle.Width(width+2).Render(c.String())+
				TableCellStyle.Render(file)+"  "+
				TableCellStyle.Render(fmt.Sprintf("%d", count)))
	}

	rows = append(rows, SubtleStyle.Render(fmt.Sprintf("%d types in %d categories", set.Len(), len(set.NonEmpty()))))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderSummary renders the result of a split run.
func RenderSummary(result *engine.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Source: %s\n", result.InputPath)
	fmt.Fprintf(&b, "Types classified: %d\n", result.Set.Len())

	if result.DryRun {
		b.WriteString(FormatWarning("Dry run, nothing was written") + "\n")
		return RenderBox("Split Preview", b.String())
	}

	fmt.Fprintf(&b, "Category files written: %d\n", len(result.Written))
	fmt.Fprintf(&b, "Manifest entries: %d\n", len(result.Registered))
	if len(result.Pruned) > 0 {
		fmt.Fprintf(&b, "Stale files removed: %s\n", strings.Join(result.Pruned, ", "))
	}
	switch {
	case result.ArchivedTo != "":
		fmt.Fprintf(&b, "Source archived to: %s\n", result.ArchivedTo)
	case result.SourceDeleted:
		b.WriteString("Source removed (backup kept)\n")
	}

	return RenderBox("Split Complete", b.String())
}

// RenderRules renders the rule table in evaluation order.
func RenderRules(rules []classification.Rule) string {
	width := 0
	for _, r := range rules {
		width = max(width, len(r.Category))
	}

	lines := make([]string, 0, len(rules))
	for i, r := range rules {
		lines = append(lines, fmt.Sprintf("%2d. %s  %s",
			i+1,
			TableCellStyle.Width(width+2).Render(r.Category.String()),
			r.Describe()))
	}
	return strings.Join(lines, "\n")
}
