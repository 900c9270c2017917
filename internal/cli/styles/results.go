package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/suggest"
)

// ResultsRenderer renders suggestion lists.
type ResultsRenderer struct {
	theme *Theme
}

// NewResultsRenderer creates a renderer using theme.
func NewResultsRenderer(theme *Theme) *ResultsRenderer {
	return &ResultsRenderer{theme: theme}
}

// EmptyMessage is the placeholder text for an empty list.
func EmptyMessage(empty suggest.EmptyState) string {
	switch empty {
	case suggest.EmptyTypeToSearch:
		return "Type to search"
	case suggest.EmptyNoMatches:
		return "No results"
	default:
		return ""
	}
}

// RenderList renders results with the selected row highlighted. selected
// may be -1.
func (r *ResultsRenderer) RenderList(results []entity.SearchResult, selected int, empty suggest.EmptyState) string {
	t := r.theme
	if len(results) == 0 {
		if msg := EmptyMessage(empty); msg != "" {
			return t.Subtle.Render("  " + msg)
		}
		return ""
	}

	var b strings.Builder
	for i, res := range results {
		line := fmt.Sprintf("%s %s", t.KindBadge(res.Kind), res.DisplayLabel())
		if hint := res.Meta(entity.MetaHint); hint != "" {
			line += " " + t.ListItemDesc.Render(hint)
		}
		if i == selected {
			b.WriteString(t.ListItemSelected.Render(line))
		} else {
			b.WriteString(t.ListItem.Render(line))
		}
		if i < len(results)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderLoading renders the in-flight indicator.
func (r *ResultsRenderer) RenderLoading() string {
	return r.theme.Subtle.Render("  Searching...")
}

// RenderRecent renders a category's recent list, most recent first.
func (r *ResultsRenderer) RenderRecent(category entity.Category, items []string) string {
	t := r.theme
	var b strings.Builder
	b.WriteString(t.Title.Render("Recent " + string(category)))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(t.Subtle.Render("  No recent items"))
		return b.String()
	}
	for i, item := range items {
		b.WriteString(t.ListItem.Render(fmt.Sprintf("%s %s", t.Subtle.Render(fmt.Sprintf("%2d.", i+1)), item)))
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderSuccess renders a success line.
func (r *ResultsRenderer) RenderSuccess(msg string) string {
	return r.theme.SuccessStyle.Render("✓ " + msg)
}

// RenderWarning renders a warning line.
func (r *ResultsRenderer) RenderWarning(msg string) string {
	return r.theme.WarningStyle.Render("! " + msg)
}

// RenderCatalog renders catalog lookups as a table with their catalog IDs.
func (r *ResultsRenderer) RenderCatalog(results []entity.SearchResult) string {
	t := r.theme
	if len(results) == 0 {
		return t.Subtle.Render("No catalog items")
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers("ID", "Kind", "Category", "Value", "Label").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Highlight.Padding(0, 1)
			}
			return t.Normal.Padding(0, 1)
		})
	for _, res := range results {
		tbl.Row(catalogID(res.ID), string(res.Kind), string(res.Category), res.Value, res.DisplayLabel())
	}
	return tbl.Render()
}

// catalogID returns the trailing key of a result ID ("favorite:vehicle:7" -> "7").
func catalogID(resultID string) string {
	if i := strings.LastIndex(resultID, ":"); i >= 0 {
		return resultID[i+1:]
	}
	return resultID
}
