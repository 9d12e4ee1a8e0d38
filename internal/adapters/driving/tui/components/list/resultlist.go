// Package list renders ranked results grouped by category.
package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// ResultList displays results under category headers. Selection follows
// display order, which is the rank order within each group.
type ResultList struct {
	groups   []domain.ResultGroup
	results  []domain.RankedResult // display order
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &ResultList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// SetResults replaces the results and resets the selection.
func (r *ResultList) SetResults(results []domain.RankedResult) {
	r.groups = domain.GroupByCategory(results)
	r.results = make([]domain.RankedResult, 0, len(results))
	for _, g := range r.groups {
		r.results = append(r.results, g.Results...)
	}
	r.selected = 0
}

// Results returns the results in display order.
func (r *ResultList) Results() []domain.RankedResult {
	return r.results
}

// Selected returns the index of the selected result in display order.
func (r *ResultList) Selected() int {
	return r.selected
}

// SelectedResult returns the selected result, or nil if the list is empty.
func (r *ResultList) SelectedResult() *domain.RankedResult {
	if r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// View renders the visible window of the list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines, selectedLine := r.lines()

	visible := max(r.height, 3)
	start := 0
	if selectedLine >= visible {
		start = selectedLine - visible + 1
	}
	end := min(start+visible, len(lines))

	return strings.Join(lines[start:end], "\n")
}

// lines renders every row and returns the line index of the selection.
func (r *ResultList) lines() ([]string, int) {
	lines := make([]string, 0, len(r.results)+len(r.groups))
	selectedLine := 0
	i := 0
	for _, g := range r.groups {
		header := r.styles.Category(g.Category).Render(fmt.Sprintf("%s (%d)", categoryLabel(g.Category), len(g.Results)))
		lines = append(lines, header)
		for j := range g.Results {
			if i == r.selected {
				selectedLine = len(lines)
			}
			lines = append(lines, r.renderRow(&g.Results[j], i == r.selected))
			i++
		}
	}
	return lines, selectedLine
}

// renderRow formats one result: name, alias annotation and brief.
func (r *ResultList) renderRow(result *domain.RankedResult, selected bool) string {
	name := result.Entry.Name
	if name == "" {
		name = result.Entry.ID
	}

	if selected {
		row := "> " + name
		if note := domain.DescribeMatch(result.MatchedText); note != "" {
			row += "  " + note
		}
		return r.styles.Selected.Render(truncate(row, r.width))
	}

	row := "  " + r.styles.Normal.Render(name)
	if note := domain.DescribeMatch(result.MatchedText); note != "" {
		row += "  " + r.styles.Annotation.Render(note)
	}
	if result.Entry.Brief != "" {
		room := r.width - lipgloss.Width(row) - 4
		if room > 10 {
			row += "  " + r.styles.Muted.Render(truncate(result.Entry.Brief, room))
		}
	}
	return row
}

func categoryLabel(c domain.Category) string {
	switch c {
	case domain.CategoryCrate:
		return "Crates"
	case domain.CategoryBook:
		return "Book"
	case domain.CategoryStd:
		return "Standard library"
	case "":
		return "Other"
	default:
		return c.String()
	}
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 1 || len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
