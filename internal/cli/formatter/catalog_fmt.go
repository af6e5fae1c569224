package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/explore/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatCategories renders the category list with location counts.
func FormatCategories(categories []string, counts map[string]int) string {
	var b strings.Builder
	b.WriteString(Header("Categories") + "\n")
	if len(categories) == 0 {
		b.WriteString(Dim("No categories.") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{StyleBlue.Render(c), Dim(fmt.Sprintf("%d places", counts[c]))})
	}
	b.WriteString(renderRows(rows))
	return b.String()
}

// FormatLocationList renders every location in one category.
func FormatLocationList(category string, locs []domain.Location) string {
	var b strings.Builder
	b.WriteString(Header("All "+category) + "\n")
	if len(locs) == 0 {
		b.WriteString(Dim("No places in this category.") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(locs))
	for _, l := range locs {
		rows = append(rows, []string{
			StyleGreen.Render(strconv.Itoa(l.ID)),
			Bold(l.Name),
			Dim(l.Description),
		})
	}
	b.WriteString(renderRows(rows))
	return b.String()
}

// FormatLocation renders a single location the way the Detail screen does.
func FormatLocation(l domain.Location) string {
	var b strings.Builder
	b.WriteString(StyleBrick.Render(l.Category) + "\n")
	b.WriteString(Bold(l.Name) + "\n")
	if l.Description != "" {
		b.WriteString(l.Description + "\n")
	}
	return b.String()
}

// FormatScreenStack renders a navigation snapshot as one route per line,
// current screen first.
func FormatScreenStack(current domain.Screen, stack []domain.Screen, homeCycle, suppressed bool) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("screen:"), StyleGreen.Render(current.String())))
	if len(stack) == 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("stack: "), Dim("[]")))
	} else {
		names := make([]string, len(stack))
		for i, s := range stack {
			names[i] = s.String()
		}
		b.WriteString(fmt.Sprintf("%s [%s]\n", Dim("stack: "), strings.Join(names, ", ")))
	}
	b.WriteString(fmt.Sprintf("%s %t\n", Dim("home cycle completed:"), homeCycle))
	b.WriteString(fmt.Sprintf("%s %t\n", Dim("system back suppressed:"), suppressed))
	return b.String()
}

// renderRows aligns cells on visible width, two spaces between columns.
func renderRows(rows [][]string) string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
