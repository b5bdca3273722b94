package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	upStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	downStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// table writes tab-aligned rows with a styled header and a rule under it.
type table struct {
	w *tabwriter.Writer
}

func newTable(out io.Writer, headers ...string) (*table, error) {
	t := &table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}

	styled := make([]string, len(headers))
	rules := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = headerStyle.Render(h)
		rules[i] = strings.Repeat("─", max(len(h), 4))
	}
	if err := t.row(styled...); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := t.row(rules...); err != nil {
		return nil, fmt.Errorf("failed to write separator: %w", err)
	}
	return t, nil
}

func (t *table) row(cells ...string) error {
	_, err := fmt.Fprintln(t.w, strings.Join(cells, "\t"))
	return err
}

func (t *table) flush() error {
	return t.w.Flush()
}

func title(out io.Writer, text string) {
	fmt.Fprintln(out, titleStyle.Render(text))
	fmt.Fprintln(out)
}

func trendText(direction, label string) string {
	switch direction {
	case "up":
		return upStyle.Render("▲ " + label)
	case "down":
		return downStyle.Render("▼ " + label)
	default:
		return mutedStyle.Render("■ " + label)
	}
}

func pageFooter(out io.Writer, page, totalPages, totalItems int) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("page %d/%d, %d items", page, totalPages, totalItems)))
}
