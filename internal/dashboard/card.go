package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/f2fin/directory-dashboard/internal/resources"
)

// compact cards show this many detail lines
const compactDetails = 2

func renderCard(card resources.Card, width int, focused, full bool, s Styles) string {
	style := s.Card
	if focused {
		style = s.CardFocused
	}
	if width > 4 {
		style = style.Width(width - 2)
	}

	lines := []string{s.Title.Render(orDash(card.Title))}
	if card.Subtitle != "" {
		lines = append(lines, s.Subtitle.Render(card.Subtitle))
	}

	details := card.Details
	if !full && len(details) > compactDetails {
		details = details[:compactDetails]
	}
	for _, d := range details {
		lines = append(lines, s.Label.Render(d.Label+": ")+d.Value)
	}

	for _, sec := range card.Sections {
		if len(sec.Items) == 0 {
			continue
		}
		if full {
			lines = append(lines, "", s.Label.Render(sec.Label))
			for _, item := range sec.Items {
				lines = append(lines, "  • "+item)
			}
			continue
		}
		lines = append(lines, s.Tag.Render(strings.Join(sec.Items, " · ")))
	}

	return style.Render(strings.Join(lines, "\n"))
}

func renderSummaryBar(share, width int, s Styles) string {
	if width < 1 {
		width = 1
	}
	filled := share * width / 100
	return s.BarFill.Render(strings.Repeat("█", filled)) +
		s.BarEmpty.Render(strings.Repeat("░", width-filled))
}

func orDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}

func joinColumns(left, right string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}
