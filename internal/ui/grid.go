package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meur/pokedex/internal/models"
)

const (
	placeholderGlyph = "◯"
	favoriteGlyph    = "☆"
	emptyMessage     = "No Pokémon found"
)

// renderCard draws one entry. outer is the card width including its border.
func renderCard(s Styles, p models.Pokemon, outer int) string {
	inner := max(outer-s.Card.GetHorizontalFrameSize(), 1)

	code := p.Code()
	gap := max(inner-lipgloss.Width(code)-lipgloss.Width(favoriteGlyph), 1)
	footer := s.CardNumber.Render(code) + strings.Repeat(" ", gap) + s.Favorite.Render(favoriteGlyph)

	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Placeholder.Render(placeholderGlyph),
		s.CardName.Render(truncate(p.Name, inner)),
		s.CardTypes.Render(truncate(p.TypeLabel(), inner)),
		footer,
	)
	return s.Card.Width(inner + s.Card.GetHorizontalPadding()).Render(body)
}

// renderGrid lays the entries out two per row
func renderGrid(s Styles, items []models.Pokemon, width int) string {
	if len(items) == 0 {
		return s.Muted.Render(emptyMessage)
	}

	outer := cardWidth(width)
	gap := strings.Repeat(" ", CardGap)
	rows := make([]string, 0, (len(items)+1)/2)
	for i := 0; i < len(items); i += 2 {
		left := renderCard(s, items[i], outer)
		if i+1 == len(items) {
			rows = append(rows, left)
			break
		}
		right := renderCard(s, items[i+1], outer)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
