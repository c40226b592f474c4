package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meur/pokedex/internal/models"
)

const (
	chipOn  = "●"
	chipOff = "○"
)

// chipStrip is the horizontally scrolling row of type toggles
type chipStrip struct {
	types  []models.PokeType
	cursor int
	offset int
}

func newChipStrip() chipStrip {
	return chipStrip{types: models.AllTypes()}
}

// Current returns the type under the cursor
func (c chipStrip) Current() models.PokeType {
	return c.types[c.cursor]
}

func (c *chipStrip) Left() {
	if c.cursor > 0 {
		c.cursor--
	}
}

func (c *chipStrip) Right() {
	if c.cursor < len(c.types)-1 {
		c.cursor++
	}
}

func (c chipStrip) renderChip(s Styles, t models.PokeType, selected models.TypeSet, focused bool, idx int) string {
	marker := chipOff
	style := s.Chip
	if selected.Has(t) {
		marker = chipOn
		style = s.ChipSelected
	}
	if focused && idx == c.cursor {
		style = s.ChipCursor
		if selected.Has(t) {
			style = style.Bold(true)
		}
	}
	return style.Render(marker + " " + t.String())
}

// scroll moves offset so the chip under the cursor fits in width
func (c *chipStrip) scroll(widths []int, width int) {
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	for c.offset < c.cursor && span(widths[c.offset:c.cursor+1]) > width {
		c.offset++
	}
}

// Scroll updates the offset for the current cursor and strip width
func (c *chipStrip) Scroll(s Styles, selected models.TypeSet, width int) {
	widths := make([]int, len(c.types))
	for i, t := range c.types {
		widths[i] = lipgloss.Width(c.renderChip(s, t, selected, false, i))
	}
	c.scroll(widths, width)
}

// View renders the chips that fit in width, starting at the scroll offset
func (c chipStrip) View(s Styles, selected models.TypeSet, focused bool, width int) string {
	chips := make([]string, len(c.types))
	widths := make([]int, len(c.types))
	for i, t := range c.types {
		chips[i] = c.renderChip(s, t, selected, focused, i)
		widths[i] = lipgloss.Width(chips[i])
	}

	visible := []string{}
	used := 0
	for i := c.offset; i < len(chips); i++ {
		w := widths[i]
		if len(visible) > 0 {
			w += ChipGap
		}
		if used+w > width && len(visible) > 0 {
			break
		}
		if len(visible) > 0 {
			visible = append(visible, strings.Repeat(" ", ChipGap))
		}
		visible = append(visible, chips[i])
		used += w
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, visible...)
}

// span is the total width of consecutive chips including gaps
func span(widths []int) int {
	total := 0
	for i, w := range widths {
		if i > 0 {
			total += ChipGap
		}
		total += w
	}
	return total
}
