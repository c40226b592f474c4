package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/meur/pokedex/internal/catalog"
	"github.com/meur/pokedex/internal/models"
	"github.com/meur/pokedex/internal/storage"
)

const (
	screenTitle       = "Pokédex"
	sortGlyph         = "⇅"
	searchPrompt      = "⌕ "
	searchPlaceholder = "Search Pokémon"
)

// Focus identifies the control receiving key input
type Focus int

const (
	FocusSearch Focus = iota
	FocusChips
	FocusGrid

	focusCount
)

// Model is the single Pokédex screen.
// All state changes happen inside Update on the bubbletea event loop.
type Model struct {
	items   []models.Pokemon
	state   catalog.State
	visible []models.Pokemon

	search textinput.Model
	chips  chipStrip
	grid   viewport.Model
	help   help.Model
	keys   keyMap

	styles Styles
	logger *zap.Logger
	focus  Focus
	width  int
	height int
}

// New creates the screen over the store's catalog
func New(store *storage.Store, styles Styles, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	search := textinput.New()
	search.Prompt = searchPrompt
	search.Placeholder = searchPlaceholder
	search.Focus()

	m := Model{
		items:  store.GetItems(),
		search: search,
		chips:  newChipStrip(),
		grid:   viewport.New(DefaultWidth, gridHeight(DefaultHeight)),
		help:   help.New(),
		keys:   defaultKeyMap(),
		styles: styles,
		logger: logger,
		focus:  FocusSearch,
	}
	m.setSize(DefaultWidth, DefaultHeight)
	m.apply(catalog.DefaultState())
	return m
}

// State returns the current view state
func (m Model) State() catalog.State {
	return m.state
}

// Visible returns the entries currently on screen, in display order
func (m Model) Visible() []models.Pokemon {
	return m.visible
}

// Focused returns the control receiving key input
func (m Model) Focused() Focus {
	return m.focus
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	if m.focus == FocusSearch {
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	typing := m.focus == FocusSearch

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.logger.Info("quit", zap.Int("visible", len(m.visible)))
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Sort) && (!typing || msg.String() == "ctrl+s"):
		m.apply(m.state.ToggleSort())
		return m, nil
	}

	switch m.focus {
	case FocusSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if q := m.search.Value(); q != m.state.Query {
			m.apply(m.state.WithQuery(q))
		}
		return m, cmd

	case FocusChips:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.chips.Left()
			m.scrollChips()
		case key.Matches(msg, m.keys.Right):
			m.chips.Right()
			m.scrollChips()
		case key.Matches(msg, m.keys.Toggle):
			m.apply(m.state.ToggleType(m.chips.Current()))
		case key.Matches(msg, m.keys.Quit):
			m.logger.Info("quit", zap.Int("visible", len(m.visible)))
			return m, tea.Quit
		}
		return m, nil

	case FocusGrid:
		if key.Matches(msg, m.keys.Quit) {
			m.logger.Info("quit", zap.Int("visible", len(m.visible)))
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	if f == FocusSearch {
		return m.search.Focus()
	}
	m.search.Blur()
	return nil
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = max(contentWidth(width)-m.styles.Search.GetHorizontalFrameSize()-lipgloss.Width(searchPrompt)-1, 1)
	m.grid.Width = contentWidth(width)
	m.grid.Height = gridHeight(height)
	m.help.Width = contentWidth(width)
	m.scrollChips()
	m.refreshGrid()
}

func (m *Model) scrollChips() {
	m.chips.Scroll(m.styles, m.state.Selected, contentWidth(m.width))
}

// apply installs a new view state and recomputes the visible list
func (m *Model) apply(next catalog.State) {
	m.state = next
	m.visible = catalog.Visible(m.items, next)
	m.refreshGrid()
	m.grid.GotoTop()

	selected := make([]string, 0, next.Selected.Len())
	for _, t := range next.Selected.Sorted() {
		selected = append(selected, t.String())
	}
	m.logger.Debug("view state changed",
		zap.String("query", next.Query),
		zap.Strings("types", selected),
		zap.Bool("ascending", next.Ascending),
		zap.Int("visible", len(m.visible)))
}

func (m *Model) refreshGrid() {
	m.grid.SetContent(renderGrid(m.styles, m.visible, m.width))
}

// View implements tea.Model
func (m Model) View() string {
	pad := lipgloss.NewStyle().Padding(0, HorizontalPadding)
	return pad.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.searchView(),
		m.chipsView(),
		m.grid.View(),
		m.statusView(),
		m.help.View(m.keys),
	))
}

func (m Model) headerView() string {
	title := m.styles.Title.Render(screenTitle)
	icon := m.styles.SortIcon.Render(sortGlyph)
	gap := max(contentWidth(m.width)-lipgloss.Width(title)-lipgloss.Width(icon), 1)
	return title + strings.Repeat(" ", gap) + icon
}

func (m Model) searchView() string {
	style := m.styles.Search
	if m.focus == FocusSearch {
		style = m.styles.SearchFocused
	}
	return style.Width(contentWidth(m.width) - style.GetHorizontalBorderSize()).Render(m.search.View())
}

func (m Model) chipsView() string {
	return m.chips.View(m.styles, m.state.Selected, m.focus == FocusChips, contentWidth(m.width))
}

func (m Model) statusView() string {
	return m.styles.Status.Render(fmt.Sprintf("%d of %d", len(m.visible), len(m.items)))
}
