package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/meur/pokedex/internal/models"
	"github.com/meur/pokedex/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(storage.New(), NewStyles(LightTheme()), zap.NewNop())
	return send(m, tea.WindowSizeMsg{Width: 100, Height: 60})
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func visibleNames(m Model) []string {
	out := []string{}
	for _, p := range m.Visible() {
		out = append(out, p.Name)
	}
	return out
}

func TestModel_InitialScreen(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, FocusSearch, m.Focused())
	assert.True(t, m.State().Ascending)
	assert.Equal(t, []string{"Bulbasaur", "Charmander", "Squirtle", "Pikachu", "Meowth", "Abra"}, visibleNames(m))

	view := m.View()
	for _, want := range []string{"Pokédex", sortGlyph, "Bulbasaur", "Grass/Poison", "#001", "#063", favoriteGlyph, placeholderGlyph, "6 of 6"} {
		assert.Contains(t, view, want)
	}
}

func TestModel_SearchFiltersAsYouType(t *testing.T) {
	m := newTestModel(t)

	m = send(m, typeText("PIKA"))

	assert.Equal(t, "PIKA", m.State().Query)
	assert.Equal(t, []string{"Pikachu"}, visibleNames(m))
	assert.Contains(t, m.View(), "1 of 6")
	assert.NotContains(t, m.View(), "Bulbasaur")
}

func TestModel_SearchByNumber(t *testing.T) {
	m := newTestModel(t)

	m = send(m, typeText("#025"))

	assert.Equal(t, []string{"Pikachu"}, visibleNames(m))
}

func TestModel_BackspaceWidensResults(t *testing.T) {
	m := newTestModel(t)

	m = send(m, typeText("abr"), press(tea.KeyBackspace), press(tea.KeyBackspace))

	assert.Equal(t, "a", m.State().Query)
	assert.Equal(t, []string{"Bulbasaur", "Charmander", "Pikachu", "Abra"}, visibleNames(m))
}

func TestModel_NoMatchShowsEmptyMessage(t *testing.T) {
	m := newTestModel(t)

	m = send(m, typeText("zzz"))

	assert.Empty(t, m.Visible())
	assert.Contains(t, m.View(), emptyMessage)
	assert.Contains(t, m.View(), "0 of 6")
}

func TestModel_FocusCycle(t *testing.T) {
	m := newTestModel(t)

	m = send(m, press(tea.KeyTab))
	assert.Equal(t, FocusChips, m.Focused())
	m = send(m, press(tea.KeyTab))
	assert.Equal(t, FocusGrid, m.Focused())
	m = send(m, press(tea.KeyTab))
	assert.Equal(t, FocusSearch, m.Focused())
	m = send(m, press(tea.KeyShiftTab))
	assert.Equal(t, FocusGrid, m.Focused())
}

func TestModel_ChipToggleFiltersByType(t *testing.T) {
	m := newTestModel(t)

	// Fire is the first chip, Water the second.
	m = send(m, press(tea.KeyTab), press(tea.KeyEnter), press(tea.KeyRight), press(tea.KeyEnter))

	require.True(t, m.State().Selected.Has(models.Fire))
	require.True(t, m.State().Selected.Has(models.Water))
	assert.Equal(t, []string{"Charmander", "Squirtle"}, visibleNames(m))

	m = send(m, press(tea.KeyShiftTab), typeText("char"))
	assert.Equal(t, []string{"Charmander"}, visibleNames(m))
}

func TestModel_ChipToggleTwiceRestores(t *testing.T) {
	m := newTestModel(t)

	m = send(m, press(tea.KeyTab), press(tea.KeyEnter), press(tea.KeyEnter))

	assert.True(t, m.State().Selected.Empty())
	assert.Len(t, m.Visible(), 6)
}

func TestModel_ChipCursorStaysInRange(t *testing.T) {
	m := newTestModel(t)

	m = send(m, press(tea.KeyTab), press(tea.KeyLeft), press(tea.KeyEnter))
	assert.True(t, m.State().Selected.Has(models.Fire))

	for i := 0; i < 30; i++ {
		m = send(m, press(tea.KeyRight))
	}
	m = send(m, press(tea.KeyEnter))
	assert.True(t, m.State().Selected.Has(models.Normal))
	assert.Equal(t, []string{"Charmander", "Meowth"}, visibleNames(m))
}

func TestModel_ChipStripScrolls(t *testing.T) {
	m := newTestModel(t)

	strip := m.chipsView()
	assert.Contains(t, strip, "Fire")
	assert.Contains(t, strip, "Water")
	assert.NotContains(t, strip, "Normal")

	m = send(m, press(tea.KeyTab))
	for i := 0; i < 16; i++ {
		m = send(m, press(tea.KeyRight))
	}

	strip = m.chipsView()
	assert.Contains(t, strip, "Normal")
	assert.NotContains(t, strip, "Water")
	assert.Greater(t, m.chips.offset, 0)

	for i := 0; i < 16; i++ {
		m = send(m, press(tea.KeyLeft))
	}
	assert.Equal(t, 0, m.chips.offset)
}

func TestModel_SelectedChipMarker(t *testing.T) {
	m := newTestModel(t)

	m = send(m, press(tea.KeyTab), press(tea.KeyEnter))

	assert.Contains(t, m.chipsView(), chipOn+" Fire")
	assert.Contains(t, m.chipsView(), chipOff+" Water")
}

func TestModel_SortToggle(t *testing.T) {
	m := newTestModel(t)

	m = send(m, press(tea.KeyCtrlS))
	assert.False(t, m.State().Ascending)
	assert.Equal(t, []string{"Abra", "Meowth", "Pikachu", "Squirtle", "Charmander", "Bulbasaur"}, visibleNames(m))

	view := m.View()
	assert.Less(t, strings.Index(view, "Abra"), strings.Index(view, "Bulbasaur"))

	m = send(m, press(tea.KeyCtrlS))
	assert.True(t, m.State().Ascending)
}

func TestModel_SortKeyTypesWhileSearching(t *testing.T) {
	m := newTestModel(t)

	m = send(m, typeText("s"))
	assert.True(t, m.State().Ascending)
	assert.Equal(t, "s", m.State().Query)

	m = send(m, press(tea.KeyTab), typeText("s"))
	assert.False(t, m.State().Ascending)
	assert.Equal(t, "s", m.State().Query)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(press(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	typed, _ := m.Update(typeText("q"))
	assert.Equal(t, "q", typed.(Model).State().Query)

	m = send(m, press(tea.KeyTab), press(tea.KeyTab))
	_, cmd = m.Update(typeText("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_LogsStateChanges(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := New(storage.New(), NewStyles(LightTheme()), zap.New(core))

	send(m, typeText("a"), press(tea.KeyCtrlS))

	entries := logs.FilterMessage("view state changed").All()
	require.Len(t, entries, 3)
	last := entries[2].ContextMap()
	assert.Equal(t, "a", last["query"])
	assert.Equal(t, false, last["ascending"])
	assert.Equal(t, int64(4), last["visible"])
}

func TestModel_EmptyCatalog(t *testing.T) {
	m := New(storage.NewWith(nil), NewStyles(DarkTheme()), nil)

	m = send(m, typeText("pika"))

	assert.Empty(t, m.Visible())
	assert.Contains(t, m.View(), emptyMessage)
}

func TestModel_ResizeKeepsCardsInWidth(t *testing.T) {
	m := newTestModel(t)

	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 40})

	for _, line := range strings.Split(m.grid.View(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), contentWidth(60))
	}
}
