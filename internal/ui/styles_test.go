package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meur/pokedex/internal/config"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "")
	assert.False(t, DetectTheme().IsDark)
}

func TestThemeFor(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	assert.True(t, ThemeFor(config.ThemeDark).IsDark)
	assert.False(t, ThemeFor(config.ThemeLight).IsDark)
	assert.False(t, ThemeFor(config.ThemeAuto).IsDark)
}
