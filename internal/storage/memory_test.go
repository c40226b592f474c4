package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meur/pokedex/internal/models"
)

func TestNew_SampleCatalog(t *testing.T) {
	s := New()
	items := s.GetItems()

	require.Len(t, items, 6)
	assert.Equal(t, 6, s.Len())

	want := []struct {
		number int
		name   string
		types  string
	}{
		{1, "Bulbasaur", "Grass/Poison"},
		{4, "Charmander", "Fire"},
		{7, "Squirtle", "Water"},
		{25, "Pikachu", "Electric"},
		{52, "Meowth", "Normal"},
		{63, "Abra", "Psychic"},
	}
	for i, w := range want {
		assert.Equal(t, w.number, items[i].Number)
		assert.Equal(t, w.name, items[i].Name)
		assert.Equal(t, w.types, items[i].TypeLabel())
		assert.NotEmpty(t, items[i].Types)
	}
}

func TestGetItems_ReturnsCopy(t *testing.T) {
	s := New()

	items := s.GetItems()
	items[0].Name = "Missingno"
	items[0].Types[0] = models.Ghost

	again := s.GetItems()
	require.Len(t, again, 6)
	assert.Equal(t, "Bulbasaur", again[0].Name)
	assert.Equal(t, models.Grass, again[0].Types[0])
	assert.Equal(t, "Charmander", again[1].Name)
}

func TestGetItems_StableIdentity(t *testing.T) {
	s := New()

	assert.Equal(t, s.GetItems()[3].ID, s.GetItems()[3].ID)
}

func TestGetItem(t *testing.T) {
	s := New()

	p := s.GetItem(25)
	require.NotNil(t, p)
	assert.Equal(t, "Pikachu", p.Name)

	assert.Nil(t, s.GetItem(150))
}

func TestNewWith_Empty(t *testing.T) {
	s := NewWith(nil)

	assert.Empty(t, s.GetItems())
	assert.Zero(t, s.Len())
}
