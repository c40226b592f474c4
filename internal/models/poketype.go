package models

import "strings"

// PokeType is one of the fixed Pokémon type tags.
type PokeType int

// Type tags in display order.
const (
	Fire PokeType = iota
	Water
	Grass
	Electric
	Psychic
	Rock
	Ground
	Ice
	Fighting
	Poison
	Bug
	Dragon
	Ghost
	Dark
	Steel
	Fairy
	Normal

	typeCount
)

var typeLabels = [typeCount]string{
	Fire:     "Fire",
	Water:    "Water",
	Grass:    "Grass",
	Electric: "Electric",
	Psychic:  "Psychic",
	Rock:     "Rock",
	Ground:   "Ground",
	Ice:      "Ice",
	Fighting: "Fighting",
	Poison:   "Poison",
	Bug:      "Bug",
	Dragon:   "Dragon",
	Ghost:    "Ghost",
	Dark:     "Dark",
	Steel:    "Steel",
	Fairy:    "Fairy",
	Normal:   "Normal",
}

// AllTypes returns every type tag in display order
func AllTypes() []PokeType {
	types := make([]PokeType, typeCount)
	for i := range types {
		types[i] = PokeType(i)
	}
	return types
}

// Valid reports whether t is one of the known tags
func (t PokeType) Valid() bool {
	return t >= 0 && t < typeCount
}

// String returns the display label
func (t PokeType) String() string {
	if !t.Valid() {
		return "Unknown"
	}
	return typeLabels[t]
}

// MarshalText encodes the tag as its display label.
func (t PokeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseType resolves a display label, ignoring case and surrounding spaces.
func ParseType(label string) (PokeType, bool) {
	label = strings.TrimSpace(label)
	for i, l := range typeLabels {
		if strings.EqualFold(l, label) {
			return PokeType(i), true
		}
	}
	return 0, false
}
