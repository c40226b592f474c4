// Package catalog computes the visible Pokémon list from the current view state.
package catalog

import "github.com/meur/pokedex/internal/models"

// State is the transient view state for one render. Transitions return a new value.
type State struct {
	Query     string
	Selected  models.TypeSet
	Ascending bool
}

// DefaultState is an empty query, no selected types and ascending order
func DefaultState() State {
	return State{Ascending: true}
}

// WithQuery replaces the search text
func (s State) WithQuery(q string) State {
	s.Query = q
	return s
}

// ToggleType inserts t into the selection if absent, removes it otherwise
func (s State) ToggleType(t models.PokeType) State {
	s.Selected = s.Selected.Toggle(t)
	return s
}

// ToggleSort inverts the sort direction
func (s State) ToggleSort() State {
	s.Ascending = !s.Ascending
	return s
}
