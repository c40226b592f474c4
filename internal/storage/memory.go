package storage

import (
	"slices"

	"github.com/meur/pokedex/internal/models"
)

// Store holds the fixed catalog. The list is built once and never mutated.
type Store struct {
	items []models.Pokemon
}

// New creates a Store over the sample catalog
func New() *Store {
	return NewWith(sampleData())
}

// NewWith creates a Store over the given entries
func NewWith(items []models.Pokemon) *Store {
	return &Store{items: cloneItems(items)}
}

// --- Items ---

// GetItems returns a copy of every entry in catalog order
func (s *Store) GetItems() []models.Pokemon {
	return cloneItems(s.items)
}

// GetItem returns the entry with the given number, or nil
func (s *Store) GetItem(number int) *models.Pokemon {
	for _, p := range s.items {
		if p.Number == number {
			p.Types = slices.Clone(p.Types)
			return &p
		}
	}
	return nil
}

// Len returns the number of entries
func (s *Store) Len() int {
	return len(s.items)
}

func cloneItems(items []models.Pokemon) []models.Pokemon {
	out := make([]models.Pokemon, len(items))
	for i, p := range items {
		p.Types = slices.Clone(p.Types)
		out[i] = p
	}
	return out
}
