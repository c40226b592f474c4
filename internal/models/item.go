package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Pokemon represents a single catalog entry
type Pokemon struct {
	ID     uuid.UUID  `json:"id"` // Rendering identity only
	Number int        `json:"number"`
	Name   string     `json:"name"`
	Types  []PokeType `json:"types"`
}

// NewPokemon creates an entry with a fresh identity
func NewPokemon(number int, name string, types ...PokeType) Pokemon {
	return Pokemon{
		ID:     uuid.New(),
		Number: number,
		Name:   name,
		Types:  types,
	}
}

// Code returns the display number, e.g. "#025"
func (p Pokemon) Code() string {
	return fmt.Sprintf("#%03d", p.Number)
}

// TypeLabel returns the type labels joined by "/"
func (p Pokemon) TypeLabel() string {
	labels := make([]string, len(p.Types))
	for i, t := range p.Types {
		labels[i] = t.String()
	}
	return strings.Join(labels, "/")
}

// TypeSet returns the entry's tags as a set
func (p Pokemon) TypeSet() TypeSet {
	return NewTypeSet(p.Types...)
}

// HasAnyType reports whether the entry shares at least one tag with s
func (p Pokemon) HasAnyType(s TypeSet) bool {
	return p.TypeSet().Intersects(s)
}
