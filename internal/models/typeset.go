package models

// TypeSet is an immutable set of type tags. The zero value is the empty set.
type TypeSet struct {
	bits uint32
}

// NewTypeSet builds a set holding the given tags. Unknown tags are ignored.
func NewTypeSet(types ...PokeType) TypeSet {
	var s TypeSet
	for _, t := range types {
		if t.Valid() {
			s.bits |= 1 << uint(t)
		}
	}
	return s
}

// Has reports membership
func (s TypeSet) Has(t PokeType) bool {
	return t.Valid() && s.bits&(1<<uint(t)) != 0
}

// Len returns the number of tags in the set
func (s TypeSet) Len() int {
	n := 0
	for b := s.bits; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// Empty reports whether the set has no tags
func (s TypeSet) Empty() bool {
	return s.bits == 0
}

// Toggle returns a copy with t inserted if absent, removed if present.
func (s TypeSet) Toggle(t PokeType) TypeSet {
	if !t.Valid() {
		return s
	}
	return TypeSet{bits: s.bits ^ (1 << uint(t))}
}

// Intersects reports whether the two sets share at least one tag
func (s TypeSet) Intersects(o TypeSet) bool {
	return s.bits&o.bits != 0
}

// Sorted returns the members in display order
func (s TypeSet) Sorted() []PokeType {
	out := make([]PokeType, 0, s.Len())
	for _, t := range AllTypes() {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}
