package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/meur/pokedex/internal/models"
)

// NormalizeQuery trims surrounding whitespace and lowercases q.
func NormalizeQuery(q string) string {
	return lower(strings.TrimSpace(q))
}

// Visible filters items by query and selected types, then orders them by number.
// The input slice is never modified. Entries sharing a number keep their input order.
func Visible(items []models.Pokemon, state State) []models.Pokemon {
	query := NormalizeQuery(state.Query)

	out := make([]models.Pokemon, 0, len(items))
	for _, p := range items {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if !state.Selected.Empty() && !p.HasAnyType(state.Selected) {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, func(a, b models.Pokemon) int {
		if state.Ascending {
			return cmp.Compare(a.Number, b.Number)
		}
		return cmp.Compare(b.Number, a.Number)
	})
	return out
}

// matchesQuery expects an already normalized query
func matchesQuery(p models.Pokemon, query string) bool {
	return strings.Contains(lower(p.Name), query) ||
		strings.Contains(p.Code(), query)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
