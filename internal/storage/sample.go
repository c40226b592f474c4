package storage

import "github.com/meur/pokedex/internal/models"

func sampleData() []models.Pokemon {
	return []models.Pokemon{
		models.NewPokemon(1, "Bulbasaur", models.Grass, models.Poison),
		models.NewPokemon(4, "Charmander", models.Fire),
		models.NewPokemon(7, "Squirtle", models.Water),
		models.NewPokemon(25, "Pikachu", models.Electric),
		models.NewPokemon(52, "Meowth", models.Normal),
		models.NewPokemon(63, "Abra", models.Psychic),
	}
}
