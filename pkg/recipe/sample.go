package recipe

import (
	"Recipeat/domain"
	"fmt"
)

func GeneralRecipes() []domain.Recipe {
	return sampleRecipes(domain.CategoryGeneral, "General")
}

func DessertRecipes() []domain.Recipe {
	return sampleRecipes(domain.CategoryDessert, "Dessert")
}

func BakingRecipes() []domain.Recipe {
	return sampleRecipes(domain.CategoryBaking, "Baking")
}

// sampleRecipes builds four placeholder recipes numbered from 1, with ids from 0.
func sampleRecipes(category, prefix string) []domain.Recipe {
	recipes := make([]domain.Recipe, 0, 4)
	for i := 0; i < 4; i++ {
		recipes = append(recipes, domain.Recipe{
			ID:          i,
			Name:        fmt.Sprintf("%s %d", prefix, i+1),
			Ingredients: []domain.Ingredient{},
			Steps:       []domain.Step{},
			Category:    category,
		})
	}
	return recipes
}

// SeedRecipes returns every sample recipe with ids rebased so they are unique
// across categories. Order within a category is kept.
func SeedRecipes() []domain.Recipe {
	var all []domain.Recipe
	for block, gen := range []func() []domain.Recipe{GeneralRecipes, DessertRecipes, BakingRecipes} {
		for _, r := range gen() {
			r.ID += block * 100
			all = append(all, r)
		}
	}
	return all
}
