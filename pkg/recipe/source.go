package recipe

import (
	"Recipeat/domain"
	"context"
	"fmt"
)

// Source supplies the ordered recipes of one category. Implementations return
// an empty slice, never nil, for a category with no recipes.
type Source interface {
	RecipesByCategory(ctx context.Context, category string) ([]domain.Recipe, error)
}

type (
	staticSource struct {
		collections map[string]func() []domain.Recipe
	}

	repositorySource struct {
		recipeRepository RecipeRepository
	}
)

// NewStaticSource serves the built-in sample collections.
func NewStaticSource() Source {
	return &staticSource{
		collections: map[string]func() []domain.Recipe{
			domain.CategoryGeneral: GeneralRecipes,
			domain.CategoryDessert: DessertRecipes,
			domain.CategoryBaking:  BakingRecipes,
		},
	}
}

func (s *staticSource) RecipesByCategory(_ context.Context, category string) ([]domain.Recipe, error) {
	gen, ok := s.collections[category]
	if !ok {
		return []domain.Recipe{}, nil
	}
	return gen(), nil
}

// NewRepositorySource serves recipes stored in the database.
func NewRepositorySource(recipeRepository RecipeRepository) Source {
	return &repositorySource{recipeRepository: recipeRepository}
}

func (s *repositorySource) RecipesByCategory(ctx context.Context, category string) ([]domain.Recipe, error) {
	rows, err := s.recipeRepository.GetRecipesByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(rows))
	for _, row := range rows {
		r, err := FromEntity(row)
		if err != nil {
			return nil, fmt.Errorf("load %s recipes: %w", category, err)
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}
