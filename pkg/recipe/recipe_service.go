package recipe

import (
	"Recipeat/domain"
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

type (
	RecipeService interface {
		GetCollection(ctx context.Context, category string) (domain.Collection, error)
		GetRecipes(ctx context.Context, req domain.RecipeListRequest) (domain.RecipeListResponse, error)
		GetRecipe(ctx context.Context, id int) (domain.Recipe, error)
		Seed(ctx context.Context) (int, error)
	}

	recipeService struct {
		source           Source
		recipeRepository RecipeRepository
	}
)

// NewRecipeService reads collections from source. recipeRepository may be nil
// when the catalog is served from the static samples only.
func NewRecipeService(source Source, recipeRepository RecipeRepository) RecipeService {
	return &recipeService{
		source:           source,
		recipeRepository: recipeRepository,
	}
}

func (s *recipeService) GetCollection(ctx context.Context, category string) (domain.Collection, error) {
	if !domain.IsKnownCategory(category) {
		return domain.Collection{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	name := domain.CollectionNames[category]

	recipes, err := s.source.RecipesByCategory(ctx, category)
	if err != nil {
		return domain.Collection{}, err
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}

	return domain.Collection{Name: name, Recipes: recipes}, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, req domain.RecipeListRequest) (domain.RecipeListResponse, error) {
	collection, err := s.GetCollection(ctx, req.Category)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	return domain.RecipeListResponse{
		Category: req.Category,
		Recipes:  collection.Recipes,
		Total:    len(collection.Recipes),
	}, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id int) (domain.Recipe, error) {
	if s.recipeRepository != nil {
		row, err := s.recipeRepository.GetRecipeByID(ctx, id)
		if err != nil {
			return domain.Recipe{}, err
		}
		return FromEntity(row)
	}

	// Static ids repeat across categories; the first match in screen order wins.
	for _, category := range domain.Categories {
		recipes, err := s.source.RecipesByCategory(ctx, category)
		if err != nil {
			return domain.Recipe{}, err
		}
		for _, r := range recipes {
			if r.ID == id {
				return r, nil
			}
		}
	}
	return domain.Recipe{}, domain.ErrRecipeNotFound
}

// Seed writes the sample recipes into an empty recipes table and returns how
// many rows were written.
func (s *recipeService) Seed(ctx context.Context) (int, error) {
	if s.recipeRepository == nil {
		return 0, fmt.Errorf("seed: no recipe repository configured")
	}

	count, err := s.recipeRepository.CountRecipes(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Infof("recipes table already holds %d rows, skipping seed", count)
		return 0, nil
	}

	written := 0
	for _, r := range SeedRecipes() {
		row, err := ToEntity(r)
		if err != nil {
			return written, err
		}
		if err := s.recipeRepository.CreateRecipe(ctx, row); err != nil {
			return written, fmt.Errorf("seed recipe %d: %w", r.ID, err)
		}
		written++
	}
	log.Infof("seeded %d recipes", written)
	return written, nil
}
