package seed

import (
	"Recipeat/pkg/recipe"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Seed fills an empty recipes table with the sample catalog.
func Seed(ctx context.Context, db *gorm.DB) error {
	repo := recipe.NewRecipeRepository(db)
	svc := recipe.NewRecipeService(recipe.NewRepositorySource(repo), repo)

	n, err := svc.Seed(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Database seed complete: %d recipes written\n", n)
	return nil
}
