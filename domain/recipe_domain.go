package domain

import (
	"errors"
)

const (
	CategoryGeneral = "general"
	CategoryDessert = "dessert"
	CategoryBaking  = "baking"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrUnknownCategory    = errors.New("unknown recipe category")
	ErrUnknownMeasureUnit = errors.New("unknown measure unit")
	ErrRecipeEncoding     = errors.New("failed to encode recipe")
	ErrRecipeDecoding     = errors.New("failed to decode recipe")
)

// CollectionNames maps a category label to the title its collection is shown under.
var CollectionNames = map[string]string{
	CategoryGeneral: "General recipes",
	CategoryDessert: "Desserts",
	CategoryBaking:  "Baking",
}

// Categories lists the catalog categories in screen order.
var Categories = []string{CategoryGeneral, CategoryDessert, CategoryBaking}

type (
	Recipe struct {
		ID          int          `json:"id"`
		Name        string       `json:"name"`
		Image       string       `json:"image"`
		Ingredients []Ingredient `json:"ingredients"`
		Steps       []Step       `json:"steps"`
		SourceURL   string       `json:"source_url"`
		Favorite    bool         `json:"favorite"`
		Category    string       `json:"category"`
	}

	Ingredient struct {
		Name   string      `json:"name"`
		Amount float64     `json:"amount"`
		Unit   MeasureUnit `json:"unit"`
	}

	Step struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	// Collection groups recipes for display. It is never persisted.
	Collection struct {
		Name    string   `json:"name"`
		Recipes []Recipe `json:"recipes"`
	}

	RecipeListRequest struct {
		Category string `query:"category" validate:"required,oneof=general dessert baking"`
	}

	RecipeListResponse struct {
		Category string   `json:"category"`
		Recipes  []Recipe `json:"recipes"`
		Total    int      `json:"total"`
	}
)

// IsKnownCategory reports whether the label names one of the catalog categories.
func IsKnownCategory(category string) bool {
	_, ok := CollectionNames[category]
	return ok
}
