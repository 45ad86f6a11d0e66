package recipe

import (
	"Recipeat/domain"
	"Recipeat/entities"
	"encoding/json"
	"fmt"
)

// ToEntity flattens a recipe into its storage row. Ingredient and step lists
// are stored as JSON arrays; an empty list is stored as "[]".
func ToEntity(r domain.Recipe) (*entities.Recipe, error) {
	ingredients, err := encodeList(r.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("%w: ingredients of recipe %d: %v", domain.ErrRecipeEncoding, r.ID, err)
	}
	steps, err := encodeList(r.Steps)
	if err != nil {
		return nil, fmt.Errorf("%w: steps of recipe %d: %v", domain.ErrRecipeEncoding, r.ID, err)
	}

	return &entities.Recipe{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		Ingredients: ingredients,
		Steps:       steps,
		SourceURL:   r.SourceURL,
		IsFavorite:  r.Favorite,
		Category:    r.Category,
	}, nil
}

// FromEntity restores a recipe from its storage row. Blank list columns
// decode to empty lists.
func FromEntity(e *entities.Recipe) (domain.Recipe, error) {
	r := domain.Recipe{
		ID:          e.ID,
		Name:        e.Name,
		Image:       e.Image,
		SourceURL:   e.SourceURL,
		Favorite:    e.IsFavorite,
		Category:    e.Category,
		Ingredients: []domain.Ingredient{},
		Steps:       []domain.Step{},
	}
	if err := decodeList(e.Ingredients, &r.Ingredients); err != nil {
		return domain.Recipe{}, fmt.Errorf("%w: ingredients of recipe %d: %v", domain.ErrRecipeDecoding, e.ID, err)
	}
	if err := decodeList(e.Steps, &r.Steps); err != nil {
		return domain.Recipe{}, fmt.Errorf("%w: steps of recipe %d: %v", domain.ErrRecipeDecoding, e.ID, err)
	}
	return r, nil
}

func encodeList[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeList[T any](raw string, dst *[]T) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return err
	}
	if *dst == nil {
		*dst = []T{}
	}
	return nil
}
