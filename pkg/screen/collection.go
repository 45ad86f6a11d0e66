package screen

import (
	"Recipeat/domain"
	"Recipeat/pkg/scroll"
	"fmt"
)

const (
	EdgeLeading  = "leading"
	EdgeTrailing = "trailing"

	// ArrowGlyph points toward the trailing edge. The leading indicator
	// draws it turned half a circle.
	ArrowGlyph = "arrow_forward"
)

type (
	Card struct {
		Key      int
		Name     string
		Image    string
		Favorite bool
	}

	Indicator struct {
		Edge            string
		Glyph           string
		RotationDegrees int
		Visible         bool
	}

	// AddAffordance is the collection's add button. Triggering it does nothing.
	AddAffordance struct {
		Label   string
		Enabled bool
	}

	CollectionView struct {
		Name     string
		Category string
		Add      AddAffordance
		Cards    []Card
		Leading  Indicator
		Trailing Indicator
	}

	// Collection renders one named row of recipes and owns its scroll tracker.
	Collection struct {
		name     string
		category string
		recipes  []domain.Recipe
		tracker  *scroll.Tracker
	}
)

func NewCollection(name, category string, recipes []domain.Recipe) (*Collection, error) {
	if err := checkKeys(recipes); err != nil {
		return nil, fmt.Errorf("collection %q: %w", name, err)
	}
	return &Collection{
		name:     name,
		category: category,
		recipes:  cloneRecipes(recipes),
		tracker:  scroll.NewTracker(len(recipes)),
	}, nil
}

// Category identifies the collection within a screen.
func (c *Collection) Category() string {
	return c.category
}

func (c *Collection) Len() int {
	return len(c.recipes)
}

func (c *Collection) Signals() scroll.Signals {
	return c.tracker.Signals()
}

// OnChange forwards tracker signal changes to fn.
func (c *Collection) OnChange(fn scroll.Listener) {
	c.tracker.OnChange(fn)
}

// Scroll applies a viewport change and reports whether the indicators changed.
func (c *Collection) Scroll(v scroll.Viewport) bool {
	return c.tracker.SetViewport(v)
}

// Replace swaps in a new recipe sequence. Cards are keyed by recipe id, so an
// equal sequence renders into the same slots.
func (c *Collection) Replace(recipes []domain.Recipe) (bool, error) {
	if err := checkKeys(recipes); err != nil {
		return false, fmt.Errorf("collection %q: %w", c.name, err)
	}
	c.recipes = cloneRecipes(recipes)
	return c.tracker.SetItemCount(len(recipes)), nil
}

func (c *Collection) Render() CollectionView {
	cards := make([]Card, 0, len(c.recipes))
	for _, r := range c.recipes {
		cards = append(cards, Card{
			Key:      r.ID,
			Name:     r.Name,
			Image:    r.Image,
			Favorite: r.Favorite,
		})
	}

	signals := c.tracker.Signals()
	return CollectionView{
		Name:     c.name,
		Category: c.category,
		Add:      AddAffordance{Label: "Add", Enabled: false},
		Cards:    cards,
		Leading: Indicator{
			Edge:            EdgeLeading,
			Glyph:           ArrowGlyph,
			RotationDegrees: 180,
			Visible:         signals.CanScrollBackward,
		},
		Trailing: Indicator{
			Edge:    EdgeTrailing,
			Glyph:   ArrowGlyph,
			Visible: signals.CanScrollForward,
		},
	}
}

// SlotOf returns the rendered slot holding the card with key, or -1.
func (v CollectionView) SlotOf(key int) int {
	for i, card := range v.Cards {
		if card.Key == key {
			return i
		}
	}
	return -1
}

// CheckViewport rejects a viewport that names items outside a row of n items
// lists visible items out of order, or whose first listed item disagrees with
// FirstVisibleIndex. An empty visible list is always valid.
func CheckViewport(v scroll.Viewport, n int) error {
	if v.FirstVisibleIndex < 0 || (v.FirstVisibleIndex > 0 && v.FirstVisibleIndex >= n) {
		return fmt.Errorf("%w: first visible index %d of %d items", domain.ErrViewportOutOfRange, v.FirstVisibleIndex, n)
	}
	for i, idx := range v.VisibleIndices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: visible index %d of %d items", domain.ErrViewportOutOfRange, idx, n)
		}
		if i > 0 && idx <= v.VisibleIndices[i-1] {
			return domain.ErrViewportNotAscending
		}
	}
	if len(v.VisibleIndices) > 0 && v.VisibleIndices[0] != v.FirstVisibleIndex {
		return fmt.Errorf("%w: first visible index %d, first listed %d", domain.ErrViewportMismatch, v.FirstVisibleIndex, v.VisibleIndices[0])
	}
	return nil
}

func checkKeys(recipes []domain.Recipe) error {
	seen := make(map[int]struct{}, len(recipes))
	for _, r := range recipes {
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: %d", domain.ErrDuplicateRecipeKey, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

func cloneRecipes(recipes []domain.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, len(recipes))
	copy(out, recipes)
	return out
}
