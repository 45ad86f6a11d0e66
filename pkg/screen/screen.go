package screen

import (
	"Recipeat/domain"
	"Recipeat/pkg/scroll"
	"fmt"
)

const Title = "Recipe overview"

type (
	// Redraw asks the presentation layer to repaint one collection.
	Redraw struct {
		Collection string
		View       CollectionView
	}

	View struct {
		Title       string
		Version     uint64
		Collections []CollectionView
	}

	// Screen stacks collections vertically beneath the title bar. Each
	// tracker change is turned into a Redraw for the screen's listeners.
	Screen struct {
		collections []*Collection
		byCategory  map[string]*Collection
		version     uint64
		listeners   []func(Redraw)
	}
)

func NewScreen(collections ...*Collection) (*Screen, error) {
	s := &Screen{byCategory: make(map[string]*Collection, len(collections))}
	for _, c := range collections {
		if _, ok := s.byCategory[c.Category()]; ok {
			return nil, fmt.Errorf("screen: collection %q listed twice", c.Category())
		}
		s.byCategory[c.Category()] = c
		s.collections = append(s.collections, c)

		c.OnChange(func(scroll.Signals) {
			s.version++
			redraw := Redraw{Collection: c.Category(), View: c.Render()}
			for _, fn := range s.listeners {
				fn(redraw)
			}
		})
	}
	return s, nil
}

// OnRedraw registers fn to receive redraw commands.
func (s *Screen) OnRedraw(fn func(Redraw)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Screen) Version() uint64 {
	return s.version
}

func (s *Screen) Collection(category string) (*Collection, error) {
	c, ok := s.byCategory[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrCollectionNotFound, category)
	}
	return c, nil
}

// Scroll routes a viewport change to the collection for category. The
// returned flag reports whether a redraw was issued.
func (s *Screen) Scroll(category string, v scroll.Viewport) (CollectionView, bool, error) {
	c, err := s.Collection(category)
	if err != nil {
		return CollectionView{}, false, err
	}
	if err := CheckViewport(v, c.Len()); err != nil {
		return CollectionView{}, false, err
	}
	changed := c.Scroll(v)
	return c.Render(), changed, nil
}

func (s *Screen) Render() View {
	views := make([]CollectionView, 0, len(s.collections))
	for _, c := range s.collections {
		views = append(views, c.Render())
	}
	return View{Title: Title, Version: s.version, Collections: views}
}
