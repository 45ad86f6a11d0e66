package screen

import (
	"Recipeat/domain"
	"Recipeat/internal/utils/storage"
	"Recipeat/pkg/recipe"
	"Recipeat/pkg/scroll"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	ScreenService interface {
		Open(ctx context.Context) (domain.ScreenResponse, error)
		Get(ctx context.Context, screenID string) (domain.ScreenResponse, error)
		Scroll(ctx context.Context, screenID, category string, req domain.ViewportRequest) (domain.ScrollResponse, error)
		Add(ctx context.Context, screenID, category string) error
		Close(ctx context.Context, screenID string) error
	}

	// session is one open screen. Its mutex serialises the viewport events of
	// a client so each tracker keeps a single owner.
	session struct {
		mu      sync.Mutex
		screen  *Screen
		redraws []Redraw

		// lastSeen is guarded by screenService.mu.
		lastSeen time.Time
	}

	screenService struct {
		recipeService recipe.RecipeService
		images        storage.ImageResolver
		ttl           time.Duration
		now           func() time.Time

		mu       sync.Mutex
		sessions map[uuid.UUID]*session
	}
)

const DefaultSessionTTL = 30 * time.Minute

// NewScreenService keeps each opened screen until it is closed or has been
// idle for longer than ttl. A non-positive ttl uses DefaultSessionTTL.
func NewScreenService(recipeService recipe.RecipeService, images storage.ImageResolver, ttl time.Duration) ScreenService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &screenService{
		recipeService: recipeService,
		images:        images,
		ttl:           ttl,
		now:           time.Now,
		sessions:      make(map[uuid.UUID]*session),
	}
}

func (s *screenService) Open(ctx context.Context) (domain.ScreenResponse, error) {
	collections := make([]*Collection, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		c, err := s.recipeService.GetCollection(ctx, category)
		if err != nil {
			return domain.ScreenResponse{}, err
		}
		col, err := NewCollection(c.Name, category, c.Recipes)
		if err != nil {
			return domain.ScreenResponse{}, err
		}
		collections = append(collections, col)
	}

	scr, err := NewScreen(collections...)
	if err != nil {
		return domain.ScreenResponse{}, err
	}

	id := uuid.New()
	sess := &session{screen: scr}
	scr.OnRedraw(func(r Redraw) {
		sess.redraws = append(sess.redraws, r)
	})

	s.mu.Lock()
	now := s.now()
	s.evictIdle(now)
	sess.lastSeen = now
	s.sessions[id] = sess
	s.mu.Unlock()
	log.Infof("opened screen %s", id)

	return s.screenResponse(ctx, id, scr.Render()), nil
}

func (s *screenService) Get(ctx context.Context, screenID string) (domain.ScreenResponse, error) {
	id, sess, err := s.lookup(screenID)
	if err != nil {
		return domain.ScreenResponse{}, err
	}

	sess.mu.Lock()
	view := sess.screen.Render()
	sess.mu.Unlock()

	return s.screenResponse(ctx, id, view), nil
}

func (s *screenService) Scroll(ctx context.Context, screenID, category string, req domain.ViewportRequest) (domain.ScrollResponse, error) {
	_, sess, err := s.lookup(screenID)
	if err != nil {
		return domain.ScrollResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.redraws = sess.redraws[:0]
	view, changed, err := sess.screen.Scroll(category, scroll.Viewport{
		FirstVisibleIndex: req.FirstVisibleIndex,
		VisibleIndices:    req.VisibleIndices,
	})
	if err != nil {
		return domain.ScrollResponse{}, err
	}

	// A redraw carries the view rendered at the moment the signals changed.
	if changed && len(sess.redraws) > 0 {
		view = sess.redraws[len(sess.redraws)-1].View
	}
	return domain.ScrollResponse{
		Redraw:     changed,
		Version:    sess.screen.Version(),
		Collection: s.collectionResponse(ctx, view),
	}, nil
}

func (s *screenService) Add(_ context.Context, screenID, category string) error {
	_, sess, err := s.lookup(screenID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if _, err := sess.screen.Collection(category); err != nil {
		return err
	}
	log.Debugf("add triggered on %s in screen %s", category, screenID)
	return nil
}

func (s *screenService) Close(_ context.Context, screenID string) error {
	id, err := uuid.Parse(screenID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrParseUUID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrScreenNotFound
	}
	delete(s.sessions, id)
	log.Infof("closed screen %s", id)
	return nil
}

func (s *screenService) lookup(screenID string) (uuid.UUID, *session, error) {
	id, err := uuid.Parse(screenID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("%w: %v", domain.ErrParseUUID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictIdle(now)
	sess, ok := s.sessions[id]
	if !ok {
		return uuid.Nil, nil, domain.ErrScreenNotFound
	}
	sess.lastSeen = now
	return id, sess, nil
}

// evictIdle drops sessions idle for longer than the ttl. Callers hold s.mu.
func (s *screenService) evictIdle(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			log.Infof("expired idle screen %s", id)
		}
	}
}

func (s *screenService) screenResponse(ctx context.Context, id uuid.UUID, view View) domain.ScreenResponse {
	collections := make([]domain.CollectionResponse, 0, len(view.Collections))
	for _, c := range view.Collections {
		collections = append(collections, s.collectionResponse(ctx, c))
	}
	return domain.ScreenResponse{
		ID:          id.String(),
		Title:       view.Title,
		Version:     view.Version,
		Collections: collections,
	}
}

func (s *screenService) collectionResponse(ctx context.Context, view CollectionView) domain.CollectionResponse {
	cards := make([]domain.CardResponse, 0, len(view.Cards))
	for _, card := range view.Cards {
		url, err := s.images.ImageURL(ctx, card.Image)
		if err != nil {
			log.Warnf("card %d in %s: %v", card.Key, view.Category, err)
			url = ""
		}
		cards = append(cards, domain.CardResponse{
			Key:      card.Key,
			Name:     card.Name,
			ImageURL: url,
			Favorite: card.Favorite,
		})
	}

	return domain.CollectionResponse{
		Name:     view.Name,
		Category: view.Category,
		Add:      domain.AddAffordanceResponse{Label: view.Add.Label, Enabled: view.Add.Enabled},
		Cards:    cards,
		Leading:  indicatorResponse(view.Leading),
		Trailing: indicatorResponse(view.Trailing),
	}
}

func indicatorResponse(i Indicator) domain.IndicatorResponse {
	return domain.IndicatorResponse{
		Edge:            i.Edge,
		Glyph:           i.Glyph,
		RotationDegrees: i.RotationDegrees,
		Visible:         i.Visible,
	}
}
