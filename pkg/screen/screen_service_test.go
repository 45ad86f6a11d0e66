package screen

import (
	"Recipeat/domain"
	"Recipeat/internal/utils/storage"
	"Recipeat/pkg/recipe"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prefixResolver struct{}

func (prefixResolver) ImageURL(_ context.Context, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	if ref == "broken" {
		return "", errors.New("presign failed")
	}
	return "https://img.example.com/" + ref, nil
}

type imageSource struct{}

func (imageSource) RecipesByCategory(_ context.Context, category string) ([]domain.Recipe, error) {
	if category != domain.CategoryGeneral {
		return []domain.Recipe{}, nil
	}
	return []domain.Recipe{
		{ID: 1, Name: "Soup", Image: "soup.png"},
		{ID: 2, Name: "Stew", Image: "broken"},
	}, nil
}

func newStaticService() ScreenService {
	return NewScreenService(recipe.NewRecipeService(recipe.NewStaticSource(), nil), storage.NewPassthrough(), 0)
}

func TestOpenScreen(t *testing.T) {
	svc := newStaticService()
	res, err := svc.Open(context.Background())
	require.NoError(t, err)

	_, err = uuid.Parse(res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Recipe overview", res.Title)
	require.Len(t, res.Collections, 3)
	assert.Equal(t, "General recipes", res.Collections[0].Name)
	assert.Equal(t, "Desserts", res.Collections[1].Name)
	assert.Equal(t, "Baking", res.Collections[2].Name)
	for _, c := range res.Collections {
		assert.Len(t, c.Cards, 4)
		assert.False(t, c.Leading.Visible)
		assert.True(t, c.Trailing.Visible)
		assert.Equal(t, 180, c.Leading.RotationDegrees)
		assert.False(t, c.Add.Enabled)
	}
}

func TestScrollSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newStaticService()
	opened, err := svc.Open(ctx)
	require.NoError(t, err)

	res, err := svc.Scroll(ctx, opened.ID, domain.CategoryGeneral, domain.ViewportRequest{VisibleIndices: []int{0, 1}})
	require.NoError(t, err)
	assert.False(t, res.Redraw)
	assert.Zero(t, res.Version)

	res, err = svc.Scroll(ctx, opened.ID, domain.CategoryGeneral, domain.ViewportRequest{FirstVisibleIndex: 2, VisibleIndices: []int{2, 3}})
	require.NoError(t, err)
	assert.True(t, res.Redraw)
	assert.Equal(t, uint64(1), res.Version)
	assert.True(t, res.Collection.Leading.Visible)
	assert.False(t, res.Collection.Trailing.Visible)

	got, err := svc.Get(ctx, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.Version)
	assert.True(t, got.Collections[0].Leading.Visible)

	require.NoError(t, svc.Add(ctx, opened.ID, domain.CategoryDessert))
	assert.ErrorIs(t, svc.Add(ctx, opened.ID, "soups"), domain.ErrCollectionNotFound)

	require.NoError(t, svc.Close(ctx, opened.ID))
	_, err = svc.Get(ctx, opened.ID)
	assert.ErrorIs(t, err, domain.ErrScreenNotFound)
	assert.ErrorIs(t, svc.Close(ctx, opened.ID), domain.ErrScreenNotFound)
}

func TestScrollErrors(t *testing.T) {
	ctx := context.Background()
	svc := newStaticService()
	opened, err := svc.Open(ctx)
	require.NoError(t, err)

	_, err = svc.Scroll(ctx, "not-a-uuid", domain.CategoryGeneral, domain.ViewportRequest{})
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = svc.Scroll(ctx, uuid.NewString(), domain.CategoryGeneral, domain.ViewportRequest{})
	assert.ErrorIs(t, err, domain.ErrScreenNotFound)

	_, err = svc.Scroll(ctx, opened.ID, "soups", domain.ViewportRequest{})
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)

	_, err = svc.Scroll(ctx, opened.ID, domain.CategoryBaking, domain.ViewportRequest{VisibleIndices: []int{4}})
	assert.ErrorIs(t, err, domain.ErrViewportOutOfRange)
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := newStaticService()
	a, err := svc.Open(ctx)
	require.NoError(t, err)
	b, err := svc.Open(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	_, err = svc.Scroll(ctx, a.ID, domain.CategoryGeneral, domain.ViewportRequest{FirstVisibleIndex: 3, VisibleIndices: []int{3}})
	require.NoError(t, err)

	got, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, got.Collections[0].Leading.Visible)
}

func TestConcurrentScrolls(t *testing.T) {
	ctx := context.Background()
	svc := newStaticService()
	opened, err := svc.Open(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			first := i % 4
			_, err := svc.Scroll(ctx, opened.ID, domain.CategoryDessert, domain.ViewportRequest{
				FirstVisibleIndex: first,
				VisibleIndices:    []int{first},
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	_, err = svc.Get(ctx, opened.ID)
	assert.NoError(t, err)
}

func TestCardImagesAreResolved(t *testing.T) {
	svc := NewScreenService(recipe.NewRecipeService(imageSource{}, nil), prefixResolver{}, 0)
	res, err := svc.Open(context.Background())
	require.NoError(t, err)

	cards := res.Collections[0].Cards
	require.Len(t, cards, 2)
	assert.Equal(t, "https://img.example.com/soup.png", cards[0].ImageURL)
	assert.Empty(t, cards[1].ImageURL)

	assert.Empty(t, res.Collections[1].Cards)
	assert.False(t, res.Collections[1].Trailing.Visible)
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newClockedService(ttl time.Duration) (*screenService, *manualClock) {
	clock := &manualClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewScreenService(recipe.NewRecipeService(recipe.NewStaticSource(), nil), storage.NewPassthrough(), ttl).(*screenService)
	svc.now = clock.Now
	return svc, clock
}

func TestIdleSessionsExpire(t *testing.T) {
	ctx := context.Background()
	svc, clock := newClockedService(10 * time.Minute)

	var ids []string
	for i := 0; i < 50; i++ {
		res, err := svc.Open(ctx)
		require.NoError(t, err)
		ids = append(ids, res.ID)
	}
	assert.Len(t, svc.sessions, 50)

	clock.Advance(11 * time.Minute)
	for _, id := range ids {
		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, domain.ErrScreenNotFound)
	}
	assert.Empty(t, svc.sessions)
}

func TestActiveSessionStaysOpen(t *testing.T) {
	ctx := context.Background()
	svc, clock := newClockedService(10 * time.Minute)

	active, err := svc.Open(ctx)
	require.NoError(t, err)
	idle, err := svc.Open(ctx)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		clock.Advance(6 * time.Minute)
		_, err := svc.Scroll(ctx, active.ID, domain.CategoryGeneral, domain.ViewportRequest{VisibleIndices: []int{0, 1}})
		require.NoError(t, err)
	}

	_, err = svc.Get(ctx, active.ID)
	assert.NoError(t, err)
	_, err = svc.Get(ctx, idle.ID)
	assert.ErrorIs(t, err, domain.ErrScreenNotFound)
}

func TestOpenSweepsIdleSessions(t *testing.T) {
	ctx := context.Background()
	svc, clock := newClockedService(time.Minute)

	for i := 0; i < 5; i++ {
		_, err := svc.Open(ctx)
		require.NoError(t, err)
	}
	clock.Advance(2 * time.Minute)

	_, err := svc.Open(ctx)
	require.NoError(t, err)
	assert.Len(t, svc.sessions, 1)
}

func TestDefaultSessionTTL(t *testing.T) {
	svc := NewScreenService(recipe.NewRecipeService(recipe.NewStaticSource(), nil), storage.NewPassthrough(), 0).(*screenService)
	assert.Equal(t, DefaultSessionTTL, svc.ttl)
}
