package routes

import (
	"Recipeat/domain"
	"Recipeat/internal/api/handlers"
	"Recipeat/internal/middleware"
	"Recipeat/internal/utils/storage"
	"Recipeat/pkg/recipe"
	"Recipeat/pkg/screen"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

func newTestApp() *fiber.App {
	app := fiber.New()
	v := validator.New()
	recipeService := recipe.NewRecipeService(recipe.NewStaticSource(), nil)
	cfg := Config{
		App:           app,
		RecipeHandler: handlers.NewRecipeHandler(recipeService, v),
		ScreenHandler: handlers.NewScreenHandler(screen.NewScreenService(recipeService, storage.NewPassthrough(), 0), v),
		Middleware:    middleware.NewMiddleware(),
	}
	cfg.Setup()
	return app
}

func do[T any](t *testing.T, app *fiber.App, method, path, body string) (int, envelope[T]) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope[T]
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestPing(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListRecipes(t *testing.T) {
	app := newTestApp()

	code, res := do[domain.RecipeListResponse](t, app, http.MethodGet, "/api/v1/recipes?category=dessert", "")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, res.Status)
	assert.Equal(t, 4, res.Data.Total)
	assert.Equal(t, "Dessert 1", res.Data.Recipes[0].Name)

	code, bad := do[any](t, app, http.MethodGet, "/api/v1/recipes?category=soups", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, bad.Status)

	code, _ = do[any](t, app, http.MethodGet, "/api/v1/recipes", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRecipeDetail(t *testing.T) {
	app := newTestApp()

	code, res := do[domain.Recipe](t, app, http.MethodGet, "/api/v1/recipes/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "General 2", res.Data.Name)

	code, _ = do[any](t, app, http.MethodGet, "/api/v1/recipes/abc", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do[any](t, app, http.MethodGet, "/api/v1/recipes/77", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestScreenFlow(t *testing.T) {
	app := newTestApp()

	code, opened := do[domain.ScreenResponse](t, app, http.MethodPost, "/api/v1/screens", "")
	require.Equal(t, http.StatusCreated, code)
	require.Len(t, opened.Data.Collections, 3)
	id := opened.Data.ID
	general := opened.Data.Collections[0]
	assert.Equal(t, "General recipes", general.Name)
	assert.False(t, general.Leading.Visible)
	assert.True(t, general.Trailing.Visible)

	base := "/api/v1/screens/" + id + "/collections/general"

	code, res := do[domain.ScrollResponse](t, app, http.MethodPost, base+"/viewport", `{"first_visible_index":0,"visible_indices":[0,1]}`)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, res.Data.Redraw)

	code, res = do[domain.ScrollResponse](t, app, http.MethodPost, base+"/viewport", `{"first_visible_index":2,"visible_indices":[2,3]}`)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, res.Data.Redraw)
	assert.True(t, res.Data.Collection.Leading.Visible)
	assert.False(t, res.Data.Collection.Trailing.Visible)
	assert.Equal(t, 180, res.Data.Collection.Leading.RotationDegrees)

	code, added := do[any](t, app, http.MethodPost, base+"/add", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, domain.MessageAddNotAvailable, added.Message)

	code, got := do[domain.ScreenResponse](t, app, http.MethodGet, "/api/v1/screens/"+id, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, uint64(1), got.Data.Version)

	code, _ = do[any](t, app, http.MethodDelete, "/api/v1/screens/"+id, "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = do[any](t, app, http.MethodGet, "/api/v1/screens/"+id, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestViewportValidation(t *testing.T) {
	app := newTestApp()
	_, opened := do[domain.ScreenResponse](t, app, http.MethodPost, "/api/v1/screens", "")
	base := "/api/v1/screens/" + opened.Data.ID + "/collections/"

	code, _ := do[any](t, app, http.MethodPost, base+"baking/viewport", `{"first_visible_index":-1}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do[any](t, app, http.MethodPost, base+"baking/viewport", `{"visible_indices":[0,9]}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do[any](t, app, http.MethodPost, base+"baking/viewport", `{"visible_indices":[2,1]}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do[any](t, app, http.MethodPost, base+"baking/viewport", `{"first_visible_index":3,"visible_indices":[0,1]}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do[any](t, app, http.MethodPost, base+"soups/viewport", `{"visible_indices":[0]}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do[any](t, app, http.MethodPost, base+"baking/viewport", `{not json`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do[any](t, app, http.MethodPost, "/api/v1/screens/nope/collections/baking/viewport", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
}
