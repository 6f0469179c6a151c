package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipe_CreateAndGet(t *testing.T) {
	router, _ := newTestRouter(t, "owner")
	register(t, router, "alice")

	created := createRecipe(t, router, "alice", `{
		"title": "Gluten-Free Bread",
		"ingredients": ["  rice flour ", "water"],
		"steps": ["mix", "bake"],
		"stickers": ["gluten_free", "made_up"],
		"images": ["http://img/1.png"]
	}`)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.Owner)
	assert.Equal(t, "", created.Description)
	assert.Equal(t, []string{"rice flour", "water"}, created.Ingredients)
	assert.Equal(t, []string{"mix", "bake"}, created.Steps)
	assert.Equal(t, []string{"gluten_free", "made_up"}, created.Stickers)
	assert.Equal(t, []string{"http://img/1.png"}, created.Images)

	rr := do(t, router, http.MethodGet, fmt.Sprintf("/api/recipes/%d", created.ID), "alice", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, created, decode[recipeBody](t, rr))

	t.Run("empty collections are arrays", func(t *testing.T) {
		rr := do(t, router, http.MethodPost, "/api/recipes", "alice", `{"title":"Plain"}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"ingredients":[]`)
		assert.Contains(t, rr.Body.String(), `"images":[]`)
	})

	t.Run("title required", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"title":""}`, `{"title":"   "}`, ``} {
			rr := do(t, router, http.MethodPost, "/api/recipes", "alice", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code, body)
			assert.Equal(t, "title required", decode[errorBody](t, rr).Error)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		rr := do(t, router, http.MethodPost, "/api/recipes", "alice", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown and non-numeric id", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/api/recipes/9999", "alice", "").Code)
		assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/api/recipes/abc", "alice", "").Code)
		assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodPut, "/api/recipes/abc", "alice", `{}`).Code)
	})
}

func TestRecipe_UpdatePartial(t *testing.T) {
	router, _ := newTestRouter(t, "owner")
	register(t, router, "alice")

	rec := createRecipe(t, router, "alice", `{"title":"Soup","description":"hot","ingredients":["carrot"],"steps":["boil"],"stickers":["vegan"]}`)
	path := fmt.Sprintf("/api/recipes/%d", rec.ID)

	// только title, коллекции не трогаем; не-массив игнорируется
	rr := do(t, router, http.MethodPut, path, "alice", `{"title":"Carrot soup","steps":"not an array"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := decode[recipeBody](t, rr)
	assert.Equal(t, "Carrot soup", got.Title)
	assert.Equal(t, "hot", got.Description)
	assert.Equal(t, []string{"boil"}, got.Steps)
	assert.Equal(t, []string{"carrot"}, got.Ingredients)

	// замена коллекций целиком, пустой массив очищает
	rr = do(t, router, http.MethodPut, path, "alice", `{"ingredients":[" leek "],"stickers":[]}`)
	require.Equal(t, http.StatusOK, rr.Code)
	got = decode[recipeBody](t, rr)
	assert.Equal(t, "Carrot soup", got.Title)
	assert.Equal(t, []string{"leek"}, got.Ingredients)
	assert.Empty(t, got.Stickers)
	assert.Equal(t, []string{"boil"}, got.Steps)
}

func TestRecipe_OwnershipBoundary(t *testing.T) {
	router, _ := newTestRouter(t, "owner")
	register(t, router, "alice")
	register(t, router, "bob")

	rec := createRecipe(t, router, "alice", `{"title":"Secret"}`)
	path := fmt.Sprintf("/api/recipes/%d", rec.ID)

	rr := do(t, router, http.MethodPut, path, "bob", `{"title":"Hacked"}`)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "not your recipe", decode[errorBody](t, rr).Error)

	rr = do(t, router, http.MethodDelete, path, "bob", "")
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// рецепт не изменился
	got := decode[recipeBody](t, do(t, router, http.MethodGet, path, "alice", ""))
	assert.Equal(t, "Secret", got.Title)

	// 404 раньше 403
	rr = do(t, router, http.MethodPut, "/api/recipes/777", "bob", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "not found", decode[errorBody](t, rr).Error)
}

func TestRecipe_Delete(t *testing.T) {
	router, _ := newTestRouter(t, "owner")
	register(t, router, "alice")

	rec := createRecipe(t, router, "alice", `{"title":"Pie","ingredients":["apple"]}`)
	path := fmt.Sprintf("/api/recipes/%d", rec.ID)

	rr := do(t, router, http.MethodDelete, path, "alice", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true}`, rr.Body.String())

	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, path, "alice", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodDelete, path, "alice", "").Code)
}

func TestRecipe_DeletedNotListed(t *testing.T) {
	router, _ := newTestRouter(t, "owner")
	register(t, router, "alice")

	keep := createRecipe(t, router, "alice", `{"title":"Soup"}`)
	gone := createRecipe(t, router, "alice", `{"title":"Pie","ingredients":["apple"]}`)

	rr := do(t, router, http.MethodDelete, fmt.Sprintf("/api/recipes/%d", gone.ID), "alice", "")
	require.Equal(t, http.StatusOK, rr.Code)

	for _, query := range []string{"", "?q=pie", "?include=apple"} {
		list := decode[[]recipeBody](t, do(t, router, http.MethodGet, "/api/recipes"+query, "alice", ""))
		for _, r := range list {
			assert.NotEqual(t, gone.ID, r.ID, "deleted recipe listed for %q", query)
		}
	}
	list := decode[[]recipeBody](t, do(t, router, http.MethodGet, "/api/recipes", "alice", ""))
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)
}

func TestRecipe_Search(t *testing.T) {
	router, _ := newTestRouter(t, "owner")
	register(t, router, "alice")

	bread := createRecipe(t, router, "alice", `{"title":"Gluten-Free Bread","ingredients":["rice flour"],"stickers":["gluten_free","vegan"]}`)
	noodles := createRecipe(t, router, "alice", `{"title":"Peanut Noodles","ingredients":["Noodles","peanut"],"stickers":["vegan"]}`)
	omelette := createRecipe(t, router, "alice", `{"title":"Omelette","description":"Quick breakfast","ingredients":["egg"]}`)

	ids := func(query string) []int64 {
		rr := do(t, router, http.MethodGet, "/api/recipes"+query, "alice", "")
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		out := []int64{}
		for _, r := range decode[[]recipeBody](t, rr) {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, []int64{omelette.ID, noodles.ID, bread.ID}, ids(""))
	assert.Equal(t, []int64{bread.ID}, ids("?q=bread"))
	assert.Equal(t, []int64{bread.ID}, ids("?q=BREAD"))
	assert.Equal(t, []int64{omelette.ID}, ids("?q=breakfast"))
	assert.Equal(t, []int64{noodles.ID, bread.ID}, ids("?stickers=vegan"))
	assert.Equal(t, []int64{bread.ID}, ids("?stickers=vegan,gluten_free"))
	assert.Equal(t, []int64{}, ids("?stickers=VEGAN"))
	assert.Equal(t, []int64{noodles.ID}, ids("?include=noodles"))
	assert.Equal(t, []int64{}, ids("?include=noodles&exclude=peanut"))
	assert.Equal(t, []int64{omelette.ID, bread.ID}, ids("?exclude=PEANUT"))
	assert.Equal(t, []int64{omelette.ID, noodles.ID, bread.ID}, ids("?q=&stickers=,&include=%20"))
}

func TestRecipe_OpenPolicy(t *testing.T) {
	router, _ := newTestRouter(t, "open")

	rec := createRecipe(t, router, "", `{"title":"Family stew"}`)
	assert.Equal(t, int64(0), rec.UserID)
	assert.Equal(t, "shared", rec.Owner)

	// любой может редактировать и удалять
	path := fmt.Sprintf("/api/recipes/%d", rec.ID)
	rr := do(t, router, http.MethodPut, path, "", `{"description":"grandma's"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "grandma's", decode[recipeBody](t, rr).Description)

	rr = do(t, router, http.MethodPut, path, "someone-unknown", `{"title":"Stew"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodDelete, path, "", "").Code)
}
