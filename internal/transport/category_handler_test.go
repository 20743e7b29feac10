package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sofa-stock/internal/domain"
	"sofa-stock/internal/inventory"
	"sofa-stock/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCategoryTestRouter() chi.Router {
	products := store.NewProductStore()
	categories := store.NewCategoryRegistry(domain.DefaultCategories(time.Now()))
	svc := inventory.NewService(products, categories)

	router := chi.NewRouter()
	NewCategoryHandler(svc, zap.NewNop()).RegisterRoutes(router)
	return router
}

func TestListCategories(t *testing.T) {
	router := newCategoryTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/categories/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var categories []domain.Category
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&categories))
	assert.Len(t, categories, 7)
	assert.Equal(t, "sofa", categories[0].ID)
}

func TestCreateCategory(t *testing.T) {
	testCases := []struct {
		name               string
		body               string
		expectedStatusCode int
		expectedID         string
	}{
		{
			name:               "Slug derived from name",
			body:               `{"name": "Corner Sofas", "label": "Corner Sofas", "icon": "🛋️"}`,
			expectedStatusCode: http.StatusCreated,
			expectedID:         "corner-sofas",
		},
		{
			name:               "Missing label",
			body:               `{"name": "Corner Sofas"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Collision with seeded slug",
			body:               `{"name": "Sofa", "label": "Sofas Again"}`,
			expectedStatusCode: http.StatusConflict,
		},
		{
			name:               "Malformed JSON",
			body:               `{"name"`,
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newCategoryTestRouter()

			req := httptest.NewRequest(http.MethodPost, "/api/categories/", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedID != "" {
				var category domain.Category
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&category))
				assert.Equal(t, tc.expectedID, category.ID)
				assert.False(t, category.CreatedAt.IsZero())
			}
		})
	}
}

func TestUpdateCategory(t *testing.T) {
	router := newCategoryTestRouter()

	t.Run("Patch keeps slug fixed", func(t *testing.T) {
		body := `{"label": "Corner & Chaise Sofas"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/categories/sofa", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var category domain.Category
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&category))
		assert.Equal(t, "sofa", category.ID)
		assert.Equal(t, "Corner & Chaise Sofas", category.Label)
	})

	t.Run("Unknown slug returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/categories/ghost", strings.NewReader(`{"label": "X"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteCategory(t *testing.T) {
	router := newCategoryTestRouter()

	// Delete succeeds and repeating it stays 204
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/api/categories/ottoman", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	// Listing reflects the removal
	req := httptest.NewRequest(http.MethodGet, "/api/categories/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var categories []domain.Category
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&categories))
	assert.Len(t, categories, 6)
	for _, c := range categories {
		assert.NotEqual(t, "ottoman", c.ID)
	}
}
